package xfault

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"syscall"

	"github.com/omeyang/xfault/pkg/fault/xsig"
)

// 夹具名称。
const (
	NameAbort              = "abort"
	NameBusError           = "bus_error"
	NameDivZero            = "divzero"
	NameIllegalInstruction = "illegal_instruction"
	NameSegfault           = "segfault"
	NameStackOverflow      = "stack_overflow"
	NameUseAfterFree       = "use_after_free"
)

// freedWriteLine use_after_free 写入悬空块之前的第二条诊断行。
const freedWriteLine = "Writing to freed pointer..."

// faultFunc 执行故障动作。确定性夹具的 faultFunc 正常情况下不会返回。
type faultFunc func(d *diag) error

// prepareFunc 完成故障前的准备工作，返回故障动作。
type prepareFunc func(o *Options) (faultFunc, error)

// Fixture 描述一个故障夹具。
type Fixture struct {
	// Name 夹具名称，同时是诊断行标签 "[xfault/<Name>]" 的后缀。
	Name string

	// Action 诊断行中描述故障动作的文本（不含 "..."）。
	Action string

	// Signature 期望的进程终止特征。
	Signature xsig.Signature

	// Survived 非确定性夹具存活时写出的诊断文本。
	Survived string

	signals []syscall.Signal
	prepare prepareFunc
}

// Signals 返回故障前恢复为 SIG_DFL 的信号。
func (f *Fixture) Signals() []syscall.Signal {
	return append([]syscall.Signal(nil), f.signals...)
}

var catalogue = []*Fixture{
	{
		Name:      NameAbort,
		Action:    "Calling abort()",
		Signature: xsig.Signature{Signal: xsig.SIGABRT, Code: xsig.CodeAny, Addr: xsig.AddrNone, Deterministic: true},
		signals:   []syscall.Signal{xsig.SIGABRT},
		prepare:   prepareAbort,
	},
	{
		Name:      NameBusError,
		Action:    "Accessing beyond truncated file mmap",
		Signature: xsig.Signature{Signal: xsig.SIGBUS, Code: xsig.BusAdrErr, Addr: xsig.AddrBeyondEOF, Deterministic: true},
		signals:   []syscall.Signal{xsig.SIGBUS},
		prepare:   prepareBusError,
	},
	{
		Name:      NameDivZero,
		Action:    "Dividing by zero",
		Signature: xsig.Signature{Signal: xsig.SIGFPE, Code: xsig.FpeIntDiv, Addr: xsig.AddrNone, Deterministic: true},
		signals:   []syscall.Signal{xsig.SIGFPE},
		prepare:   prepareDivZero,
	},
	{
		Name:      NameIllegalInstruction,
		Action:    illegalAction,
		Signature: xsig.Signature{Signal: xsig.SIGILL, Code: illegalCode, Addr: xsig.AddrNone, Deterministic: true},
		signals:   []syscall.Signal{xsig.SIGILL},
		prepare:   prepareIllegalInstruction,
	},
	{
		Name:      NameSegfault,
		Action:    "Dereferencing NULL pointer",
		Signature: xsig.Signature{Signal: xsig.SIGSEGV, Code: xsig.SegvMapErr, Addr: xsig.AddrNearZero, Deterministic: true},
		signals:   []syscall.Signal{xsig.SIGSEGV},
		prepare:   prepareSegfault,
	},
	{
		Name:      NameStackOverflow,
		Action:    "Recursing until stack exhaustion",
		Signature: xsig.Signature{Signal: xsig.SIGSEGV, Code: xsig.SegvMapErr, Addr: xsig.AddrStackGuard, Deterministic: true},
		signals:   []syscall.Signal{xsig.SIGSEGV},
		prepare:   prepareStackOverflow,
	},
	{
		Name:      NameUseAfterFree,
		Action:    "Allocating, freeing, then writing",
		Signature: xsig.Signature{Signal: xsig.SIGSEGV, Code: xsig.SegvMapErr, Addr: xsig.AddrAny, Deterministic: false},
		Survived:  "Survived (UAF didn't crash - this is the danger)",
		signals:   []syscall.Signal{xsig.SIGSEGV, xsig.SIGBUS},
		prepare:   prepareUseAfterFree,
	},
}

var byName = func() map[string]*Fixture {
	m := make(map[string]*Fixture, len(catalogue))
	for _, f := range catalogue {
		m[f.Name] = f
	}
	return m
}()

// All 按目录顺序返回全部夹具。返回的切片可以修改，元素不应修改。
func All() []*Fixture {
	return append([]*Fixture(nil), catalogue...)
}

// Names 返回按字母排序的夹具名称。
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for _, f := range catalogue {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// Lookup 按名称查找夹具。
func Lookup(name string) (*Fixture, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFixture, name)
	}
	return f, nil
}

// Run 执行夹具。
//
// 确定性夹具成功时进程被信号终止，Run 不会返回；返回值总是非 nil：
// 准备失败、诊断流写入失败、信号处置设置失败，或故障动作返回（[ErrNoFault]）。
// 非确定性夹具存活时写出存活行并返回 nil。
//
// ctx 只在准备之前检查一次：故障动作开始后无法取消。
func (f *Fixture) Run(ctx context.Context, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if err := o.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// 信号处置、tgkill 与 [stack] 检查都以当前线程为对象。
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	fault, err := f.prepare(o)
	if err != nil {
		return fmt.Errorf("xfault: prepare %s: %w", f.Name, err)
	}

	d := newDiag(o.Output, f.Name)
	if err := d.line(f.Action + "..."); err != nil {
		return fmt.Errorf("xfault: write diagnostic for %s: %w", f.Name, err)
	}

	if err := xsig.Unblock(f.signals...); err != nil {
		return fmt.Errorf("xfault: %s: %w", f.Name, err)
	}
	if err := xsig.ResetDefault(f.signals...); err != nil {
		return fmt.Errorf("xfault: %s: %w", f.Name, err)
	}

	if err := fault(d); err != nil {
		return fmt.Errorf("xfault: %s: %w", f.Name, err)
	}

	if f.Signature.Deterministic {
		return fmt.Errorf("%w: %s", ErrNoFault, f.Name)
	}
	if err := d.line(f.Survived); err != nil {
		return fmt.Errorf("xfault: write diagnostic for %s: %w", f.Name, err)
	}
	return nil
}

// 进程退出码。
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCode 将 Run 的结果映射为进程退出码。
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUnknownFixture), errors.Is(err, ErrInvalidOptions):
		return ExitUsage
	default:
		return ExitFailure
	}
}
