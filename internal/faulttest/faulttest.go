package faulttest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// 父子进程间传递参数的环境变量。
const (
	EnvFixture   = "XFAULT_TEST_FIXTURE"
	EnvTempDir   = "XFAULT_TEST_TEMPDIR"
	EnvAllocator = "XFAULT_TEST_UAF_ALLOCATOR"

	// EnvTraced 由 [Trace] 设置。
	EnvTraced = "XFAULT_TEST_TRACED"
)

// Child 在子进程中运行 run 并以其返回值退出；非子进程时直接返回。
//
// 子进程在运行前禁用 core dump：普通子进程清除 dumpable 标志；
// 被跟踪的子进程改为把 RLIMIT_CORE 降为 0，保持可读的 /proc/<pid>/maps。
func Child(run func(name string) int) {
	name, ok := os.LookupEnv(EnvFixture)
	if !ok {
		return
	}
	if os.Getenv(EnvTraced) != "" {
		limitCoreSize()
	} else {
		disableCoreDump()
	}
	os.Exit(run(name))
}

// ErrTraceUnsupported 当前平台无法跟踪子进程。
var ErrTraceUnsupported = errors.New("faulttest: tracing not supported on this platform")

// Outcome 子进程的终止状态。
type Outcome struct {
	// Signaled 进程是否被信号终止。
	Signaled bool

	// Signal 终止进程的信号，仅 Signaled 时有效。
	Signal syscall.Signal

	// ExitCode 退出码，仅 !Signaled 时有效。
	ExitCode int

	// Stderr 子进程的标准错误输出。
	Stderr string

	// 以下字段仅由 [Trace] 填写，Traced 为 true 时有效。

	// Traced 是否在终止信号投递前截获了故障现场。
	Traced bool

	// Code 终止信号的 si_code。
	Code int32

	// Addr 终止信号的 si_addr。SIGABRT 等非故障信号没有地址含义。
	Addr uintptr

	// Maps 故障时刻 /proc/<pid>/maps 的快照。
	Maps string
}

// Lines 返回 Stderr 的非空行。
func (o Outcome) Lines() []string {
	var lines []string
	for _, l := range strings.Split(o.Stderr, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func (o Outcome) String() string {
	if o.Signaled && o.Traced {
		return fmt.Sprintf("killed by %v (code=%d addr=%#x)", o.Signal, o.Code, o.Addr)
	}
	if o.Signaled {
		return fmt.Sprintf("killed by %v", o.Signal)
	}
	return fmt.Sprintf("exited with %d", o.ExitCode)
}

type runOptions struct {
	env []string
}

// RunOption 定义子进程选项。
type RunOption func(*runOptions)

// WithEnv 为子进程追加环境变量。
func WithEnv(key, value string) RunOption {
	return func(o *runOptions) {
		o.env = append(o.env, key+"="+value)
	}
}

// WithTempDir 设置子进程的夹具临时目录。
func WithTempDir(dir string) RunOption {
	return WithEnv(EnvTempDir, dir)
}

// WithAllocator 设置子进程 use_after_free 的分配器。
func WithAllocator(allocator string) RunOption {
	return WithEnv(EnvAllocator, allocator)
}

// childArgs 重新执行当前测试二进制且不运行任何测试。
func childArgs() []string {
	return []string{os.Args[0], "-test.run=^$"}
}

func childEnv(name string, opts []RunOption) []string {
	o := &runOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	env := append(os.Environ(), EnvFixture+"="+name)
	return append(env, o.env...)
}

// Run 重新执行当前测试二进制，在子进程中运行名为 name 的夹具。
func Run(ctx context.Context, name string, opts ...RunOption) (Outcome, error) {
	args := childArgs()
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = childEnv(name, opts)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Outcome{}, fmt.Errorf("faulttest: run %s: %w", name, err)
	}
	if ctx.Err() != nil {
		return Outcome{}, fmt.Errorf("faulttest: run %s: %w", name, ctx.Err())
	}

	out := Outcome{Stderr: stderr.String()}
	ws, ok := cmd.ProcessState.Sys().(syscall.WaitStatus)
	if ok && ws.Signaled() {
		out.Signaled = true
		out.Signal = ws.Signal()
		return out, nil
	}
	out.ExitCode = cmd.ProcessState.ExitCode()
	return out, nil
}

// RunMany 并发运行 n 次夹具，最多 parallel 个子进程同时存在。
// 结果按运行序号排列。
func RunMany(ctx context.Context, name string, n, parallel int, opts ...RunOption) ([]Outcome, error) {
	if n <= 0 {
		return nil, nil
	}
	if parallel <= 0 {
		parallel = 1
	}

	outcomes := make([]Outcome, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for i := range n {
		g.Go(func() error {
			out, err := Run(ctx, name, opts...)
			if err != nil {
				return err
			}
			outcomes[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
