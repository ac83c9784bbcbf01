//go:build linux && (amd64 || arm64)

package xsig

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// sigactiont 是内核 rt_sigaction 使用的 struct sigaction 布局。
// amd64 与 arm64 都带 sa_restorer 字段，布局一致。
type sigactiont struct {
	handler  uintptr
	flags    uint64
	restorer uintptr
	mask     uint64
}

// sigDFL 对应 SIG_DFL。
const sigDFL uintptr = 0

// maxSignal 是 Linux 上最大的信号编号（_NSIG - 1）。
const maxSignal = 64

// 系统调用函数变量，支持测试中 mock 替换以覆盖错误路径。
// 注意：mock 测试不可使用 t.Parallel()，因为替换包级变量会引发竞态。
var (
	rtSigaction = rawSigaction
	sigprocmask = unix.PthreadSigmask
	tgkill      = unix.Tgkill
)

// rawSigaction 直接发起 rt_sigaction，不经过 Go 运行时的信号表。
func rawSigaction(sig syscall.Signal, act, old *sigactiont) error {
	_, _, errno := unix.RawSyscall6(unix.SYS_RT_SIGACTION,
		uintptr(sig),
		uintptr(unsafe.Pointer(act)),
		uintptr(unsafe.Pointer(old)),
		unsafe.Sizeof(sigactiont{}.mask),
		0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

func validateSignal(sig syscall.Signal) error {
	if sig < 1 || sig > maxSignal {
		return fmt.Errorf("%w: %d", ErrInvalidSignal, int(sig))
	}
	return nil
}

// ResetDefault 将信号处置恢复为 SIG_DFL。
//
// 该调用绕过 Go 运行时：此后该信号由内核按默认动作处理（对崩溃类信号即终止进程并可能转储 core），
// Go 运行时不会再把它转换为 panic，也不会打印 goroutine 堆栈。
// 调用后进程内不应再依赖 os/signal 对这些信号的通知。
func ResetDefault(sigs ...syscall.Signal) error {
	for _, sig := range sigs {
		if err := validateSignal(sig); err != nil {
			return err
		}
		act := sigactiont{handler: sigDFL}
		if err := rtSigaction(sig, &act, nil); err != nil {
			return fmt.Errorf("xsig: rt_sigaction %s: %w", SignalName(sig), err)
		}
	}
	return nil
}

// IsDefault 报告信号当前处置是否为 SIG_DFL。
func IsDefault(sig syscall.Signal) (bool, error) {
	if err := validateSignal(sig); err != nil {
		return false, err
	}
	var old sigactiont
	if err := rtSigaction(sig, nil, &old); err != nil {
		return false, fmt.Errorf("xsig: rt_sigaction %s: %w", SignalName(sig), err)
	}
	return old.handler == sigDFL, nil
}

// Unblock 从当前线程的信号掩码中移除指定信号。
func Unblock(sigs ...syscall.Signal) error {
	var set unix.Sigset_t
	for _, sig := range sigs {
		if err := validateSignal(sig); err != nil {
			return err
		}
		n := uint(sig - 1)
		set.Val[n/64] |= 1 << (n % 64)
	}
	if err := sigprocmask(unix.SIG_UNBLOCK, &set, nil); err != nil {
		return fmt.Errorf("xsig: rt_sigprocmask: %w", err)
	}
	return nil
}

// RaiseThread 通过 tgkill 向当前线程发送信号，等价于 raise(3)。
//
// 调用方应先 [runtime.LockOSThread]，否则 goroutine 可能在取得线程 ID 后被迁移。
func RaiseThread(sig syscall.Signal) error {
	if err := validateSignal(sig); err != nil {
		return err
	}
	if err := tgkill(unix.Getpid(), unix.Gettid(), sig); err != nil {
		return fmt.Errorf("xsig: tgkill %s: %w", SignalName(sig), err)
	}
	return nil
}
