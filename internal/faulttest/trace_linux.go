//go:build linux && (amd64 || arm64)

package faulttest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/omeyang/xfault/pkg/fault/xsig"
)

// siginfo 是 64 位 Linux 上 siginfo_t 的前缀：si_addr 位于偏移 16。
type siginfo struct {
	Signo int32
	Errno int32
	Code  int32
	_     int32
	Addr  uint64
	_     [104]byte
}

// faultStop 致命信号投递前的现场。
type faultStop struct {
	code int32
	addr uintptr
	maps string
}

func ptraceGetSiginfo(pid int) (siginfo, error) {
	var info siginfo
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, unix.PTRACE_GETSIGINFO,
		uintptr(pid), 0, uintptr(unsafe.Pointer(&info)), 0, 0)
	if errno != 0 {
		return info, errno
	}
	return info, nil
}

// Trace 与 [Run] 相同，但子进程在 ptrace 下运行。
//
// 子进程每次停在 SIGILL、SIGABRT、SIGBUS、SIGFPE 或 SIGSEGV 上时，读取 siginfo 和
// /proc/<pid>/maps，然后原样投递该信号。进程最终被其中某个信号终止时，对应现场写入
// Outcome 的 Code、Addr 与 Maps。其他信号（如运行时抢占用的 SIGURG）直接转交。
//
// 只跟踪子进程的主线程；夹具的故障发生在主线程上。
func Trace(ctx context.Context, name string, opts ...RunOption) (Outcome, error) {
	stderr, err := os.CreateTemp("", "faulttest-stderr-*")
	if err != nil {
		return Outcome{}, fmt.Errorf("faulttest: trace %s: %w", name, err)
	}
	defer os.Remove(stderr.Name())
	defer stderr.Close()

	devnull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return Outcome{}, fmt.Errorf("faulttest: trace %s: %w", name, err)
	}
	defer devnull.Close()

	// ptrace 请求只接受来自启动子进程的那个线程。
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	args := childArgs()
	proc, err := os.StartProcess(args[0], args, &os.ProcAttr{
		Env:   append(childEnv(name, opts), EnvTraced+"=1"),
		Files: []*os.File{devnull, devnull, stderr},
		Sys:   &syscall.SysProcAttr{Ptrace: true},
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("faulttest: trace %s: %w", name, err)
	}
	defer proc.Release()

	pid := proc.Pid
	stop := context.AfterFunc(ctx, func() { _ = unix.Kill(pid, unix.SIGKILL) })
	out, err := follow(pid)
	stop()
	if ctx.Err() != nil {
		return Outcome{}, fmt.Errorf("faulttest: trace %s: %w", name, ctx.Err())
	}
	if err != nil {
		return Outcome{}, fmt.Errorf("faulttest: trace %s: %w", name, err)
	}

	data, err := os.ReadFile(stderr.Name())
	if err != nil {
		return Outcome{}, fmt.Errorf("faulttest: trace %s: %w", name, err)
	}
	out.Stderr = string(data)
	return out, nil
}

// follow 驱动被跟踪的子进程直到它退出。
func follow(pid int) (Outcome, error) {
	var (
		out     Outcome
		started bool
		stops   = make(map[syscall.Signal]faultStop)
	)
	for {
		var ws unix.WaitStatus
		if _, err := unix.Wait4(pid, &ws, unix.WALL, nil); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return out, fmt.Errorf("wait4: %w", err)
		}

		switch {
		case ws.Exited():
			out.ExitCode = ws.ExitStatus()
			return out, nil

		case ws.Signaled():
			out.Signaled = true
			out.Signal = ws.Signal()
			if s, ok := stops[out.Signal]; ok {
				out.Traced = true
				out.Code, out.Addr, out.Maps = s.code, s.addr, s.maps
			}
			return out, nil

		case ws.Stopped():
			sig := ws.StopSignal()
			deliver := int(sig)
			switch {
			case !started && sig == unix.SIGTRAP:
				// execve 之后的第一次停止
				started = true
				deliver = 0
				if err := unix.PtraceSetOptions(pid, unix.PTRACE_O_EXITKILL); err != nil {
					return out, fmt.Errorf("ptrace setoptions: %w", err)
				}
			case xsig.IsCrashSignal(sig):
				s, err := captureStop(pid)
				if err != nil {
					return out, err
				}
				stops[sig] = s
			}
			if err := unix.PtraceCont(pid, deliver); err != nil {
				return out, fmt.Errorf("ptrace cont: %w", err)
			}
		}
	}
}

func captureStop(pid int) (faultStop, error) {
	info, err := ptraceGetSiginfo(pid)
	if err != nil {
		return faultStop{}, fmt.Errorf("ptrace getsiginfo: %w", err)
	}
	maps, err := os.ReadFile(fmt.Sprintf("/proc/%d/maps", pid))
	if err != nil {
		return faultStop{}, fmt.Errorf("read maps: %w", err)
	}
	return faultStop{code: info.Code, addr: uintptr(info.Addr), maps: string(maps)}, nil
}
