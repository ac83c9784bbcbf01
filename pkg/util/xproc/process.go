// Package xproc 提供当前进程与线程的标识。
//
// 故障夹具依赖线程身份：信号处置、tgkill 与 [stack] 映射都以调用线程为对象，
// stack_overflow 只能在主线程（tid == pid）上运行。进程身份（PID、进程名）
// 作为固定属性写入命令行的每条日志，便于把日志与崩溃报告中的进程对上。
package xproc

import (
	"os"
	"path/filepath"
	"sync"
)

// executable 是 os.Executable，测试中可替换。
var executable = os.Executable

// processName 首次调用时解析，之后返回缓存值。
var processName = sync.OnceValue(resolveProcessName)

// ProcessID 返回当前进程 ID，也是主线程的线程 ID。
func ProcessID() int {
	return os.Getpid()
}

// ProcessName 返回可执行文件的基础名（如 "fault-segfault"），取不到时返回空字符串。
//
// 先取 [os.Executable]，失败时退回 os.Args[0]。
func ProcessName() string {
	return processName()
}

func resolveProcessName() string {
	if exe, err := executable(); err == nil {
		if name := fileName(exe); name != "" {
			return name
		}
	}
	if len(os.Args) > 0 {
		return fileName(os.Args[0])
	}
	return ""
}

// fileName 返回路径的最后一段；空路径、"."、".." 与根目录没有文件名。
func fileName(path string) string {
	if path == "" {
		return ""
	}
	switch name := filepath.Base(path); name {
	case ".", "..", string(filepath.Separator):
		return ""
	default:
		return name
	}
}
