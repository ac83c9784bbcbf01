//go:build linux

package xproc

import "golang.org/x/sys/unix"

// gettid 是 unix.Gettid 的包级变量，支持测试中 mock。
var gettid = unix.Gettid

// ThreadID 返回调用方当前所在 OS 线程的 ID。
//
// goroutine 可能在两次调用之间迁移到其他线程；需要稳定结果时先 [runtime.LockOSThread]。
func ThreadID() int {
	return gettid()
}

// IsMainThread 报告调用方是否运行在进程主线程上（tid == pid）。
// 主线程使用内核建立的 [stack] 映射作为栈，其他线程的栈由运行时分配。
func IsMainThread() bool {
	return ThreadID() == ProcessID()
}
