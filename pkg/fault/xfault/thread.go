package xfault

import "runtime"

// main goroutine 固定在进程主线程上，stack_overflow 依赖主线程的 [stack] 映射。
func init() {
	runtime.LockOSThread()
}
