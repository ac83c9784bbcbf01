package xfault

import "errors"

var (
	// ErrUnknownFixture 表示夹具名称不存在。
	ErrUnknownFixture = errors.New("xfault: unknown fixture")

	// ErrNoFault 表示确定性夹具的故障动作返回了，进程没有被终止。
	ErrNoFault = errors.New("xfault: fault action returned without faulting")

	// ErrUnsupportedPlatform 表示当前 GOOS/GOARCH 不支持夹具。
	ErrUnsupportedPlatform = errors.New("xfault: unsupported platform")

	// ErrUnsupportedArch 表示夹具依赖的硬件行为在当前架构上不存在（如 arm64 整数除零不陷入）。
	ErrUnsupportedArch = errors.New("xfault: fault not reproducible on this architecture")

	// ErrNotMainThread 表示 stack_overflow 不是在进程主线程上运行。
	ErrNotMainThread = errors.New("xfault: must run on the main thread")

	// ErrInvalidOptions 表示选项取值无效。
	ErrInvalidOptions = errors.New("xfault: invalid options")
)
