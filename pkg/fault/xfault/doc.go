// Package xfault 实现确定性的故障注入夹具。
//
// 每个夹具（[Fixture]）触发一种特定的操作系统故障：特定信号、特定 si_code，
// 以及（适用时）特定范围的故障地址。夹具用作外部崩溃诊断/崩溃上报系统的黄金输入，
// 由外部 harness 启动并根据进程终止状态核对 [Fixture.Signature]。
//
// # 夹具列表
//
//   - abort: tgkill 向自身发送 SIGABRT（与 abort(3) 相同的原语）
//   - bus_error: 写入截断文件共享映射中超出文件末尾的页，SIGBUS/BUS_ADRERR
//   - divzero: 汇编 IDIVQ 除以零，SIGFPE/FPE_INTDIV（仅 amd64；arm64 的 SDIV 不会陷入）
//   - illegal_instruction: 执行 UD2 / UDF #0，SIGILL
//   - segfault: 通过 nil 指针写入，SIGSEGV/SEGV_MAPERR，地址位于零页
//   - stack_overflow: 在主线程 [stack] 映射上无限下探，SIGSEGV/SEGV_MAPERR，地址位于栈映射低端
//   - use_after_free: 释放后写入，结果不确定（可能 SIGSEGV，也可能存活）
//
// # 执行顺序
//
// [Fixture.Run] 依次执行：准备（可能失败并返回普通错误）→ 向诊断流写出一行
// "[xfault/<name>] <action>..." 并立即 Flush → 将期望信号恢复为 SIG_DFL 并解除屏蔽 →
// 执行故障动作。故障由内核按默认处置终止进程，Go 运行时不再介入，
// 因此之后不会执行任何清理（defer、缓冲区刷新均不会运行）。
//
// # 主线程
//
// stack_overflow 需要运行在进程主线程上。本包在 init 中调用 [runtime.LockOSThread]，
// 使 main goroutine 固定在主线程；在其他 goroutine 中运行该夹具会返回 [ErrNotMainThread]。
//
// # 平台支持
//
// 仅 linux/amd64 与 linux/arm64。其他平台上 Run 返回 [ErrUnsupportedPlatform]，不产生故障。
package xfault
