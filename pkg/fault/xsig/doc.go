// Package xsig 提供故障信号的描述与默认处置控制。
//
// # 功能概览
//
//   - [Signature]: 期望的故障特征（信号、si_code、故障地址类别、是否确定性）
//   - [SignalName]、[CodeName]: 信号与 si_code 的符号名称
//   - [IsCrashSignal]: 判断信号是否属于崩溃类信号（SIGILL/SIGABRT/SIGBUS/SIGFPE/SIGSEGV）
//   - [ResetDefault]: 绕过 Go 运行时，将信号处置直接恢复为 SIG_DFL
//   - [Unblock]: 从当前线程的信号掩码中移除指定信号
//   - [RaiseThread]: 通过 tgkill 向当前线程发送信号
//
// # 为什么需要 ResetDefault
//
// Go 运行时为所有同步信号安装了处理函数，并把 SIGSEGV/SIGBUS/SIGFPE 转换为 panic。
// 经由 os/signal 无法恢复 SIG_DFL：[os/signal.Reset] 恢复的是运行时自己的处理函数。
// 本包直接发起 rt_sigaction 系统调用，使内核按默认处置终止进程，
// 父进程观察到的终止信号、si_code 与故障地址因此与 C 程序完全一致。
//
// # 平台支持
//
// ResetDefault、IsDefault、Unblock、RaiseThread 仅在 linux/amd64 与 linux/arm64 上生效，其他平台返回 [ErrUnsupportedPlatform]。
// 名称表与 Signature 在所有平台可用。
package xsig
