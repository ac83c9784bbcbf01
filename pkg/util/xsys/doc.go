// Package xsys 提供进程资源限制与内存布局查询工具。
//
// # 功能概览
//
//   - [GetStackLimit]、[SetStackLimit]: 查询/设置主线程栈上限（RLIMIT_STACK）
//   - [StackRegion]: 从 /proc/self/maps 读取主线程栈映射（[stack]）
//   - [FindRegion]: 在任意 maps 格式的输入中按名称查找映射
//
// # 平台支持
//
// GetStackLimit 和 SetStackLimit 在所有 Unix 平台上通过 RLIMIT_STACK 实现；
// StackRegion 依赖 procfs，仅在 Linux 上可用。不支持的平台返回 [ErrUnsupportedPlatform]。
// 参数校验（如零值检查）在所有平台上行为一致。
package xsys
