// Package xlog 提供基于 log/slog 的结构化日志。
//
// 用于 xfault 命令行的运行日志（配置加载、夹具开始、夹具错误）。
// 夹具在故障前写出的诊断行不经过本包：该行格式固定，由 xfault 直接写入并刷出。
//
// # 构建
//
//	logger, err := xlog.New().
//		SetOutput(os.Stderr).
//		SetLevelString("debug").
//		SetFormat("json").
//		SetAttrs(xlog.PID(os.Getpid())).
//		Build()
//
// # 接口
//
// [Logger] 的方法都接收 context.Context，只接受 slog.Attr，避免隐式 key-value 转换。
// [Leveler] 支持运行时调整级别，派生 Logger（With/WithGroup）共享同一个 LevelVar。
//
// # 错误处理
//
// Handler.Handle 失败不会向调用方返回，也不会 panic；可通过 SetOnError 接收回调。
package xlog
