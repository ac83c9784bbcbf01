package xlog

import (
	"context"
	"log/slog"
)

// Logger 结构化日志。每个方法都接收 ctx，属性使用 slog.Attr 以避免 key/value 配对错误。
type Logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Warn(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)

	// With 追加属性，派生 logger 与父级共用级别
	With(attrs ...slog.Attr) Logger
	WithGroup(name string) Logger
}

// Leveler 运行时级别控制。
type Leveler interface {
	SetLevel(level Level)
	GetLevel() Level
	Enabled(ctx context.Context, level Level) bool
}

// LoggerWithLevel 是 [Builder.Build] 的返回类型。
type LoggerWithLevel interface {
	Logger
	Leveler
}
