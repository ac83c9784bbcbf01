package xlog

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

var _ LoggerWithLevel = (*xlogger)(nil)

// shared 是同一次 Build 派生出的所有 logger 共用的状态。
type shared struct {
	level     *slog.LevelVar
	addSource bool
	onError   func(error)
	reporting atomic.Bool // onError 正在执行
}

type xlogger struct {
	handler slog.Handler
	*shared
}

//go:noinline
func (l *xlogger) log(ctx context.Context, level slog.Level, msg string, attrs []slog.Attr) {
	if !l.handler.Enabled(ctx, level) {
		return
	}

	var pc uintptr
	if l.addSource {
		// 跳过 Callers、log 与 Debug/Info/Warn/Error
		var pcs [1]uintptr
		runtime.Callers(3, pcs[:])
		pc = pcs[0]
	}

	r := slog.NewRecord(time.Now(), level, msg, pc)
	r.AddAttrs(attrs...)
	if err := l.handler.Handle(ctx, r); err != nil {
		l.report(err)
	}
}

// report 把写日志失败交给 onError。回调中再次失败不会重入，回调 panic 被吞掉。
func (l *xlogger) report(err error) {
	if l.onError == nil || !l.reporting.CompareAndSwap(false, true) {
		return
	}
	defer l.reporting.Store(false)
	defer func() { _ = recover() }()
	l.onError(err)
}

func (l *xlogger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelDebug, msg, attrs)
}

func (l *xlogger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelInfo, msg, attrs)
}

func (l *xlogger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelWarn, msg, attrs)
}

func (l *xlogger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.log(ctx, slog.LevelError, msg, attrs)
}

func (l *xlogger) With(attrs ...slog.Attr) Logger {
	if len(attrs) == 0 {
		return l
	}
	return &xlogger{handler: l.handler.WithAttrs(attrs), shared: l.shared}
}

func (l *xlogger) WithGroup(name string) Logger {
	if name == "" {
		return l
	}
	return &xlogger{handler: l.handler.WithGroup(name), shared: l.shared}
}

func (l *xlogger) SetLevel(level Level) { l.level.Set(slog.Level(level)) }

func (l *xlogger) GetLevel() Level { return Level(l.level.Level()) }

func (l *xlogger) Enabled(ctx context.Context, level Level) bool {
	return l.handler.Enabled(ctx, slog.Level(level))
}
