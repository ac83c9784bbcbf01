package xlog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// 输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ReplaceAttrFunc 属性替换函数，返回空 Key 的 Attr 表示移除该属性
type ReplaceAttrFunc func(groups []string, a slog.Attr) slog.Attr

// Builder 日志配置构建器
type Builder struct {
	output      io.Writer
	levelVar    *slog.LevelVar
	format      string
	addSource   bool
	attrs       []slog.Attr
	replaceAttr ReplaceAttrFunc
	onError     func(error)
	err         error
}

// New 创建构建器，默认 stderr、info、text
func New() *Builder {
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	return &Builder{
		output:   os.Stderr,
		levelVar: levelVar,
		format:   FormatText,
	}
}

// SetOutput 设置日志输出目标，nil 被忽略
func (b *Builder) SetOutput(w io.Writer) *Builder {
	if w != nil {
		b.output = w
	}
	return b
}

// SetLevel 设置日志级别
func (b *Builder) SetLevel(level Level) *Builder {
	b.levelVar.Set(slog.Level(level))
	return b
}

// SetLevelString 通过字符串设置日志级别
func (b *Builder) SetLevelString(s string) *Builder {
	level, err := ParseLevel(s)
	if err != nil {
		b.err = err
		return b
	}
	return b.SetLevel(level)
}

// SetFormat 设置输出格式：text 或 json，空值为 text
func (b *Builder) SetFormat(format string) *Builder {
	normalized := strings.ToLower(strings.TrimSpace(format))
	switch normalized {
	case "":
		b.format = FormatText
	case FormatText, FormatJSON:
		b.format = normalized
	default:
		b.err = fmt.Errorf("xlog: unknown format %q", format)
	}
	return b
}

// SetAddSource 是否在日志中添加源码位置
func (b *Builder) SetAddSource(enable bool) *Builder {
	b.addSource = enable
	return b
}

// SetAttrs 追加每条日志都携带的固定属性（如 pid、进程名）。
// 固定属性在 Build 时通过 handler.WithAttrs 注入一次。
func (b *Builder) SetAttrs(attrs ...slog.Attr) *Builder {
	b.attrs = append(b.attrs, attrs...)
	return b
}

// SetReplaceAttr 设置属性替换函数
func (b *Builder) SetReplaceAttr(fn ReplaceAttrFunc) *Builder {
	b.replaceAttr = fn
	return b
}

// SetOnError 设置写日志失败时的回调，例如日志文件所在磁盘已满。
//
// 回调在写日志的 goroutine 上同步执行，回调内部再次触发的日志错误不会重入回调。
func (b *Builder) SetOnError(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// Build 构建 Logger
func (b *Builder) Build() (LoggerWithLevel, error) {
	if b.err != nil {
		return nil, b.err
	}

	opts := &slog.HandlerOptions{
		Level:     b.levelVar,
		AddSource: b.addSource,
	}
	if b.replaceAttr != nil {
		opts.ReplaceAttr = b.replaceAttr
	}

	var handler slog.Handler
	if b.format == FormatJSON {
		handler = slog.NewJSONHandler(b.output, opts)
	} else {
		handler = slog.NewTextHandler(b.output, opts)
	}
	if len(b.attrs) > 0 {
		handler = handler.WithAttrs(b.attrs)
	}

	return &xlogger{
		handler: handler,
		shared: &shared{
			level:     b.levelVar,
			addSource: b.addSource,
			onError:   b.onError,
		},
	}, nil
}
