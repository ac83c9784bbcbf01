package xrotate

import (
	"fmt"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/omeyang/xfault/pkg/util/xfile"
)

// 默认值
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 7

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

// Config 轮转配置。
type Config struct {
	MaxSizeMB  int  // 单个文件上限（MB），超过时轮转
	MaxBackups int  // 保留的备份数量，0 表示只按天数清理
	MaxAgeDays int  // 备份保留天数，0 表示只按数量清理
	Compress   bool // gzip 压缩备份
	LocalTime  bool // 备份文件名使用本地时间（默认 UTC）
}

// Option 配置选项函数。
type Option func(*Config)

func WithMaxSize(mb int) Option {
	return func(c *Config) { c.MaxSizeMB = mb }
}

func WithMaxBackups(n int) Option {
	return func(c *Config) { c.MaxBackups = n }
}

func WithMaxAge(days int) Option {
	return func(c *Config) { c.MaxAgeDays = days }
}

func WithCompress(compress bool) Option {
	return func(c *Config) { c.Compress = compress }
}

func WithLocalTime(local bool) Option {
	return func(c *Config) { c.LocalTime = local }
}

func (c *Config) validate() error {
	if c.MaxSizeMB <= 0 || c.MaxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, c.MaxSizeMB, maxSizeMB)
	}
	if c.MaxBackups < 0 || c.MaxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, c.MaxBackups, maxBackups)
	}
	if c.MaxAgeDays < 0 || c.MaxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, c.MaxAgeDays, maxAgeDays)
	}
	if c.MaxBackups == 0 && c.MaxAgeDays == 0 {
		return ErrNoCleanupPolicy
	}
	return nil
}

type lumberjackRotator struct {
	logger *lumberjack.Logger
	closed atomic.Bool
}

var _ Rotator = (*lumberjackRotator)(nil)

// NewLumberjack 创建轮转器。路径经 [xfile.SanitizePath] 校验，父目录不存在时以 0750 创建。
// 文件在首次写入时才创建。
func NewLumberjack(filename string, opts ...Option) (Rotator, error) {
	cfg := Config{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	path, err := xfile.SanitizePath(filename)
	if err != nil {
		return nil, err
	}
	if err := xfile.EnsureDir(path); err != nil {
		return nil, err
	}

	return &lumberjackRotator{
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
	}, nil
}

func (r *lumberjackRotator) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	n, err := r.logger.Write(p)
	// Write 与 Close 并发时统一报告 ErrClosed
	if err != nil && r.closed.Load() {
		return n, ErrClosed
	}
	return n, err
}

func (r *lumberjackRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return r.logger.Close()
}

func (r *lumberjackRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}
	return r.logger.Rotate()
}
