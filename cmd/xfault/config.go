package main

import (
	"fmt"
	"io"

	"github.com/omeyang/xfault/pkg/config/xconf"
	"github.com/omeyang/xfault/pkg/fault/xfault"
	"github.com/omeyang/xfault/pkg/observability/xlog"
	"github.com/omeyang/xfault/pkg/observability/xrotate"
)

// Config 命令行配置。
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Fixture FixtureConfig `koanf:"fixture"`
}

type LogConfig struct {
	Level  xlog.Level `koanf:"level"`
	Format string     `koanf:"format"`

	// File 非空时日志写入按大小轮转的文件，而不是 stderr
	File       string `koanf:"file"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
}

type FixtureConfig struct {
	TempDir        string    `koanf:"temp_dir"`
	StackFrameSize int       `koanf:"stack_frame_size"`
	UAF            UAFConfig `koanf:"uaf"`
}

type UAFConfig struct {
	BlockSize int    `koanf:"block_size"`
	Allocator string `koanf:"allocator"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      xlog.LevelInfo,
			Format:     xlog.FormatText,
			MaxSizeMB:  xrotate.DefaultMaxSizeMB,
			MaxBackups: xrotate.DefaultMaxBackups,
		},
		Fixture: FixtureConfig{
			StackFrameSize: xfault.DefaultStackFrameSize,
			UAF: UAFConfig{
				BlockSize: xfault.DefaultUAFBlockSize,
				Allocator: string(xfault.AllocatorMmap),
			},
		},
	}
}

// loadConfig 在默认值之上叠加配置文件。path 为空时只用默认值。
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	c, err := xconf.New(path)
	if err != nil {
		return cfg, err
	}
	if err := c.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	if _, err := xfault.ParseAllocator(cfg.Fixture.UAF.Allocator); err != nil {
		return cfg, fmt.Errorf("fixture.uaf.allocator: %w", err)
	}
	return cfg, nil
}

// fixtureOptions 把配置转换为夹具选项。诊断行写入 out。
func (c Config) fixtureOptions(out io.Writer) []xfault.Option {
	allocator, _ := xfault.ParseAllocator(c.Fixture.UAF.Allocator)
	return []xfault.Option{
		xfault.WithOutput(out),
		xfault.WithTempDir(c.Fixture.TempDir),
		xfault.WithStackFrameSize(c.Fixture.StackFrameSize),
		xfault.WithUAFBlockSize(c.Fixture.UAF.BlockSize),
		xfault.WithUAFAllocator(allocator),
	}
}

// logOutput 返回日志输出。配置了 log.file 时返回轮转器，调用方负责关闭。
func (c Config) logOutput(stderr io.Writer) (io.Writer, io.Closer, error) {
	if c.Log.File == "" {
		return stderr, nil, nil
	}
	r, err := xrotate.NewLumberjack(c.Log.File,
		xrotate.WithMaxSize(c.Log.MaxSizeMB),
		xrotate.WithMaxBackups(c.Log.MaxBackups),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("log.file: %w", err)
	}
	return r, r, nil
}
