package xlog

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level 日志级别，取值与 slog.Level 一致。
type Level slog.Level

const (
	LevelDebug = Level(slog.LevelDebug)
	LevelInfo  = Level(slog.LevelInfo)
	LevelWarn  = Level(slog.LevelWarn)
	LevelError = Level(slog.LevelError)
)

// levelNames 配置文件与命令行接受的级别名称（小写）
var levelNames = map[string]Level{
	"":        LevelInfo,
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// String 与 slog.Level 相同，例如 "INFO"、"WARN+2"。
func (l Level) String() string {
	return slog.Level(l).String()
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText 让 koanf 把 log.level 直接解码为 Level。
func (l *Level) UnmarshalText(data []byte) error {
	parsed, err := ParseLevel(string(data))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel 解析级别名称，大小写不敏感并忽略首尾空白；空字符串为 info。
func ParseLevel(s string) (Level, error) {
	if level, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return level, nil
	}
	return LevelInfo, fmt.Errorf("xlog: unknown level %q", s)
}
