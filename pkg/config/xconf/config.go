package xconf

import "github.com/knadh/koanf/v2"

// Format 配置文件格式。
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 已加载的配置。基础读取操作直接使用 Client 返回的 koanf 实例。
type Config interface {
	// Client 返回底层 koanf 实例。
	Client() *koanf.Koanf

	// Unmarshal 将 path 下的配置反序列化到 target，path 为空时反序列化整个配置。
	Unmarshal(path string, target any) error

	// Path 返回配置文件路径，由字节数据创建时为空。
	Path() string

	Format() Format
}
