package xconf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

type koanfConfig struct {
	k      *koanf.Koanf
	path   string
	format Format
	opts   *Options
}

// New 从文件加载配置，格式由扩展名决定。
func New(path string, opts ...Option) (Config, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	c, err := load(data, format, opts)
	if err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}

// NewFromBytes 从字节数据加载配置，需要显式指定格式。空数据得到空配置。
func NewFromBytes(data []byte, format Format, opts ...Option) (Config, error) {
	if !isValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return load(data, format, opts)
}

func load(data []byte, format Format, opts []Option) (*koanfConfig, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	k := koanf.New(options.Delim)
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parserFor(format)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseFailed, err)
		}
	}

	return &koanfConfig{k: k, format: format, opts: options}, nil
}

func (c *koanfConfig) Client() *koanf.Koanf {
	return c.k
}

func (c *koanfConfig) Unmarshal(path string, target any) error {
	err := c.k.UnmarshalWithConf(path, target, koanf.UnmarshalConf{
		Tag: c.opts.Tag,
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           target,
			TagName:          c.opts.Tag,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnmarshalFailed, err)
	}
	return nil
}

func (c *koanfConfig) Path() string {
	return c.path
}

func (c *koanfConfig) Format() Format {
	return c.format
}

// DetectFormat 根据扩展名判断配置格式。
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: unknown extension %q", ErrUnsupportedFormat, ext)
	}
}

func isValidFormat(format Format) bool {
	return format == FormatYAML || format == FormatJSON
}

func parserFor(format Format) koanf.Parser {
	if format == FormatJSON {
		return json.Parser()
	}
	return yaml.Parser()
}
