package xsys

import "errors"

var (
	// ErrInvalidStackLimit 表示栈限制值无效。
	ErrInvalidStackLimit = errors.New("xsys: stack limit must be greater than 0")

	// ErrUnsupportedPlatform 表示当前平台不支持此操作。
	ErrUnsupportedPlatform = errors.New("xsys: unsupported platform")

	// ErrRegionNotFound 表示 maps 中不存在指定名称的映射。
	ErrRegionNotFound = errors.New("xsys: memory region not found")

	// ErrMalformedMaps 表示 maps 行格式无法解析。
	ErrMalformedMaps = errors.New("xsys: malformed maps line")
)
