package xsig

import "errors"

var (
	// ErrUnsupportedPlatform 表示当前平台不支持直接操作信号处置。
	ErrUnsupportedPlatform = errors.New("xsig: unsupported platform")

	// ErrInvalidSignal 表示信号编号超出有效范围。
	ErrInvalidSignal = errors.New("xsig: invalid signal")
)
