package xrotate

import "errors"

var (
	// ErrInvalidMaxSize MaxSizeMB 必须在 1~10240 范围内。
	ErrInvalidMaxSize = errors.New("xrotate: invalid max size")

	// ErrInvalidMaxBackups MaxBackups 必须在 0~1024 范围内。
	ErrInvalidMaxBackups = errors.New("xrotate: invalid max backups")

	// ErrInvalidMaxAge MaxAgeDays 必须在 0~3650 范围内。
	ErrInvalidMaxAge = errors.New("xrotate: invalid max age")

	// ErrNoCleanupPolicy MaxBackups 和 MaxAgeDays 不能同时为 0。
	ErrNoCleanupPolicy = errors.New("xrotate: no cleanup policy configured")

	// ErrClosed 轮转器已关闭。
	ErrClosed = errors.New("xrotate: rotator is closed")
)
