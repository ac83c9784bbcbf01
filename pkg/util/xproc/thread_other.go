//go:build !linux

package xproc

// ThreadID 在非 Linux 平台上返回 0。
func ThreadID() int {
	return 0
}

// IsMainThread 在非 Linux 平台上无法判定，始终返回 false。
func IsMainThread() bool {
	return false
}
