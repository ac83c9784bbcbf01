//go:build !linux || !(amd64 || arm64)

package xsig

import "syscall"

// ResetDefault 在不支持的平台上返回 [ErrUnsupportedPlatform]。
func ResetDefault(sigs ...syscall.Signal) error {
	return ErrUnsupportedPlatform
}

// IsDefault 在不支持的平台上返回 [ErrUnsupportedPlatform]。
func IsDefault(sig syscall.Signal) (bool, error) {
	return false, ErrUnsupportedPlatform
}

// Unblock 在不支持的平台上返回 [ErrUnsupportedPlatform]。
func Unblock(sigs ...syscall.Signal) error {
	return ErrUnsupportedPlatform
}

// RaiseThread 在不支持的平台上返回 [ErrUnsupportedPlatform]。
func RaiseThread(sig syscall.Signal) error {
	return ErrUnsupportedPlatform
}
