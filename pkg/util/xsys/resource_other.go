//go:build !unix

package xsys

// SetStackLimit 在非 Unix 平台上返回 [ErrUnsupportedPlatform]。
// 参数校验仍然执行，以保持跨平台行为一致。
func SetStackLimit(limit uint64) error {
	if err := validateStackLimit(limit); err != nil {
		return err
	}
	return ErrUnsupportedPlatform
}

// GetStackLimit 在非 Unix 平台上返回 [ErrUnsupportedPlatform]。
func GetStackLimit() (soft, hard uint64, err error) {
	return 0, 0, ErrUnsupportedPlatform
}
