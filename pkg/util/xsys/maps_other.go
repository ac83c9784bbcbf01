//go:build !linux

package xsys

// StackRegionName 是主线程栈在 maps 中的伪名称。
const StackRegionName = "[stack]"

// StackRegion 在非 Linux 平台上返回 [ErrUnsupportedPlatform]。
func StackRegion() (Region, error) {
	return Region{}, ErrUnsupportedPlatform
}
