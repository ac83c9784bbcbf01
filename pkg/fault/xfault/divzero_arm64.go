//go:build linux

package xfault

// arm64 的 SDIV 除以零得到 0，不产生异常。
func prepareDivZero(*Options) (faultFunc, error) {
	return nil, ErrUnsupportedArch
}
