package xsys

// Unlimited 对应 RLIM_INFINITY。
const Unlimited = ^uint64(0)

// DefaultStackLimit 是 Linux 发行版常见的默认栈上限（8 MiB）。
const DefaultStackLimit uint64 = 8 << 20

// validateStackLimit 校验栈限制值的有效性。
// 跨平台共享校验逻辑，避免 platform-specific 文件中的重复代码。
func validateStackLimit(limit uint64) error {
	if limit == 0 {
		return ErrInvalidStackLimit
	}
	return nil
}
