//go:build linux

package xfault

// 操作数放在包级变量中，编译器无法常量折叠。
var (
	divDividend int64 = 1
	divDivisor  int64
	divSink     int64
)

// idiv 用 IDIVQ 计算 a / b，不做零检查。
func idiv(a, b int64) int64

func prepareDivZero(*Options) (faultFunc, error) {
	return func(*diag) error {
		divSink = idiv(divDividend, divDivisor)
		return nil
	}, nil
}
