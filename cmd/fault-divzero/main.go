// fault-divzero 执行整数除零，以 SIGFPE 终止。arm64 上以退出码 1 报告不支持。
package main

import (
	"os"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func main() {
	os.Exit(xfault.Main(xfault.NameDivZero))
}
