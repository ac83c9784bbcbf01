// fault-use-after-free 写入已释放的内存。结果不确定：
// 以 SIGSEGV 终止，或写出存活行并以 0 退出。
package main

import (
	"os"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func main() {
	os.Exit(xfault.Main(xfault.NameUseAfterFree))
}
