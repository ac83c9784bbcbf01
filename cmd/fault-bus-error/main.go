// fault-bus-error 写入截断文件映射中超出 EOF 的页，以 SIGBUS 终止。
//
// 后备文件 bustest_* 创建在 $TMPDIR 下，故障发生后保留在磁盘上。
package main

import (
	"os"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func main() {
	os.Exit(xfault.Main(xfault.NameBusError))
}
