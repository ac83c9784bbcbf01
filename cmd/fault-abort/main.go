// fault-abort 向自身发送 SIGABRT 并以该信号终止。
package main

import (
	"os"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func main() {
	os.Exit(xfault.Main(xfault.NameAbort))
}
