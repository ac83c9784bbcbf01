// fault-segfault 通过 nil 指针写入，以 SIGSEGV 终止。
package main

import (
	"os"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func main() {
	os.Exit(xfault.Main(xfault.NameSegfault))
}
