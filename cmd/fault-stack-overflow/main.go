// fault-stack-overflow 耗尽主线程栈，以 SIGSEGV 终止。
package main

import (
	"os"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func main() {
	os.Exit(xfault.Main(xfault.NameStackOverflow))
}
