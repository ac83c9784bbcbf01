// fault-illegal-instruction 执行未定义指令，以 SIGILL 终止。
package main

import (
	"os"

	"github.com/omeyang/xfault/pkg/fault/xfault"
)

func main() {
	os.Exit(xfault.Main(xfault.NameIllegalInstruction))
}
