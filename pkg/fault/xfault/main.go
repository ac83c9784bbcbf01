package xfault

import (
	"context"
	"fmt"
	"io"
	"os"
)

// stderr 用于 Main 报告错误。
var stderr io.Writer = os.Stderr

// Main 是 cmd/fault-* 的进程入口：运行指定夹具并返回退出码。
//
//	func main() {
//		os.Exit(xfault.Main(xfault.NameSegfault))
//	}
//
// 0 表示正常返回（仅非确定性夹具存活时可能），1 表示夹具错误，2 表示未知夹具。
func Main(name string, opts ...Option) int {
	f, err := Lookup(name)
	if err == nil {
		err = f.Run(context.Background(), opts...)
	}
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
	}
	return ExitCode(err)
}
