// xfault 列出并运行故障夹具。
//
// 用法:
//
//	xfault [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件（YAML/JSON，环境变量 XFAULT_CONFIG）
//	    --log-level   日志级别 debug|info|warn|error（覆盖配置文件）
//	    --log-format  日志格式 text|json（覆盖配置文件）
//
// 命令:
//
//	list [--json]     列出夹具及其期望的故障特征
//	run <fixture>     在当前进程中运行夹具
//
// 退出码:
//
//	0: 成功（run 仅在非确定性夹具存活时返回）
//	1: 夹具错误（准备失败、未产生故障、平台不支持）
//	2: 参数错误（未知夹具、缺少参数、未知选项、配置无效）
//
// 示例:
//
//	xfault list
//	xfault list --json
//	xfault run segfault
//	xfault -c xfault.yaml --log-format json run use_after_free
package main

import (
	"os"
)

// 版本信息，通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
