//go:build linux

package xsys

import (
	"fmt"
	"os"
)

// StackRegionName 是主线程栈在 maps 中的伪名称。
const StackRegionName = "[stack]"

// procSelfMaps 是 maps 文件路径，测试中可替换。
var procSelfMaps = "/proc/self/maps"

// StackRegion 返回主线程栈的当前映射。
//
// 映射的 Start 会随栈增长而下移；返回值只是调用时刻的快照。
func StackRegion() (Region, error) {
	f, err := os.Open(procSelfMaps)
	if err != nil {
		return Region{}, fmt.Errorf("xsys: open maps: %w", err)
	}
	defer f.Close()
	return FindRegion(f, StackRegionName)
}
