package xproc

import "sync"

// resetNameCache 清空进程名缓存，下次 ProcessName 重新解析。
func resetNameCache() {
	processName = sync.OnceValue(resolveProcessName)
}
