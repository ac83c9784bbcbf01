// Package xfile 提供夹具使用的文件系统操作工具。
//
//   - [ValidateDir]: 校验目录参数（非空、无空字节、无 ".." 路径段）
//   - [EnsureDir]、[EnsureDirWithPerm]: 确保文件的父目录存在
//   - [CreateBackingFile]: 在指定目录创建写入了给定内容的临时文件，作为内存映射的后备存储
//
// 路径穿越检测使用精确的路径段匹配，只有 ".." 作为独立路径段时才被拒绝，
// "..config" 这类文件名不受影响。
//
// 预定义错误变量支持 [errors.Is] 判断。
package xfile
