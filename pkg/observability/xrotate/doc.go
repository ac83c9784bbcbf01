// Package xrotate 提供按大小轮转的日志文件输出，基于 lumberjack。
//
// xfault 命令行配置 log.file 后，运行日志写入轮转文件；夹具的诊断行始终写入 stderr。
// lumberjack 每次 Write 直接写文件，进程随后被信号终止也不会丢失已写入的日志。
//
// 默认不压缩备份：压缩在后台 goroutine 中进行，短生命周期的进程等不到它完成。
package xrotate
