// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xfile: 路径校验、目录创建、夹具后备文件
//   - xjson: JSON 输出
//   - xproc: 进程信息查询，PID 和进程名称
//   - xsys: 栈资源限制与主线程栈区间
package util
