// Package fault 提供故障注入相关的子包。
//
// 子包列表：
//   - xfault: 七个故障夹具，以及夹具目录和退出码约定
//   - xsig: 信号签名描述，信号处置的重置与解除阻塞
package fault
