// Package faulttest 在子进程中运行故障夹具并收集进程终止状态。
//
// 故障夹具以信号终止进程，不能在测试进程内运行。测试二进制在 TestMain 中调用
// [Child]：当环境变量 [EnvFixture] 被设置时，当前进程是子进程，运行夹具后退出；
// 否则立即返回，继续执行测试。父进程通过 [Run] 重新执行测试二进制并返回 [Outcome]。
//
//	func TestMain(m *testing.M) {
//		faulttest.Child(func(name string) int {
//			return xfault.Main(name)
//		})
//		os.Exit(m.Run())
//	}
package faulttest
