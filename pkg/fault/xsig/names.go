package xsig

import (
	"strconv"
	"syscall"
)

// Linux 信号编号。与 syscall 常量取值相同，单独列出以便在非 Linux 平台上
// 仍能按 Linux 语义渲染名称表。
const (
	SIGILL  syscall.Signal = 4
	SIGABRT syscall.Signal = 6
	SIGBUS  syscall.Signal = 7
	SIGFPE  syscall.Signal = 8
	SIGSEGV syscall.Signal = 11
)

// si_code 取值（include/uapi/asm-generic/siginfo.h）。
const (
	// CodeAny 表示不约束 si_code。
	CodeAny int32 = -1 << 31

	SIUser   int32 = 0
	SIKernel int32 = 0x80
	SIQueue  int32 = -1
	SITkill  int32 = -6

	IllIllOpc int32 = 1
	IllIllOpn int32 = 2
	IllIllAdr int32 = 3
	IllIllTrp int32 = 4
	IllPrvOpc int32 = 5

	FpeIntDiv int32 = 1
	FpeIntOvf int32 = 2
	FpeFltDiv int32 = 3

	SegvMapErr int32 = 1
	SegvAccErr int32 = 2

	BusAdrAln int32 = 1
	BusAdrErr int32 = 2
	BusObjErr int32 = 3
)

var signalNames = map[syscall.Signal]string{
	SIGILL:  "SIGILL",
	SIGABRT: "SIGABRT",
	SIGBUS:  "SIGBUS",
	SIGFPE:  "SIGFPE",
	SIGSEGV: "SIGSEGV",
}

type codeKey struct {
	sig  syscall.Signal
	code int32
}

var codeNames = map[codeKey]string{
	{SIGSEGV, SegvMapErr}: "SEGV_MAPERR",
	{SIGSEGV, SegvAccErr}: "SEGV_ACCERR",
	{SIGBUS, BusAdrAln}:   "BUS_ADRALN",
	{SIGBUS, BusAdrErr}:   "BUS_ADRERR",
	{SIGBUS, BusObjErr}:   "BUS_OBJERR",
	{SIGFPE, FpeIntDiv}:   "FPE_INTDIV",
	{SIGFPE, FpeIntOvf}:   "FPE_INTOVF",
	{SIGFPE, FpeFltDiv}:   "FPE_FLTDIV",
	{SIGILL, IllIllOpc}:   "ILL_ILLOPC",
	{SIGILL, IllIllOpn}:   "ILL_ILLOPN",
	{SIGILL, IllIllAdr}:   "ILL_ILLADR",
	{SIGILL, IllIllTrp}:   "ILL_ILLTRP",
	{SIGILL, IllPrvOpc}:   "ILL_PRVOPC",
}

// 与具体信号无关的通用来源码。
var genericCodeNames = map[int32]string{
	SIUser:   "SI_USER",
	SIKernel: "SI_KERNEL",
	SIQueue:  "SI_QUEUE",
	SITkill:  "SI_TKILL",
}

// SignalName 返回崩溃类信号的符号名称（如 "SIGSEGV"）。
// 其他信号返回 "SIG<n>"。
func SignalName(sig syscall.Signal) string {
	if name, ok := signalNames[sig]; ok {
		return name
	}
	return "SIG" + strconv.Itoa(int(sig))
}

// CodeName 返回 si_code 的符号名称。
//
// 信号相关的取值（如 SEGV_MAPERR）优先于通用来源码（如 SI_TKILL）；
// 正数 si_code 的含义依赖信号，因此 (SIGSEGV, 1) 与 (SIGBUS, 1) 名称不同。
// 未知组合返回 "UNKNOWN"，[CodeAny] 返回 "*"。
func CodeName(sig syscall.Signal, code int32) string {
	if code == CodeAny {
		return "*"
	}
	if name, ok := codeNames[codeKey{sig, code}]; ok {
		return name
	}
	if name, ok := genericCodeNames[code]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsCrashSignal 报告信号是否属于崩溃类信号。
func IsCrashSignal(sig syscall.Signal) bool {
	_, ok := signalNames[sig]
	return ok
}
