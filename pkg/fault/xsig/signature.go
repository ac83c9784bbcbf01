package xsig

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall"
)

// NullPageSize 是判定“零地址附近”的窗口大小：[0, NullPageSize)。
const NullPageSize = 0x1000

// AddrClass 描述期望的故障地址类别。
type AddrClass uint8

const (
	// AddrNone 不关心故障地址（如 SIGABRT、SIGFPE）。
	AddrNone AddrClass = iota
	// AddrNearZero 故障地址位于 [0, NullPageSize)。
	AddrNearZero
	// AddrStackGuard 故障地址位于线程栈映射的低端附近，远离零地址。
	AddrStackGuard
	// AddrBeyondEOF 故障地址位于文件映射中超出文件末尾的页内。
	AddrBeyondEOF
	// AddrAny 任意地址（非确定性场景）。
	AddrAny
)

var addrClassNames = [...]string{
	AddrNone:       "none",
	AddrNearZero:   "near-zero",
	AddrStackGuard: "stack-guard",
	AddrBeyondEOF:  "beyond-eof",
	AddrAny:        "any",
}

// String 返回地址类别名称。
func (c AddrClass) String() string {
	if int(c) < len(addrClassNames) {
		return addrClassNames[c]
	}
	return fmt.Sprintf("AddrClass(%d)", uint8(c))
}

// MarshalText 实现 encoding.TextMarshaler。
func (c AddrClass) MarshalText() ([]byte, error) {
	if int(c) >= len(addrClassNames) {
		return nil, fmt.Errorf("xsig: unknown addr class %d", uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (c *AddrClass) UnmarshalText(data []byte) error {
	parsed, err := ParseAddrClass(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseAddrClass 解析地址类别名称（大小写不敏感）。
func ParseAddrClass(s string) (AddrClass, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for i, name := range addrClassNames {
		if name == normalized {
			return AddrClass(i), nil
		}
	}
	return AddrNone, fmt.Errorf("xsig: unknown addr class %q", s)
}

// Contains 报告 addr 是否可能属于该类别。
//
// 只有 AddrNearZero 可以脱离进程内存布局独立判定；
// AddrStackGuard 与 AddrBeyondEOF 需要故障进程的映射信息，这里只排除零页。
func (c AddrClass) Contains(addr uintptr) bool {
	switch c {
	case AddrNearZero:
		return addr < NullPageSize
	case AddrStackGuard, AddrBeyondEOF:
		return addr >= NullPageSize
	default:
		return true
	}
}

// Signature 是一个夹具期望产生的故障特征。
type Signature struct {
	Signal        syscall.Signal
	Code          int32 // CodeAny 表示不约束
	Addr          AddrClass
	Deterministic bool
}

// Matches 报告观测到的 (信号, si_code) 是否符合期望。
func (s Signature) Matches(sig syscall.Signal, code int32) bool {
	if sig != s.Signal {
		return false
	}
	return s.Code == CodeAny || s.Code == code
}

// String 返回形如 "SIGSEGV/SEGV_MAPERR addr=near-zero" 的描述。
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(SignalName(s.Signal))
	b.WriteByte('/')
	b.WriteString(CodeName(s.Signal, s.Code))
	b.WriteString(" addr=")
	b.WriteString(s.Addr.String())
	if !s.Deterministic {
		b.WriteString(" (nondeterministic)")
	}
	return b.String()
}

type signatureJSON struct {
	Signal        int       `json:"signal"`
	SignalName    string    `json:"signal_name"`
	Code          *int32    `json:"code,omitempty"`
	CodeName      string    `json:"code_name"`
	Addr          AddrClass `json:"addr"`
	Deterministic bool      `json:"deterministic"`
}

// MarshalJSON 输出带符号名称的 JSON，便于外部对照表直接消费。
// CodeAny 时省略 code 字段。
func (s Signature) MarshalJSON() ([]byte, error) {
	v := signatureJSON{
		Signal:        int(s.Signal),
		SignalName:    SignalName(s.Signal),
		CodeName:      CodeName(s.Signal, s.Code),
		Addr:          s.Addr,
		Deterministic: s.Deterministic,
	}
	if s.Code != CodeAny {
		code := s.Code
		v.Code = &code
	}
	return json.Marshal(v)
}
