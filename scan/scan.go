// Package scan implements the byte-level scanner primitives the parser
// builds on: finding the next quote character and running off a digit
// run, each with a scalar baseline and wider chunked variants, selected
// by a runtime dispatch policy.
//
// cppon has no access to compiler SIMD intrinsics or assembly (this
// module is plain Go, and CPU-feature introspection is out of scope
// here — only the capability-query interface the scanner consumes is
// exposed, as [CPUQuerier]). The wider variants
// instead use the classic SWAR ("SIMD within a register") bit trick of
// testing eight bytes at once inside a uint64, processing 2, 4, or 8
// words per outer-loop step to approximate 16/32/64-byte vectorized
// tiers. The scalar path is the correctness baseline every wider tier
// must agree with.
package scan

// Level is a supported scan width tier.
type Level uint8

const (
	LevelScalar Level = iota
	Level16
	Level32
	Level64
)

// words reports how many 8-byte words a Level processes per outer-loop
// step. LevelScalar processes none (the scalar path doesn't chunk).
func (l Level) words() int {
	switch l {
	case Level16:
		return 2
	case Level32:
		return 4
	case Level64:
		return 8
	default:
		return 0
	}
}

// CPUQuerier reports the widest scan [Level] the runtime CPU supports.
// Real feature detection (cpuid and friends) is an external concern;
// cppon only specifies this interface and a trivial default
// implementation.
type CPUQuerier interface {
	MaxSupportedLevel() Level
}

// alwaysMax is the default [CPUQuerier]: it reports full support,
// leaving correctness to the scalar-equivalence the dispatcher
// guarantees regardless of level.
type alwaysMax struct{}

func (alwaysMax) MaxSupportedLevel() Level { return Level64 }

// DefaultQuerier is used by new [Dispatcher]s that don't specify one.
var DefaultQuerier CPUQuerier = alwaysMax{}

// clampLevel caps level at the widest the querier supports.
func clampLevel(level Level, q CPUQuerier) Level {
	if max := q.MaxSupportedLevel(); level > max {
		return max
	}
	return level
}
