package bigint

import "strings"

// Op names one operation of the engine capability set.
type Op string

// The fixed capability set shared by every engine.
const (
	OpInit     Op = "init"
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpCompare  Op = "compare"
	OpDivide   Op = "divide"
	OpModulus  Op = "modulus"
	OpMultiply Op = "multiply"
	OpPow      Op = "pow"
	OpPowMod   Op = "powmod"
	OpSqrt     Op = "sqrt"
)

var capabilities = [...]Op{
	OpInit, OpAdd, OpSubtract, OpCompare, OpDivide,
	OpModulus, OpMultiply, OpPow, OpPowMod, OpSqrt,
}

// Ops returns the capability set in declaration order.
func Ops() []Op {
	ops := make([]Op, len(capabilities))
	copy(ops, capabilities[:])
	return ops
}

// ParseOp validates an operation name against the capability set.
// Matching ignores case and surrounding space; aliases are not accepted.
func ParseOp(name string) (Op, bool) {
	candidate := Op(strings.ToLower(strings.TrimSpace(name)))
	for _, op := range capabilities {
		if op == candidate {
			return op, true
		}
	}
	return "", false
}

// Arity returns the minimum and maximum number of operands op accepts.
// For init the optional second operand is the base.
func (o Op) Arity() (minArgs, maxArgs int) {
	switch o {
	case OpInit:
		return 1, 2
	case OpSqrt:
		return 1, 1
	case OpPowMod:
		return 3, 3
	default:
		return 2, 2
	}
}

// String returns the operation name.
func (o Op) String() string { return string(o) }
