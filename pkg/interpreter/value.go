package interpreter

import (
	"fmt"
)

type ValueKind int

const (
	KindInt  ValueKind = iota // 64-bit integer
	KindAddr                  // address of a data label
)

// Value is a machine word: a register or operand-stack slot.
type Value struct {
	Kind ValueKind
	I64  int64
	Sym  string
}

func newInt(n int64) Value {
	return Value{Kind: KindInt, I64: n}
}

func newAddr(label string) Value {
	return Value{Kind: KindAddr, Sym: label}
}

// String renders the value as a string.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.I64)
	case KindAddr:
		return "&" + v.Sym
	default:
		return "<nil>"
	}
}

// AsInt returns the integer held by the value.
func (v Value) AsInt() (int64, error) {
	if v.Kind != KindInt {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrInvalidOperand, v)
	}
	return v.I64, nil
}

// AsAddr returns the label whose address the value holds.
func (v Value) AsAddr() (string, error) {
	if v.Kind != KindAddr {
		return "", fmt.Errorf("%w: %s is not an address", ErrInvalidOperand, v)
	}
	return v.Sym, nil
}
