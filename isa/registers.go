package isa

import (
	"strings"

	"github.com/Urethramancer/terasm/ternary"
)

// Register codes. Each architectural register is addressed by one trit.
const (
	RZ = ternary.Neg
	R0 = ternary.Zero
	R1 = ternary.Pos
)

// LoadAddress is the machine address of the first tryte of a program image.
// Absolute label references are the unit address offset by this value.
const LoadAddress = -ternary.MaxTryte

var registerNames = map[string]ternary.Trit{
	"rz": RZ,
	"r0": R0,
	"r1": R1,
}

// ParseRegister resolves a register name, case-insensitively.
func ParseRegister(s string) (ternary.Trit, bool) {
	r, ok := registerNames[strings.ToLower(s)]
	return r, ok
}

// RegisterName returns the canonical name of a register code.
func RegisterName(r ternary.Trit) string {
	switch r {
	case RZ:
		return "rz"
	case R1:
		return "r1"
	default:
		return "r0"
	}
}
