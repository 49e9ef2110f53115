package ternary

import (
	"strings"

	"github.com/pkg/errors"
)

// Trit is a balanced ternary digit: -1, 0 or +1.
type Trit int8

const (
	// Neg is the negative trit, written as NegGlyph.
	Neg Trit = -1
	// Zero trit.
	Zero Trit = 0
	// Pos is the positive trit, written as '1'.
	Pos Trit = 1
)

// NegGlyph is the textual symbol of the negative trit.
const NegGlyph = 'λ'

// TritsPerTryte is the width of the machine word.
const TritsPerTryte = 6

var (
	// ErrInvalidDigit is returned for a symbol that is not part of a numeral's notation.
	ErrInvalidDigit = errors.New("invalid numeral literal")
	// ErrOutOfRange is returned when a value does not fit its destination width.
	ErrOutOfRange = errors.New("value out of range")
)

// Glyph returns the textual symbol of t.
func (t Trit) Glyph() rune {
	switch t {
	case Neg:
		return NegGlyph
	case Pos:
		return '1'
	default:
		return '0'
	}
}

// TritFromGlyph converts a trit symbol back to its value.
func TritFromGlyph(r rune) (Trit, bool) {
	switch r {
	case NegGlyph:
		return Neg, true
	case '0':
		return Zero, true
	case '1':
		return Pos, true
	}
	return Zero, false
}

// Tryte is the six-trit machine word. Index 0 holds the most significant trit.
type Tryte [TritsPerTryte]Trit

// MaxTryte is the largest value a single tryte holds; -MaxTryte is the smallest.
const MaxTryte = 364

// String renders the tryte as six trit symbols.
func (t Tryte) String() string {
	var sb strings.Builder
	for _, d := range t {
		sb.WriteRune(d.Glyph())
	}
	return sb.String()
}

// Int returns the integer value of the tryte.
func (t Tryte) Int() int64 {
	var v int64
	for _, d := range t {
		v = v*3 + int64(d)
	}
	return v
}

// IsZero reports whether every trit is zero.
func (t Tryte) IsZero() bool {
	return t == Tryte{}
}

// ParseTryte reads exactly six trit symbols.
func ParseTryte(s string) (Tryte, error) {
	var t Tryte
	runes := []rune(s)
	if len(runes) != TritsPerTryte {
		return t, errors.Wrapf(ErrInvalidDigit, "tryte %q must have %d trits", s, TritsPerTryte)
	}
	for i, r := range runes {
		d, ok := TritFromGlyph(r)
		if !ok {
			return t, errors.Wrapf(ErrInvalidDigit, "tryte %q: symbol %q", s, r)
		}
		t[i] = d
	}
	return t, nil
}

// Word is a multi-tryte value, most significant tryte first.
type Word []Tryte

// Int returns the integer value of the word.
func (w Word) Int() int64 {
	var v int64
	for _, t := range w {
		v = v*pow3(TritsPerTryte) + t.Int()
	}
	return v
}

// String renders the trytes separated by single spaces.
func (w Word) String() string {
	parts := make([]string, len(w))
	for i, t := range w {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func pow3(n int) int64 {
	v := int64(1)
	for i := 0; i < n; i++ {
		v *= 3
	}
	return v
}
