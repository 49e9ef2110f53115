package assembler

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/Urethramancer/terasm/isa"
	"github.com/Urethramancer/terasm/ternary"
)

// DestMarker separates source operands from the destination operand.
const DestMarker = "→"

// asciiDestMarker is accepted as a spelling of DestMarker.
const asciiDestMarker = "->"

// OperandKind is the class of an operand.
type OperandKind int

const (
	// OperandRegister names one of the architectural registers.
	OperandRegister OperandKind = iota
	// OperandImmediate is a literal or a label.
	OperandImmediate
)

// Operand is one classified instruction operand.
type Operand struct {
	Raw      string
	Kind     OperandKind
	Memory   bool
	Register ternary.Trit
	// Value holds a literal immediate.
	Value ternary.Tryte
	// Label is set for an immediate that refers to a label.
	Label string
}

// Shape returns the operand's template key: r, [r], i or [i].
func (o *Operand) Shape() string {
	s := isa.ShapeImmediate
	if o.Kind == OperandRegister {
		s = isa.ShapeRegister
	}
	if o.Memory {
		return "[" + s + "]"
	}
	return s
}

// IsLabelName reports whether s can name a label: a letter other than the
// negative trit glyph, followed by letters, digits or underscores.
func IsLabelName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) || r == ternary.NegGlyph {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

// parseOperand classifies one operand token.
// Brackets mark memory addressing; the inner token is a register, a label or a literal.
func parseOperand(s string) (Operand, error) {
	op := Operand{Raw: s}
	inner := s
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		op.Memory = true
		inner = strings.TrimSpace(s[1 : len(s)-1])
	}

	if r, ok := isa.ParseRegister(inner); ok {
		op.Kind = OperandRegister
		op.Register = r
		return op, nil
	}

	op.Kind = OperandImmediate
	if IsLabelName(inner) {
		op.Label = inner
		return op, nil
	}

	w, err := ternary.Encode(inner, ternary.TryteWidth)
	if err != nil {
		return op, errors.Wrapf(err, "operand %s", s)
	}
	op.Value = w[0]
	return op, nil
}

// splitLabel separates an optional "label:" prefix from the line body.
func splitLabel(text string) (label, body string, err error) {
	before, after, found := strings.Cut(text, ":")
	if !found {
		return "", strings.TrimSpace(text), nil
	}
	label = strings.TrimSpace(before)
	if !IsLabelName(label) {
		return "", "", errors.Wrapf(ErrInvalidLabelName, "%q", label)
	}
	if _, ok := isa.ParseRegister(label); ok {
		return "", "", errors.Wrapf(ErrInvalidLabelName, "%q is a register", label)
	}
	return label, strings.TrimSpace(after), nil
}

// splitFields breaks an operand list on commas and whitespace.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// instruction is one parsed code line, ready for its family's encoder.
type instruction struct {
	Mnemonic string
	Family   *isa.Family
	Variant  isa.Variant
	Operands []Operand
	HasDest  bool
}

// parseInstruction splits a code line body into mnemonic and classified operands.
func parseInstruction(body string) (*instruction, error) {
	body = strings.ReplaceAll(body, asciiDestMarker, DestMarker)

	mnemonic, rest := body, ""
	if i := strings.IndexFunc(body, unicode.IsSpace); i != -1 {
		mnemonic, rest = body[:i], body[i:]
	}
	// A marker glued to the mnemonic still counts.
	if i := strings.Index(mnemonic, DestMarker); i != -1 {
		mnemonic, rest = mnemonic[:i], mnemonic[i:]+rest
	}

	f, v, ok := isa.Lookup(mnemonic)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMnemonic, "instruction %q", mnemonic)
	}
	ins := &instruction{
		Mnemonic: strings.ToLower(mnemonic),
		Family:   f,
		Variant:  v,
	}

	srcText, dstText, hasDest := strings.Cut(rest, DestMarker)
	raw := splitFields(srcText)
	if hasDest {
		ins.HasDest = true
		dst := splitFields(dstText)
		if len(dst) != 1 {
			return nil, errors.Wrapf(ErrWrongOperandCount, "<%s> must have exactly one destination after %s", ins.Mnemonic, DestMarker)
		}
		raw = append(raw, dst[0])
	}

	for _, s := range raw {
		op, err := parseOperand(s)
		if err != nil {
			return nil, err
		}
		ins.Operands = append(ins.Operands, op)
	}
	return ins, nil
}
