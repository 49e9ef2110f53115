package isa

import (
	"sort"
	"strings"

	"github.com/Urethramancer/terasm/ternary"
)

// Kind identifies an instruction family.
type Kind int

const (
	// Move copies a value between registers and memory.
	Move Kind = iota
	// Fill sets every trit of its operands to one constant.
	Fill
	// Transfer moves a value through a per-trit flag action.
	Transfer
	// Add is two-operand addition, with or without carry.
	Add
	// Bitwise is the tritwise ALU group.
	Bitwise
	// Compare sets the comparison flag.
	Compare
	// Jump is the conditional branch group.
	Jump
	// Restart resets the processor.
	Restart
)

func (k Kind) String() string {
	switch k {
	case Move:
		return "move"
	case Fill:
		return "fill"
	case Transfer:
		return "transfer"
	case Add:
		return "add"
	case Bitwise:
		return "bitwise"
	case Compare:
		return "compare"
	case Jump:
		return "jump"
	case Restart:
		return "restart"
	}
	return "unknown"
}

// DestRule says whether an instruction must or must not name an explicit destination.
type DestRule int

const (
	// DestForbidden instructions take no destination marker.
	DestForbidden DestRule = iota
	// DestRequired instructions must mark their last operand as destination.
	DestRequired
)

// Variant holds the trits that select an operation within a family.
// Templates refer to them as 'v' and 'w'.
type Variant [2]ternary.Trit

// Operand shapes, used to key templates.
const (
	ShapeRegister  = "r"
	ShapeRegMem    = "[r]"
	ShapeImmediate = "i"
	ShapeImmMem    = "[i]"
)

// Pad marks an all-zero trailing tryte in a template.
const Pad = -1

// Template is the fixed encoding of one operand shape combination.
//
// Pattern holds the opcode tryte, the operand tryte and the mode tryte.
// Each rune is a fixed trit ('λ', '0', '1'), the register code of operand
// 0, 1 or 2 ('x', 'y', 'z'), or a variant trit ('v', 'w').
// Trailing lists the extra trytes in order: an operand index whose
// immediate value is emitted, or Pad.
type Template struct {
	Shape    string
	Pattern  [3]string
	Trailing []int
}

// Len returns the number of trytes the template emits.
func (t *Template) Len() int {
	return len(t.Pattern) + len(t.Trailing)
}

// Fill builds the three leading trytes from register codes and variant trits.
func (t *Template) Fill(regs [3]ternary.Trit, v Variant) [3]ternary.Tryte {
	var out [3]ternary.Tryte
	for i, p := range t.Pattern {
		j := 0
		for _, r := range p {
			switch r {
			case 'x':
				out[i][j] = regs[0]
			case 'y':
				out[i][j] = regs[1]
			case 'z':
				out[i][j] = regs[2]
			case 'v':
				out[i][j] = v[0]
			case 'w':
				out[i][j] = v[1]
			default:
				out[i][j], _ = ternary.TritFromGlyph(r)
			}
			j++
		}
	}
	return out
}

// Match checks the three leading trytes against the template's fixed trits and
// extracts register codes and variant trits. seen reports which registers the
// template encodes.
func (t *Template) Match(words [3]ternary.Tryte) (regs [3]ternary.Trit, seen [3]bool, v Variant, ok bool) {
	for i, p := range t.Pattern {
		j := 0
		for _, r := range p {
			got := words[i][j]
			j++
			switch r {
			case 'x', 'y', 'z':
				regs[r-'x'] = got
				seen[r-'x'] = true
			case 'v':
				v[0] = got
			case 'w':
				v[1] = got
			default:
				want, _ := ternary.TritFromGlyph(r)
				if got != want {
					return regs, seen, v, false
				}
			}
		}
	}
	return regs, seen, v, true
}

// Family is one group of mnemonics sharing operand rules and templates.
type Family struct {
	Kind Kind
	// Ident is matched as a prefix (or suffix when Suffix is set) of the
	// mnemonic. An empty Ident matches only the exact variant names.
	Ident       string
	Suffix      bool
	Dest        DestRule
	MinOperands int
	MaxOperands int
	// Memory is false when no operand may be bracketed.
	Memory bool
	// Relative families encode label operands as branch displacements.
	Relative  bool
	Variants  map[string]Variant
	Templates []Template
}

// Template returns the encoding for an operand shape combination.
func (f *Family) Template(shape string) (*Template, bool) {
	for i := range f.Templates {
		if f.Templates[i].Shape == shape {
			return &f.Templates[i], true
		}
	}
	return nil, false
}

// Mnemonics returns the family's mnemonics in sorted order.
func (f *Family) Mnemonics() []string {
	names := make([]string, 0, len(f.Variants))
	for name := range f.Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariantName returns the first mnemonic, in sorted order, selecting v.
func (f *Family) VariantName(v Variant) (string, bool) {
	for _, name := range f.Mnemonics() {
		if f.Variants[name] == v {
			return name, true
		}
	}
	return "", false
}

// Lookup resolves a mnemonic to its family and variant. Families are tried in
// table order; the first whose identifier matches decides, and the full name
// must then be one of its variants.
func Lookup(mnemonic string) (*Family, Variant, bool) {
	name := strings.ToLower(mnemonic)
	for i := range Families {
		f := &Families[i]
		if f.Ident == "" {
			if v, ok := f.Variants[name]; ok {
				return f, v, true
			}
			continue
		}
		if (f.Suffix && strings.HasSuffix(name, f.Ident)) || (!f.Suffix && strings.HasPrefix(name, f.Ident)) {
			v, ok := f.Variants[name]
			return f, v, ok
		}
	}
	return nil, Variant{}, false
}

// FamilyOf returns the table entry for a kind.
func FamilyOf(k Kind) *Family {
	for i := range Families {
		if Families[i].Kind == k {
			return &Families[i]
		}
	}
	return nil
}
