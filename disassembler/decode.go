package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/terasm/isa"
	"github.com/Urethramancer/terasm/ternary"
)

// Arg is one rendered operand. Branch operands are displacements that the
// renderer may replace with a label.
type Arg struct {
	Text   string
	Branch bool
	Target int64
}

// Instruction represents a single decoded unit at a specific address.
type Instruction struct {
	Address  int64
	Mnemonic string
	Args     []Arg
	HasDest  bool
	Size     int
	// Data is set when no template matched.
	Data bool
	// IsCode marks instructions reachable from the entry point.
	IsCode bool
}

// decode matches the trytes at pc against every template, in table order.
// Anything unrecognised becomes a single data tryte.
func decode(img ternary.Word, pc int) *Instruction {
	if pc+3 <= len(img) {
		lead := [3]ternary.Tryte{img[pc], img[pc+1], img[pc+2]}
		for fi := range isa.Families {
			f := &isa.Families[fi]
			for ti := range f.Templates {
				tmpl := &f.Templates[ti]
				if pc+tmpl.Len() > len(img) {
					continue
				}
				regs, seen, v, ok := tmpl.Match(lead)
				if !ok {
					continue
				}
				name, ok := f.VariantName(v)
				if !ok {
					continue
				}
				return build(img, pc, f, tmpl, name, regs, seen)
			}
		}
	}

	return &Instruction{
		Address:  int64(pc),
		Mnemonic: "tryte",
		Args:     []Arg{{Text: fmt.Sprintf("%d", img[pc].Int())}},
		Size:     1,
		Data:     true,
	}
}

// build renders the operands of a matched template.
func build(img ternary.Word, pc int, f *isa.Family, tmpl *isa.Template, name string, regs [3]ternary.Trit, seen [3]bool) *Instruction {
	inst := &Instruction{
		Address:  int64(pc),
		Mnemonic: name,
		HasDest:  f.Dest == isa.DestRequired,
		Size:     tmpl.Len(),
	}
	if tmpl.Shape == "" {
		return inst
	}

	// Operand index -> trailing tryte holding its immediate.
	imm := map[int]ternary.Tryte{}
	for i, idx := range tmpl.Trailing {
		if idx != isa.Pad {
			imm[idx] = img[pc+3+i]
		}
	}

	shapes := strings.Split(tmpl.Shape, ",")
	end := int64(pc + tmpl.Len())
	for i, shape := range shapes {
		var a Arg
		switch shape {
		case isa.ShapeRegister, isa.ShapeRegMem:
			a.Text = "r?"
			if seen[i] {
				a.Text = isa.RegisterName(regs[i])
			}
		default:
			v := imm[i].Int()
			a.Text = fmt.Sprintf("%d", v)
			if f.Relative {
				a.Branch = true
				a.Target = end + v
				a.Text = formatDisp(v)
			}
		}
		if shape == isa.ShapeRegMem || shape == isa.ShapeImmMem {
			a.Text = "[" + a.Text + "]"
		}
		inst.Args = append(inst.Args, a)
	}
	return inst
}
