package assembler

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Urethramancer/terasm/isa"
	"github.com/Urethramancer/terasm/ternary"
)

// text renders the instruction the way it was written, for diagnostics.
func (ins *instruction) text() string {
	var src []string
	var dst string
	for i, op := range ins.Operands {
		if ins.HasDest && i == len(ins.Operands)-1 {
			dst = op.Raw
			continue
		}
		src = append(src, op.Raw)
	}
	s := ins.Mnemonic
	if len(src) > 0 {
		s += " " + strings.Join(src, ", ")
	}
	if ins.HasDest {
		s += " " + DestMarker + " " + dst
	}
	return s
}

// shape returns the template key of the operand list.
func (ins *instruction) shape() string {
	shapes := make([]string, len(ins.Operands))
	for i := range ins.Operands {
		shapes[i] = ins.Operands[i].Shape()
	}
	return strings.Join(shapes, ",")
}

func (ins *instruction) memoryOperands() int {
	count := 0
	for _, op := range ins.Operands {
		if op.Memory {
			count++
		}
	}
	return count
}

func (ins *instruction) illegal(reason string) error {
	if reason == "" {
		return errors.Wrapf(ErrIllegalOperands, "<%s> not allowed", ins.text())
	}
	return errors.Wrapf(ErrIllegalOperands, "<%s> not allowed: %s", ins.text(), reason)
}

// check enforces the family's destination rule and operand count.
func (ins *instruction) check() error {
	f := ins.Family
	switch {
	case f.Dest == isa.DestRequired && !ins.HasDest:
		return errors.Wrapf(ErrDestinationMismatch, "<%s> must have destination", ins.Mnemonic)
	case f.Dest == isa.DestForbidden && ins.HasDest:
		return errors.Wrapf(ErrDestinationMismatch, "<%s> cannot have destination", ins.Mnemonic)
	}

	n := len(ins.Operands)
	if n < f.MinOperands || n > f.MaxOperands {
		switch {
		case f.MaxOperands == 0:
			return errors.Wrapf(ErrWrongOperandCount, "<%s> cannot have operands", ins.Mnemonic)
		case f.MinOperands == f.MaxOperands:
			return errors.Wrapf(ErrWrongOperandCount, "<%s> must have exactly %d operands, got %d", ins.Mnemonic, f.MinOperands, n)
		default:
			return errors.Wrapf(ErrWrongOperandCount, "<%s> must have %d to %d operands, got %d", ins.Mnemonic, f.MinOperands, f.MaxOperands, n)
		}
	}
	return nil
}

// encode looks up the template for the operand shapes and fills it in.
func (ins *instruction) encode() ([]Slot, error) {
	tmpl, ok := ins.Family.Template(ins.shape())
	if !ok {
		return nil, ins.illegal("")
	}

	var regs [3]ternary.Trit
	for i, op := range ins.Operands {
		if op.Kind == OperandRegister {
			regs[i] = op.Register
		}
	}

	slots := make([]Slot, 0, tmpl.Len())
	for _, t := range tmpl.Fill(regs, ins.Variant) {
		slots = append(slots, Resolved(t))
	}
	for _, idx := range tmpl.Trailing {
		if idx == isa.Pad {
			slots = append(slots, Resolved(ternary.Tryte{}))
			continue
		}
		slots = append(slots, ins.immediate(ins.Operands[idx]))
	}
	return slots, nil
}

// immediate returns the slot carrying an immediate operand. Labels in
// relative families become branch displacements.
func (ins *instruction) immediate(op Operand) Slot {
	switch {
	case op.Label == "":
		return Resolved(op.Value)
	case ins.Family.Relative:
		return RelativeRef(op.Label)
	default:
		return AbsoluteRef(op.Label)
	}
}
