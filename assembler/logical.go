package assembler

// assembleBitwise encodes the tritwise ALU group: NAND, NOR, NCON, NANY and TMUL.
// Operand rules are the same as for ADD; the operation is a two-trit field.
func assembleBitwise(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	if ins.memoryOperands() > 1 {
		return nil, ins.illegal("at most one memory operand among the three")
	}
	return ins.encode()
}
