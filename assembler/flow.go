package assembler

// assembleJump encodes the conditional jumps. Operands are branch targets:
// registers or immediates, never memory references. Label targets are
// emitted as displacements from the end of the instruction.
func assembleJump(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	if ins.memoryOperands() > 0 {
		return nil, ins.illegal("jump targets cannot be memory references")
	}
	return ins.encode()
}
