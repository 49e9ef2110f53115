package assembler

// assembleMove encodes MOV. At most one side may address memory.
func assembleMove(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	if ins.memoryOperands() > 1 {
		return nil, ins.illegal("at most one memory operand")
	}
	return ins.encode()
}
