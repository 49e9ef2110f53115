package assembler

// assembleCompare encodes CMP. The result goes to the comparison flag, so
// no destination is allowed.
func assembleCompare(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	if ins.memoryOperands() > 1 {
		return nil, ins.illegal("at most one memory operand")
	}
	return ins.encode()
}
