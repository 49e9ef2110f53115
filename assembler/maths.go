package assembler

// assembleAdd encodes ADD and ADC: op1, op2 → dst.
// The carry trit is taken from the mnemonic.
func assembleAdd(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	if ins.memoryOperands() > 1 {
		return nil, ins.illegal("at most one memory operand among the three")
	}
	return ins.encode()
}
