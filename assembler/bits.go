package assembler

// assembleTransfer encodes the flag transfer group (NTI, STI, PTI).
// The action trit comes from the mnemonic.
func assembleTransfer(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	if ins.memoryOperands() > 1 {
		return nil, ins.illegal("at most one memory operand")
	}
	return ins.encode()
}
