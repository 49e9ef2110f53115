package assembler

// assembleFill encodes FILLN, FILLZ and FILLP. Every operand is a target,
// so no destination marker is allowed.
func assembleFill(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	return ins.encode()
}

// assembleRestart encodes RESTART, which has a single fixed form.
func assembleRestart(ins *instruction) ([]Slot, error) {
	if err := ins.check(); err != nil {
		return nil, err
	}
	return ins.encode()
}
