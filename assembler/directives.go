package assembler

import (
	"github.com/pkg/errors"

	"github.com/Urethramancer/terasm/isa"
	"github.com/Urethramancer/terasm/ternary"
)

// assembleData encodes a data directive: a type name followed by one or
// more values. Each value is a numeral literal or a label; labels become the
// label's absolute address at the directive's width.
func assembleData(body string) ([]Slot, error) {
	fields := splitFields(body)
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrWrongOperandCount, "empty data line")
	}

	w, ok := ternary.WidthByName(fields[0])
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMnemonic, "data type %q", fields[0])
	}
	if len(fields) < 2 {
		return nil, errors.Wrapf(ErrWrongOperandCount, "%s requires at least one value", w)
	}

	var slots []Slot
	for _, value := range fields[1:] {
		if _, ok := isa.ParseRegister(value); ok {
			return nil, errors.Wrapf(ErrIllegalOperands, "<%s> not allowed: register %s is not a data value", body, value)
		}
		if IsLabelName(value) {
			for i := 1; i < int(w); i++ {
				slots = append(slots, Resolved(ternary.Tryte{}))
			}
			slots = append(slots, AbsoluteRef(value))
			continue
		}

		word, err := ternary.Encode(value, w)
		if err != nil {
			return nil, err
		}
		for _, t := range word {
			slots = append(slots, Resolved(t))
		}
	}
	return slots, nil
}
