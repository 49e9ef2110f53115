package assembler

import (
	"github.com/pkg/errors"

	"github.com/Urethramancer/terasm/ternary"
)

// layout is the first pass. It assigns every unit its load address: all
// code units in source order, then all data units. It returns the image size.
func layout(units []Unit) int64 {
	var addr int64
	for _, seg := range []Segment{SegmentCode, SegmentData} {
		for i := range units {
			if units[i].Segment != seg {
				continue
			}
			units[i].Address = addr
			addr += units[i].Len()
		}
	}
	return addr
}

// resolve is the second pass. It replaces every deferred slot with its final
// tryte. Addresses must already be assigned.
func resolve(units []Unit, symbols *SymbolTable, base int64) error {
	for i := range units {
		u := &units[i]
		code := make(ternary.Word, len(u.Slots))
		for j, s := range u.Slots {
			if s.Kind == SlotResolved {
				code[j] = s.Tryte
				continue
			}

			idx, ok := symbols.Lookup(s.Label)
			if !ok {
				return lineError(u.Line, errors.Wrapf(ErrUndefinedLabel, "%q", s.Label))
			}
			target := units[idx].Address

			var v int64
			if s.Kind == SlotRelative {
				v = target - (u.Address + u.Len())
			} else {
				v = target + base
			}
			w, err := ternary.EncodeInt(v, ternary.TryteWidth)
			if err != nil {
				return lineError(u.Line, errors.Wrapf(err, "reference to %q", s.Label))
			}
			code[j] = w[0]
		}
		u.Code = code
	}
	return nil
}
