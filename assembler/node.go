package assembler

import (
	"github.com/Urethramancer/terasm/ternary"
)

// Segment is the image region a unit belongs to.
type Segment int

const (
	// SegmentCode holds instructions. It is laid out first.
	SegmentCode Segment = iota
	// SegmentData holds data directives.
	SegmentData
)

func (s Segment) String() string {
	if s == SegmentData {
		return ".data"
	}
	return ".code"
}

// SlotKind tells how a slot's final tryte is obtained.
type SlotKind int

const (
	// SlotResolved holds its final tryte.
	SlotResolved SlotKind = iota
	// SlotAbsolute becomes the label's address plus the base address.
	SlotAbsolute
	// SlotRelative becomes the label's address minus the end of the referencing unit.
	SlotRelative
)

// Slot is one tryte position of a unit, possibly waiting on a label.
type Slot struct {
	Kind  SlotKind
	Tryte ternary.Tryte
	Label string
}

// Resolved wraps a final tryte.
func Resolved(t ternary.Tryte) Slot {
	return Slot{Kind: SlotResolved, Tryte: t}
}

// AbsoluteRef defers a slot to the address of label.
func AbsoluteRef(label string) Slot {
	return Slot{Kind: SlotAbsolute, Label: label}
}

// RelativeRef defers a slot to the displacement from the end of the unit to label.
func RelativeRef(label string) Slot {
	return Slot{Kind: SlotRelative, Label: label}
}

// Unit is one assembled source line: an instruction or a data directive.
type Unit struct {
	Segment Segment
	Line    int
	Label   string
	Source  string
	Slots   []Slot
	// Address is assigned by the layout pass.
	Address int64
	// Code is filled by the resolve pass.
	Code ternary.Word
}

// Len returns the number of trytes the unit occupies.
func (u *Unit) Len() int64 {
	return int64(len(u.Slots))
}
