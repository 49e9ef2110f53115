package assembler

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Urethramancer/terasm/isa"
	"github.com/Urethramancer/terasm/ternary"
)

// Assembler turns ternary assembly source into a linked tryte image.
type Assembler struct {
	cfg Config
	log logrus.FieldLogger
}

// New creates an Assembler with the default configuration and a silent logger.
func New(opts ...Option) *Assembler {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	asm := &Assembler{
		cfg: DefaultConfig(),
		log: quiet,
	}
	for _, opt := range opts {
		opt(asm)
	}
	return asm
}

// Config returns the active configuration.
func (asm *Assembler) Config() Config {
	return asm.cfg
}

// Assemble parses src, lays out every unit and resolves label references.
// The first error aborts the run; no partial program is returned.
func (asm *Assembler) Assemble(src string) (*Program, error) {
	lines := splitSource(src, asm.cfg.CommentMarker, asm.log)

	prog := &Program{
		symbols: NewSymbolTable(),
		base:    asm.cfg.BaseAddress,
	}
	for _, ln := range lines {
		u, err := asm.parseUnit(ln, len(prog.units), prog.symbols)
		if err != nil {
			return nil, lineError(ln.Number, err)
		}
		prog.units = append(prog.units, u)
	}
	asm.log.WithFields(logrus.Fields{
		"units":  len(prog.units),
		"labels": prog.symbols.Len(),
	}).Debug("parsed source")

	prog.size = layout(prog.units)
	asm.log.WithField("size", prog.size).Debug("pass 1: addresses assigned")

	if err := resolve(prog.units, prog.symbols, asm.cfg.BaseAddress); err != nil {
		return nil, err
	}
	asm.log.Debug("pass 2: references resolved")
	return prog, nil
}

// parseUnit builds one unit and records its label under the unit's arena index.
func (asm *Assembler) parseUnit(ln sourceLine, index int, symbols *SymbolTable) (Unit, error) {
	u := Unit{Segment: ln.Segment, Line: ln.Number}

	label, body, err := splitLabel(ln.Text)
	if err != nil {
		return u, err
	}
	if label != "" {
		if err := symbols.Define(label, index); err != nil {
			return u, err
		}
		u.Label = label
		asm.log.WithFields(logrus.Fields{"line": ln.Number, "label": label}).Debug("label defined")
	}
	u.Source = body

	if ln.Segment == SegmentData {
		u.Slots, err = assembleData(body)
		return u, err
	}

	if body == "" {
		return u, errors.Wrapf(ErrUnknownMnemonic, "label %q has no instruction", label)
	}
	ins, err := parseInstruction(body)
	if err != nil {
		return u, err
	}
	u.Slots, err = assembleInstruction(ins)
	return u, err
}

// assembleInstruction dispatches to the family's encoder.
func assembleInstruction(ins *instruction) ([]Slot, error) {
	switch ins.Family.Kind {
	case isa.Move:
		return assembleMove(ins)
	case isa.Fill:
		return assembleFill(ins)
	case isa.Transfer:
		return assembleTransfer(ins)
	case isa.Add:
		return assembleAdd(ins)
	case isa.Bitwise:
		return assembleBitwise(ins)
	case isa.Compare:
		return assembleCompare(ins)
	case isa.Jump:
		return assembleJump(ins)
	case isa.Restart:
		return assembleRestart(ins)
	}
	return nil, errors.Wrapf(ErrUnknownMnemonic, "instruction %q", ins.Mnemonic)
}

// Program is a linked image: units in source order plus their symbol table.
type Program struct {
	units   []Unit
	symbols *SymbolTable
	base    int64
	size    int64
}

// Units returns the units in image order: code first, then data.
func (p *Program) Units() []Unit {
	out := make([]Unit, 0, len(p.units))
	for _, seg := range []Segment{SegmentCode, SegmentData} {
		for _, u := range p.units {
			if u.Segment == seg {
				out = append(out, u)
			}
		}
	}
	return out
}

// Image returns every tryte of the program in load order.
func (p *Program) Image() ternary.Word {
	img := make(ternary.Word, 0, p.size)
	for _, u := range p.Units() {
		img = append(img, u.Code...)
	}
	return img
}

// Size returns the image length in trytes.
func (p *Program) Size() int64 {
	return p.size
}

// BaseAddress returns the offset applied to absolute references.
func (p *Program) BaseAddress() int64 {
	return p.base
}

// Symbol is a resolved label.
type Symbol struct {
	Name    string
	Address int64
	Line    int
}

// Symbols returns every label with its address, sorted by name.
func (p *Program) Symbols() []Symbol {
	names := p.symbols.Names()
	out := make([]Symbol, 0, len(names))
	for _, name := range names {
		idx, _ := p.symbols.Lookup(name)
		out = append(out, Symbol{Name: name, Address: p.units[idx].Address, Line: p.units[idx].Line})
	}
	return out
}

// Address returns the load address of a label.
func (p *Program) Address(label string) (int64, bool) {
	idx, ok := p.symbols.Lookup(label)
	if !ok {
		return 0, false
	}
	return p.units[idx].Address, true
}
