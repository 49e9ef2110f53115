package assembler

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/Urethramancer/terasm/ternary"
)

// Error kinds. Every assembly failure wraps exactly one of them.
var (
	ErrInvalidLabelName    = errors.New("invalid label name")
	ErrUnknownMnemonic     = errors.New("unknown mnemonic or data type")
	ErrWrongOperandCount   = errors.New("wrong operand count")
	ErrIllegalOperands     = errors.New("illegal operands")
	ErrDestinationMismatch = errors.New("destination mismatch")
	ErrInvalidNumeral      = ternary.ErrInvalidDigit
	ErrValueOutOfRange     = ternary.ErrOutOfRange
	ErrUndefinedLabel      = errors.New("undefined label")
	ErrDuplicateLabel      = errors.New("duplicate label")
)

// Error is a fatal assembly error tied to a source line.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the wrapped kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

func lineError(line int, err error) error {
	if err == nil {
		return nil
	}
	var le *Error
	if errors.As(err, &le) {
		return err
	}
	return &Error{Line: line, Err: err}
}
