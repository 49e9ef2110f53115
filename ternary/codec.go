package ternary

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Width is the size of an integer container in trytes.
type Width int

const (
	// TryteWidth holds one tryte.
	TryteWidth Width = 1
	// Pair holds two trytes.
	Pair Width = 2
	// Triple holds three trytes.
	Triple Width = 3
	// Quad holds four trytes.
	Quad Width = 4
)

// Widths lists every container width in ascending order.
var Widths = []Width{TryteWidth, Pair, Triple, Quad}

var widthNames = map[string]Width{
	"tryte":  TryteWidth,
	"dt":     TryteWidth,
	"pair":   Pair,
	"dp":     Pair,
	"triple": Triple,
	"d3":     Triple,
	"quad":   Quad,
	"dq":     Quad,
}

// WidthByName resolves a data directive type name (long or short form).
func WidthByName(name string) (Width, bool) {
	w, ok := widthNames[strings.ToLower(name)]
	return w, ok
}

// String returns the long type name of the width.
func (w Width) String() string {
	switch w {
	case TryteWidth:
		return "tryte"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Quad:
		return "quad"
	}
	return "width(" + strconv.Itoa(int(w)) + ")"
}

// Trits returns the number of trits in the container.
func (w Width) Trits() int {
	return int(w) * TritsPerTryte
}

// Max returns the largest magnitude the container can represent: (3^n-1)/2.
func (w Width) Max() int64 {
	return (pow3(w.Trits()) - 1) / 2
}

// Encode converts a numeral literal into a word of the given width.
// Three notations are accepted: 0t followed by trit symbols, 0x followed by
// base-27 digits, and a signed decimal integer.
func Encode(literal string, w Width) (Word, error) {
	switch {
	case strings.HasPrefix(literal, "0t"):
		return encodeTrits(literal, literal[2:], w)
	case strings.HasPrefix(literal, "0x"):
		return encodeSep(literal, literal[2:], w)
	}

	v, err := strconv.ParseInt(literal, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, errors.Wrapf(ErrOutOfRange, "value %s too big for %s (±%d)", literal, w, w.Max())
		}
		return nil, errors.Wrapf(ErrInvalidDigit, "%q", literal)
	}
	word, err := EncodeInt(v, w)
	if err != nil {
		return nil, errors.Wrapf(ErrOutOfRange, "value %s too big for %s (±%d)", literal, w, w.Max())
	}
	return word, nil
}

// EncodeInt converts v into balanced ternary of the given width.
func EncodeInt(v int64, w Width) (Word, error) {
	if v > w.Max() || v < -w.Max() {
		return nil, errors.Wrapf(ErrOutOfRange, "%d does not fit %s (±%d)", v, w, w.Max())
	}
	neg := v < 0
	if neg {
		v = -v
	}

	// digits[0] is the least significant trit.
	n := w.Trits()
	digits := make([]Trit, n)
	var carry int64
	for i := 0; i < n; i++ {
		d := v%3 + carry
		v /= 3
		carry = 0
		if d > 1 {
			d -= 3
			carry = 1
		}
		if neg {
			d = -d
		}
		digits[i] = Trit(d)
	}
	return fromDigits(digits, w), nil
}

// MustEncodeInt is EncodeInt for values known to fit.
func MustEncodeInt(v int64, w Width) Word {
	word, err := EncodeInt(v, w)
	if err != nil {
		panic(err)
	}
	return word
}

// fromDigits packs least-significant-first digits into trytes, most significant first.
func fromDigits(digits []Trit, w Width) Word {
	word := make(Word, w)
	n := len(digits)
	for k := range word {
		for j := 0; j < TritsPerTryte; j++ {
			word[k][j] = digits[n-1-(k*TritsPerTryte+j)]
		}
	}
	return word
}

func encodeTrits(literal, body string, w Width) (Word, error) {
	runes := []rune(body)
	if len(runes) == 0 {
		return nil, errors.Wrapf(ErrInvalidDigit, "%q has no digits", literal)
	}
	if len(runes) > w.Trits() {
		return nil, errors.Wrapf(ErrOutOfRange, "value %q too big for %s (max %d trits)", literal, w, w.Trits())
	}

	digits := make([]Trit, w.Trits())
	for i, r := range runes {
		d, ok := TritFromGlyph(r)
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDigit, "%q: symbol %q", literal, r)
		}
		digits[len(runes)-1-i] = d
	}
	return fromDigits(digits, w), nil
}

func encodeSep(literal, body string, w Width) (Word, error) {
	runes := []rune(body)
	if len(runes) == 0 {
		return nil, errors.Wrapf(ErrInvalidDigit, "%q has no digits", literal)
	}
	maxLen := int(w) * SepPerTryte
	if len(runes) > maxLen {
		return nil, errors.Wrapf(ErrOutOfRange, "value %q too big for %s (max %d sep digits)", literal, w, maxLen)
	}
	padded := make([]rune, maxLen-len(runes), maxLen)
	for i := range padded {
		padded[i] = '0'
	}
	padded = append(padded, runes...)

	word := make(Word, w)
	for k := range word {
		lo, ok := SepCode(padded[2*k+1])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDigit, "invalid sep value %q", literal)
		}
		hi, ok := SepCode(padded[2*k])
		if !ok {
			return nil, errors.Wrapf(ErrInvalidDigit, "invalid sep value %q", literal)
		}
		copy(word[k][:3], hi[:])
		copy(word[k][3:], lo[:])
	}
	return word, nil
}

// FormatTrits renders a word as one unbroken string of trit symbols.
func FormatTrits(w Word) string {
	var sb strings.Builder
	for _, t := range w {
		sb.WriteString(t.String())
	}
	return sb.String()
}
