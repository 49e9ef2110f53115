package assembler

import (
	"fmt"
	"io"
	"strings"

	"github.com/Urethramancer/terasm/ternary"
)

// WriteTo writes the image as text: one unit per line, trytes separated by spaces.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for _, u := range p.Units() {
		sb.WriteString(u.Code.String())
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// listingPrefix is the width of the address columns of a listing row.
const listingPrefix = 13

// tryteColumn is the width of one tryte plus its separator.
const tryteColumn = ternary.TritsPerTryte + 1

// WriteListing writes an annotated listing: load address, machine address in
// base-27, the unit's trytes wrapped to width columns, and the source text.
// Machine addresses that do not fit a pair print as question marks.
func (p *Program) WriteListing(w io.Writer, width int) error {
	perRow := (width - listingPrefix - 2) / tryteColumn
	if perRow < 1 {
		perRow = 1
	}

	for _, u := range p.Units() {
		machine := strings.Repeat("?", int(ternary.Pair)*ternary.SepPerTryte)
		if w, err := ternary.EncodeInt(u.Address+p.base, ternary.Pair); err == nil {
			machine = ternary.FormatSep(w)
		}
		src := u.Source
		if u.Label != "" {
			src = u.Label + ": " + src
		}

		for row := 0; row*perRow < len(u.Code) || row == 0; row++ {
			end := (row + 1) * perRow
			if end > len(u.Code) {
				end = len(u.Code)
			}
			trytes := u.Code[row*perRow : end].String()

			var line string
			if row == 0 {
				line = fmt.Sprintf("%5d  %s  %-*s  ; %s", u.Address, machine, perRow*tryteColumn-1, trytes, src)
			} else {
				line = fmt.Sprintf("%*s%s", listingPrefix, "", trytes)
			}
			if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}
