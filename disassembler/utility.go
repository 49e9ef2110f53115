package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/terasm/ternary"
)

// formatDisp renders a branch displacement with an explicit sign.
func formatDisp(v int64) string {
	if v >= 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

// labelName generates a label string for a code address.
func labelName(addr int64) string {
	return fmt.Sprintf("loc_%04d", addr)
}

// trytesPerLine caps the number of values on one data line.
const trytesPerLine = 8

// formatData formats unreachable trytes as tryte directives.
func formatData(data ternary.Word) string {
	var sb strings.Builder
	for i := 0; i < len(data); i += trytesPerLine {
		end := i + trytesPerLine
		if end > len(data) {
			end = len(data)
		}

		values := make([]string, 0, end-i)
		for _, t := range data[i:end] {
			values = append(values, fmt.Sprintf("%d", t.Int()))
		}
		fmt.Fprintf(&sb, "%-10s%-8s %s\n", "", ternary.TryteWidth, strings.Join(values, ", "))
	}
	return sb.String()
}
