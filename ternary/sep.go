package ternary

import (
	"strings"
	"unicode"
)

// SepPerTryte is the number of base-27 digits packed into one tryte.
const SepPerTryte = 2

// sepSymbols lists the base-27 digits in value order, -13 through 13.
const sepSymbols = "FGHKNPRSTUVYZ0123456789ABCD"

var sepCodes = func() map[rune][3]Trit {
	m := make(map[rune][3]Trit, len(sepSymbols))
	for i, r := range sepSymbols {
		v := i - 13
		var code [3]Trit
		for j := 2; j >= 0; j-- {
			d := ((v%3)+3)%3
			if d == 2 {
				d = -1
			}
			code[j] = Trit(d)
			v = (v - d) / 3
		}
		m[r] = code
	}
	return m
}()

// SepCode returns the three-trit code of a base-27 digit. Letters are case-insensitive.
func SepCode(r rune) ([3]Trit, bool) {
	code, ok := sepCodes[unicode.ToUpper(r)]
	return code, ok
}

// SepSymbol returns the base-27 digit for three trits.
func SepSymbol(code [3]Trit) rune {
	v := int(code[0])*9 + int(code[1])*3 + int(code[2])
	return rune(sepSymbols[v+13])
}

// FormatSep renders a word as base-27 digits, two per tryte, most significant first.
func FormatSep(w Word) string {
	var sb strings.Builder
	for _, t := range w {
		sb.WriteRune(SepSymbol([3]Trit{t[0], t[1], t[2]}))
		sb.WriteRune(SepSymbol([3]Trit{t[3], t[4], t[5]}))
	}
	return sb.String()
}
