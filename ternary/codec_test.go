package ternary

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidthMax(t *testing.T) {
	tests := []struct {
		w    Width
		want int64
	}{
		{TryteWidth, 364},
		{Pair, 265720},
		{Triple, 193710244},
		{Quad, 141214768240},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.w.Max(), tc.w.String())
	}
}

func TestWidthByName(t *testing.T) {
	for name, want := range map[string]Width{
		"tryte": TryteWidth, "DT": TryteWidth,
		"pair": Pair, "dp": Pair,
		"Triple": Triple, "d3": Triple,
		"quad": Quad, "dq": Quad,
	} {
		got, ok := WidthByName(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := WidthByName("word")
	assert.False(t, ok)
}

func TestEncodeDecimal(t *testing.T) {
	tests := []struct {
		lit  string
		w    Width
		want string
	}{
		{"0", TryteWidth, "000000"},
		{"1", TryteWidth, "000001"},
		{"-1", TryteWidth, "00000λ"},
		{"2", TryteWidth, "00001λ"},
		{"5", TryteWidth, "0001λλ"},
		{"14", TryteWidth, "001λλλ"},
		{"-14", TryteWidth, "00λ111"},
		{"364", TryteWidth, "111111"},
		{"-364", TryteWidth, "λλλλλλ"},
		{"+7", TryteWidth, "0001λ1"},
		{"14", Triple, "000000 000000 001λλλ"},
		{"365", Pair, "000001 λλλλλλ"},
	}
	for _, tc := range tests {
		w, err := Encode(tc.lit, tc.w)
		require.NoError(t, err, tc.lit)
		assert.Equal(t, tc.want, w.String(), tc.lit)
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, w := range Widths {
		max := w.Max()
		values := []int64{0, 1, -1, 2, -2, 13, -13, 364, -364, 365, max, -max, max - 1, -(max - 1), max / 2, -max / 3}
		for _, v := range values {
			if v > max || v < -max {
				continue
			}
			word, err := EncodeInt(v, w)
			require.NoError(t, err)
			require.Len(t, word, int(w))
			assert.Equal(t, v, word.Int(), "%d at %s", v, w)
		}
	}
}

func TestDecimalRoundTripExhaustiveTryte(t *testing.T) {
	for v := int64(-MaxTryte); v <= MaxTryte; v++ {
		word := MustEncodeInt(v, TryteWidth)
		require.Equal(t, v, word[0].Int())
		back, err := ParseTryte(word[0].String())
		require.NoError(t, err)
		require.Equal(t, word[0], back)
	}
}

func TestDecimalOutOfRange(t *testing.T) {
	for _, w := range Widths {
		_, err := EncodeInt(w.Max()+1, w)
		assert.True(t, errors.Is(err, ErrOutOfRange), w.String())
		_, err = EncodeInt(-w.Max()-1, w)
		assert.True(t, errors.Is(err, ErrOutOfRange), w.String())
	}
	_, err := Encode("365", TryteWidth)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = Encode("99999999999999999999999", Quad)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestEncodeTrits(t *testing.T) {
	w, err := Encode("0t1λ", TryteWidth)
	require.NoError(t, err)
	assert.Equal(t, "00001λ", w.String())
	assert.Equal(t, int64(2), w.Int())

	w, err = Encode("0t1000000", Pair)
	require.NoError(t, err)
	assert.Equal(t, "000001 000000", w.String())

	_, err = Encode("0t1000000", TryteWidth)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = Encode("0t102", TryteWidth)
	assert.True(t, errors.Is(err, ErrInvalidDigit))

	_, err = Encode("0t", TryteWidth)
	assert.True(t, errors.Is(err, ErrInvalidDigit))
}

func TestEncodeSep(t *testing.T) {
	tests := []struct {
		lit  string
		w    Width
		want string
	}{
		{"0x0", TryteWidth, "000000"},
		{"0xD", TryteWidth, "000111"},
		{"0xF", TryteWidth, "000λλλ"},
		{"0x1F", TryteWidth, "001λλλ"},
		{"0xdd", TryteWidth, "111111"},
		{"0x2", Pair, "000000 00001λ"},
		{"0xA0B1", Pair, "101000 11λ001"},
	}
	for _, tc := range tests {
		w, err := Encode(tc.lit, tc.w)
		require.NoError(t, err, tc.lit)
		assert.Equal(t, tc.want, w.String(), tc.lit)
	}

	_, err := Encode("0x123", TryteWidth)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = Encode("0xQ", TryteWidth)
	assert.True(t, errors.Is(err, ErrInvalidDigit))
	_, err = Encode("0xE", TryteWidth)
	assert.True(t, errors.Is(err, ErrInvalidDigit))
}

func TestSepValuesAreOrdered(t *testing.T) {
	for i, r := range sepSymbols {
		code, ok := SepCode(r)
		require.True(t, ok)
		v := int(code[0])*9 + int(code[1])*3 + int(code[2])
		assert.Equal(t, i-13, v, string(r))
		assert.Equal(t, r, SepSymbol(code))
	}
}

func TestExactWidthLiteralRoundTrip(t *testing.T) {
	for _, w := range Widths {
		trits := strings.Repeat("1λ0", w.Trits()/3)
		word, err := Encode("0t"+trits, w)
		require.NoError(t, err)
		assert.Equal(t, trits, FormatTrits(word))

		again, err := Encode("0t"+FormatTrits(word), w)
		require.NoError(t, err)
		assert.Equal(t, word, again)

		sep := strings.Repeat("KD", int(w))
		word, err = Encode("0x"+sep, w)
		require.NoError(t, err)
		assert.Equal(t, sep, FormatSep(word))

		again, err = Encode("0x"+FormatSep(word), w)
		require.NoError(t, err)
		assert.Equal(t, word, again)
	}
}

func TestEncodeInvalidDecimal(t *testing.T) {
	for _, lit := range []string{"", "abc", "1.5", "5-", "0y12"} {
		_, err := Encode(lit, TryteWidth)
		assert.True(t, errors.Is(err, ErrInvalidDigit), lit)
	}
}

func TestParseTryte(t *testing.T) {
	tr, err := ParseTryte("1λ0001")
	require.NoError(t, err)
	assert.Equal(t, Tryte{Pos, Neg, Zero, Zero, Zero, Pos}, tr)
	assert.Equal(t, int64(243-81+1), tr.Int())

	_, err = ParseTryte("10001")
	assert.True(t, errors.Is(err, ErrInvalidDigit))
	_, err = ParseTryte("10001x")
	assert.True(t, errors.Is(err, ErrInvalidDigit))
}
