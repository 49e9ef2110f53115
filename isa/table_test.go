package isa

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Urethramancer/terasm/ternary"
)

func TestTemplatesWellFormed(t *testing.T) {
	for _, f := range Families {
		shapes := map[string]bool{}
		for _, tmpl := range f.Templates {
			name := f.Kind.String() + " " + tmpl.Shape
			require.False(t, shapes[tmpl.Shape], "duplicate shape %s", name)
			shapes[tmpl.Shape] = true

			var ops []string
			if tmpl.Shape != "" {
				ops = strings.Split(tmpl.Shape, ",")
			}
			assert.GreaterOrEqual(t, len(ops), f.MinOperands, name)
			assert.LessOrEqual(t, len(ops), f.MaxOperands, name)

			for _, pat := range tmpl.Pattern {
				require.Len(t, []rune(pat), ternary.TritsPerTryte, name)
				for _, r := range pat {
					switch r {
					case 'λ', '0', '1', 'v', 'w':
					case 'x', 'y', 'z':
						idx := int(r - 'x')
						require.Less(t, idx, len(ops), name)
						assert.Contains(t, []string{ShapeRegister, ShapeRegMem}, ops[idx], name)
					default:
						t.Fatalf("%s: bad pattern rune %q", name, r)
					}
				}
			}

			memory := 0
			for i, op := range ops {
				if strings.HasPrefix(op, "[") {
					memory++
				}
				if op == ShapeImmediate || op == ShapeImmMem {
					assert.Contains(t, tmpl.Trailing, i, "%s: immediate %d not emitted", name, i)
				}
			}
			assert.LessOrEqual(t, memory, 1, name)
			if !f.Memory {
				assert.Zero(t, memory, name)
			}
			for _, idx := range tmpl.Trailing {
				if idx == Pad {
					continue
				}
				require.Less(t, idx, len(ops), name)
				assert.Contains(t, []string{ShapeImmediate, ShapeImmMem}, ops[idx], name)
			}
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		mnemonic string
		kind     Kind
		variant  Variant
	}{
		{"mov", Move, Variant{}},
		{"MOV", Move, Variant{}},
		{"filln", Fill, Variant{ternary.Neg}},
		{"fillp", Fill, Variant{ternary.Pos}},
		{"nti", Transfer, Variant{ternary.Neg}},
		{"Sti", Transfer, Variant{ternary.Zero}},
		{"adc", Add, Variant{ternary.Pos}},
		{"add", Add, Variant{ternary.Neg}},
		{"cmp", Compare, Variant{}},
		{"jmp", Jump, Variant{ternary.Neg, ternary.Zero}},
		{"jle", Jump, Variant{ternary.Pos, ternary.Pos}},
		{"jng", Jump, Variant{ternary.Pos, ternary.Pos}},
		{"restart", Restart, Variant{}},
		{"nand", Bitwise, Variant{ternary.Zero, ternary.Neg}},
		{"TMUL", Bitwise, Variant{ternary.Pos, ternary.Pos}},
	}
	for _, tc := range tests {
		f, v, ok := Lookup(tc.mnemonic)
		require.True(t, ok, tc.mnemonic)
		assert.Equal(t, tc.kind, f.Kind, tc.mnemonic)
		assert.Equal(t, tc.variant, v, tc.mnemonic)
	}

	for _, bad := range []string{"", "nop", "movx", "fill", "xti", "adx", "jz", "xor"} {
		_, _, ok := Lookup(bad)
		assert.False(t, ok, bad)
	}
}

func TestFillAndMatchAreInverse(t *testing.T) {
	regs := []ternary.Trit{ternary.Neg, ternary.Zero, ternary.Pos}
	for _, f := range Families {
		for _, name := range f.Mnemonics() {
			v := f.Variants[name]
			for ti := range f.Templates {
				tmpl := &f.Templates[ti]
				for _, a := range regs {
					for _, b := range regs {
						in := [3]ternary.Trit{a, b, a}
						words := tmpl.Fill(in, v)
						got, seen, gotV, ok := tmpl.Match(words)
						require.True(t, ok, "%s %s", name, tmpl.Shape)
						for i := range got {
							if seen[i] {
								assert.Equal(t, in[i], got[i])
							}
						}
						if strings.ContainsAny(strings.Join(tmpl.Pattern[:], ""), "v") {
							assert.Equal(t, v[0], gotV[0])
						}
					}
				}
			}
		}
	}
}

func TestVariantName(t *testing.T) {
	f := FamilyOf(Jump)
	require.NotNil(t, f)
	name, ok := f.VariantName(Variant{ternary.Pos, ternary.Neg})
	require.True(t, ok)
	assert.Equal(t, "jeg", name)

	_, ok = FamilyOf(Fill).VariantName(Variant{ternary.Pos, ternary.Pos})
	assert.False(t, ok)
}

func TestParseRegister(t *testing.T) {
	for name, want := range map[string]ternary.Trit{"rz": RZ, "RZ": RZ, "r0": R0, "R1": R1} {
		got, ok := ParseRegister(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got)
		assert.Equal(t, strings.ToLower(name), RegisterName(got))
	}
	_, ok := ParseRegister("r2")
	assert.False(t, ok)
}
