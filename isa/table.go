package isa

import "github.com/Urethramancer/terasm/ternary"

const (
	n = ternary.Neg
	z = ternary.Zero
	p = ternary.Pos
)

// Families is the instruction table, in mnemonic match order.
var Families = []Family{
	{
		Kind: Move, Ident: "mov", Dest: DestRequired,
		MinOperands: 2, MaxOperands: 2, Memory: true,
		Variants: map[string]Variant{"mov": {}},
		Templates: []Template{
			// mov b → a
			{"r,r", [3]string{"λ0000λ", "00000x", "0y1000"}, nil},
			// mov [b] → a
			{"[r],r", [3]string{"λ0000λ", "0000x0", "λy1000"}, nil},
			// mov [i1] → a
			{"[i],r", [3]string{"00000λ", "000000", "λy1010"}, []int{0}},
			// mov i1 → a
			// Not in the published table; added in the table's conventions.
			{"i,r", [3]string{"00000λ", "000100", "0y1000"}, []int{0}},
			// mov b → [a]
			{"r,[r]", [3]string{"λ0000λ", "0000yx", "000λ01"}, nil},
			// mov i2 → [a]
			{"i,[r]", [3]string{"10000λ", "0000y0", "000001"}, []int{Pad, 0}},
			// mov a → [i1]
			{"r,[i]", [3]string{"00000λ", "00000x", "000λ11"}, []int{1}},
			// mov i2 → [i1]
			{"i,[i]", [3]string{"10000λ", "000000", "000011"}, []int{1, 0}},
		},
	},
	{
		Kind: Fill, Ident: "fill", Dest: DestForbidden,
		MinOperands: 1, MaxOperands: 2, Memory: true,
		Variants: map[string]Variant{"filln": {n}, "fillz": {z}, "fillp": {p}},
		Templates: []Template{
			{"r", [3]string{"λ0v00λ", "000000", "0xλ000"}, nil},
			{"[r]", [3]string{"λ0v00λ", "0000x0", "00000λ"}, nil},
			{"[i]", [3]string{"00v00λ", "000000", "00001λ"}, []int{0}},
			{"r,[r]", [3]string{"λ0v00λ", "0000y0", "0xλ00λ"}, nil},
			{"r,[i]", [3]string{"00v00λ", "000000", "0xλ01λ"}, []int{1}},
		},
	},
	{
		Kind: Transfer, Ident: "ti", Suffix: true, Dest: DestRequired,
		MinOperands: 2, MaxOperands: 2, Memory: true,
		Variants: map[string]Variant{"nti": {n}, "sti": {z}, "pti": {p}},
		Templates: []Template{
			{"r,r", [3]string{"λ0000λ", "λv000x", "1y1100"}, nil},
			{"r,[r]", [3]string{"λ0000λ", "λv00yx", "000101"}, nil},
			{"r,[i]", [3]string{"00000λ", "λv000x", "000111"}, []int{1}},
			{"[r],r", [3]string{"λ0000λ", "λv00x0", "1y1000"}, nil},
			{"[i],r", [3]string{"00000λ", "λv0000", "1y1010"}, []int{0}},
		},
	},
	{
		Kind: Add, Ident: "ad", Dest: DestRequired,
		MinOperands: 3, MaxOperands: 3, Memory: true,
		Variants: map[string]Variant{"add": {n}, "adc": {p}},
		Templates: arithmetic("λ00v0λ", "000v0λ", "100v0λ", "10"),
	},
	{
		Kind: Compare, Ident: "cmp", Dest: DestForbidden,
		MinOperands: 2, MaxOperands: 2, Memory: true,
		Variants: map[string]Variant{"cmp": {}},
		Templates: []Template{
			{"r,r", [3]string{"λ00λ0λ", "0000yx", "000000"}, nil},
			{"r,i", [3]string{"000λ0λ", "00010x", "000000"}, []int{1}},
			{"[r],i", [3]string{"000λ0λ", "00λ1x0", "000000"}, []int{1}},
			{"[i],r", [3]string{"000λ0λ", "00λ0y0", "000010"}, []int{0}},
			{"[i],i", [3]string{"100λ0λ", "00λλ00", "000010"}, []int{0, 1}},
		},
	},
	{
		// Variant trits are (type, sense).
		Kind: Jump, Ident: "j", Dest: DestForbidden,
		MinOperands: 1, MaxOperands: 2, Relative: true,
		Variants: map[string]Variant{
			"jmp": {n, z},
			"jl":  {z, n},
			"je":  {z, z},
			"jg":  {z, p},
			"jnl": {p, n}, "jeg": {p, n},
			"jne": {p, z}, "jlg": {p, z},
			"jng": {p, p}, "jle": {p, p},
		},
		Templates: []Template{
			{"r", [3]string{"λ100wv", "0000x0", "000000"}, nil},
			{"i", [3]string{"0100wv", "000100", "000000"}, []int{0}},
			{"i,r", [3]string{"0100wv", "0000y0", "000000"}, []int{0}},
			{"i,i", [3]string{"1100wv", "000λ00", "000000"}, []int{0, 1}},
		},
	},
	{
		Kind: Restart, Ident: "restart", Dest: DestForbidden,
		Variants: map[string]Variant{"restart": {}},
		Templates: []Template{
			{"", [3]string{"λλ0λ0λ", "100000", "00λ000"}, nil},
		},
	},
	{
		// Matched by exact name only. Variant trits select the operation.
		Kind: Bitwise, Dest: DestRequired,
		MinOperands: 3, MaxOperands: 3, Memory: true,
		Variants: map[string]Variant{
			"nand": {z, n},
			"nor":  {z, z},
			"ncon": {z, p},
			"nany": {p, n},
			"tmul": {p, p},
		},
		Templates: arithmetic("λ0000λ", "00000λ", "10000λ", "vw"),
	},
}

// arithmetic builds the shared three-operand table of the Add and Bitwise
// families. The opcode tryte depends on how many immediates trail it; sel is
// the leading pair of the operand tryte.
func arithmetic(noImm, oneImm, twoImm, sel string) []Template {
	return []Template{
		// a, b → c
		{"r,r,r", [3]string{noImm, sel + "00yx", "1z1000"}, nil},
		// a, b → [i1]
		{"r,r,[i]", [3]string{oneImm, sel + "00yx", "000111"}, []int{2}},
		// a, i2 → [i1]
		{"r,i,[i]", [3]string{twoImm, sel + "0λ0x", "000111"}, []int{2, 1}},
		// a, i1 → b
		{"r,i,r", [3]string{oneImm, sel + "010x", "1z1000"}, []int{1}},
		// a, i1 → [b]
		{"r,i,[r]", [3]string{oneImm, sel + "00z0", "000101"}, []int{1}},
		// [a], i1 → b
		{"[r],i,r", [3]string{oneImm, sel + "λ1x0", "1z1000"}, []int{1}},
		// [i1], i2 → a
		{"[i],i,r", [3]string{twoImm, sel + "λλ00", "1z1010"}, []int{0, 1}},
		// [i1], a → b
		{"[i],r,r", [3]string{oneImm, sel + "λ0y0", "1z1010"}, []int{0}},
	}
}
