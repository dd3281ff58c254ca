package formula

import "math"

// Function is a unary real function callable from a formula.
type Function func(float64) float64

// funcTable is the fixed lexicon of named functions, initialized once
// and never mutated. Order matters: a compiled Func instruction stores
// only its position here, so the table is part of the Program contract.
var funcTable = []struct {
	name string
	fn   Function
}{
	{"cos", math.Cos},
	{"sin", math.Sin},
	{"tg", math.Tan},
	{"ctg", func(x float64) float64 { return 1 / math.Tan(x) }},
	{"arcsin", math.Asin},
	{"arccos", math.Acos},
	{"arctg", math.Atan},
	{"ln", math.Log},
	{"lg", math.Log10},
	{"abs", math.Abs},
}

// lookupFunc resolves a function name to its table index. Lookup by
// name happens only while lexing; compiled programs carry the index.
func lookupFunc(name string) (int, bool) {
	for i := range funcTable {
		if funcTable[i].name == name {
			return i, true
		}
	}
	return 0, false
}

// FuncNames returns the recognized function names in table order.
func FuncNames() []string {
	v := make([]string, len(funcTable))
	for i := range funcTable {
		v[i] = funcTable[i].name
	}
	return v
}

// LookupFunc returns the function registered under name, or nil if the
// name is not part of the lexicon.
func LookupFunc(name string) Function {
	i, ok := lookupFunc(name)
	if !ok {
		return nil
	}
	return funcTable[i].fn
}
