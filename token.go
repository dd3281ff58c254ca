package formula

import "strconv"

// Kind discriminates Token values.
type Kind int8

const (
	// End marks the end of the input. Once the lexer reaches it, every
	// further token is End.
	End Kind = iota
	// Number is a numeric literal; its value is in Token.Value.
	Number
	// Variable is the formula variable x.
	Variable
	// Func is a named function; Token.Index selects the entry in the
	// function table.
	Func
	// Plus through Rparen are the single-character delimiters.
	Plus
	Minus
	Mul
	Div
	Pow
	Lparen
	Rparen
	// Negate is unary minus. The lexer never produces it; the parser
	// emits it into compiled programs after its operand.
	Negate
)

var kindNames = [...]string{
	End:      "End",
	Number:   "Number",
	Variable: "Variable",
	Func:     "Func",
	Plus:     "Plus",
	Minus:    "Minus",
	Mul:      "Mul",
	Div:      "Div",
	Pow:      "Pow",
	Lparen:   "Lparen",
	Rparen:   "Rparen",
	Negate:   "Negate",
}

func (k Kind) String() string {
	if 0 <= int(k) && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single lexeme, and also a single instruction of a compiled
// Program. Only Number uses Value and only Func uses Index.
type Token struct {
	Kind  Kind
	Value float64
	Index int
}

// String renders the token the way it appears in formula source, except
// End and Negate, which have no source spelling.
func (t Token) String() string {
	switch t.Kind {
	case End:
		return "<end>"
	case Number:
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	case Variable:
		return "x"
	case Func:
		if 0 <= t.Index && t.Index < len(funcTable) {
			return funcTable[t.Index].name
		}
		return "func[" + strconv.Itoa(t.Index) + "]"
	case Negate:
		return "neg"
	case Plus, Minus, Mul, Div, Pow, Lparen, Rparen:
		return string(Delimiters[delimIndex(t.Kind)])
	}
	return t.Kind.String()
}

// Delimiters contains the recognized single-character symbols. The byte
// at position k maps to delimKinds[k]; the pairing is fixed for the life
// of the process.
const Delimiters = "^+-*/()"

var delimKinds = [...]Kind{Pow, Plus, Minus, Mul, Div, Lparen, Rparen}

// delimKind resolves a delimiter character through the table. ok is
// false for characters outside it.
func delimKind(c byte) (Kind, bool) {
	for i := 0; i < len(Delimiters); i++ {
		if Delimiters[i] == c {
			return delimKinds[i], true
		}
	}
	return End, false
}

// delimIndex is the inverse of delimKind, for rendering.
func delimIndex(k Kind) int {
	for i, d := range delimKinds {
		if d == k {
			return i
		}
	}
	return -1
}
