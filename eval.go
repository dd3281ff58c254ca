package formula

import (
	"math"
	"strings"
)

// Program is a compiled formula. Its instructions are in postfix order,
// so a single left-to-right pass over a value stack evaluates it. A
// Program is immutable once compiled and safe for concurrent Eval.
type Program struct {
	code []Token
}

// Eval executes the program at the given value of x. A nil or empty
// program evaluates to 0. Division by zero and out-of-domain function
// arguments propagate as ±Inf or NaN, never as errors; evaluation
// trusts the balance the compiler guarantees and performs no
// re-validation.
func (p *Program) Eval(x float64) float64 {
	if p == nil || len(p.code) == 0 {
		return 0
	}
	stack := make([]float64, 0, len(p.code))
	for _, t := range p.code {
		switch t.Kind {
		case Number:
			stack = append(stack, t.Value)
		case Variable:
			stack = append(stack, x)
		case Negate:
			stack[len(stack)-1] = -stack[len(stack)-1]
		case Func:
			stack[len(stack)-1] = funcTable[t.Index].fn(stack[len(stack)-1])
		case Plus, Minus, Mul, Div, Pow:
			// The right operand was pushed last.
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := stack[len(stack)-1]
			switch t.Kind {
			case Plus:
				stack[len(stack)-1] = l + r
			case Minus:
				stack[len(stack)-1] = l - r
			case Mul:
				stack[len(stack)-1] = l * r
			case Div:
				stack[len(stack)-1] = l / r
			case Pow:
				stack[len(stack)-1] = math.Pow(l, r)
			}
		default:
			panic("formula: invalid instruction " + t.Kind.String())
		}
	}
	return stack[len(stack)-1]
}

// Tokens returns a copy of the instruction sequence.
func (p *Program) Tokens() []Token {
	if p == nil {
		return nil
	}
	return append([]Token(nil), p.code...)
}

// String renders the instruction sequence with one space-separated
// field per instruction, e.g. "1.5 x *" for "1.5*x".
func (p *Program) String() string {
	if p == nil || len(p.code) == 0 {
		return ""
	}
	var b strings.Builder
	for i, t := range p.code {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}

// Parser compiles formulas and evaluates the most recent successful
// compilation. The zero value is ready to use. A Parser is not safe for
// concurrent use: Parse writes the program Evaluate reads, so guard the
// instance externally or confine it to one goroutine.
type Parser struct {
	prog *Program
}

// Parse compiles src, reporting whether it is a valid formula. The
// previously compiled program, if any, is discarded either way; error
// detail does not cross this boundary, use Compile to get it.
func (p *Parser) Parse(src string) bool {
	p.prog = nil
	prog, err := Compile(src)
	if err != nil {
		return false
	}
	p.prog = prog
	return true
}

// Evaluate computes the last successfully parsed formula at x. It
// returns 0 if no formula has been parsed since the last failure, or
// ever.
func (p *Parser) Evaluate(x float64) float64 {
	return p.prog.Eval(x)
}

// Program returns the currently compiled program, or nil.
func (p *Parser) Program() *Program {
	return p.prog
}
