package formula

import (
	"reflect"
	"testing"
)

func num(v float64) Token { return Token{Kind: Number, Value: v} }
func fn(i int) Token      { return Token{Kind: Func, Index: i} }
func op(k Kind) Token     { return Token{Kind: k} }

func TestCompileSequences(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code []Token
	}{
		{"var", "x", []Token{op(Variable)}},
		{"num", "7", []Token{num(7)}},
		{"paren", "(x)", []Token{op(Variable)}},
		{"nested-paren", "(((x)))", []Token{op(Variable)}},

		{"add", "x+1", []Token{op(Variable), num(1), op(Plus)}},
		{"sub", "x-1", []Token{op(Variable), num(1), op(Minus)}},
		{"mul", "x*2", []Token{op(Variable), num(2), op(Mul)}},
		{"div", "x/2", []Token{op(Variable), num(2), op(Div)}},
		{"pow", "2^3", []Token{num(2), num(3), op(Pow)}},

		{"left-add", "1+2+3", []Token{num(1), num(2), op(Plus), num(3), op(Plus)}},
		{"left-sub", "10-4-3", []Token{num(10), num(4), op(Minus), num(3), op(Minus)}},
		{"precedence", "2+3*4", []Token{num(2), num(3), num(4), op(Mul), op(Plus)}},
		{"precedence-rev", "2*3+4", []Token{num(2), num(3), op(Mul), num(4), op(Plus)}},
		{"pow-binds", "2*3^4", []Token{num(2), num(3), num(4), op(Pow), op(Mul)}},
		{"paren-group", "(2+3)*4", []Token{num(2), num(3), op(Plus), num(4), op(Mul)}},

		{"implicit-var", "3x", []Token{num(3), op(Variable), op(Mul)}},
		{"implicit-var-space", "3 x", []Token{num(3), op(Variable), op(Mul)}},
		{"implicit-paren", "3(x+1)", []Token{num(3), op(Variable), num(1), op(Plus), op(Mul)}},
		{"implicit-chain", "2x+1", []Token{num(2), op(Variable), op(Mul), num(1), op(Plus)}},

		{"neg", "-x", []Token{op(Variable), op(Negate)}},
		{"neg-neg", "--x", []Token{op(Variable), op(Negate), op(Negate)}},
		{"neg-num", "-1", []Token{num(1), op(Negate)}},
		{"neg-func", "-cos(x)", []Token{op(Variable), fn(0), op(Negate)}},
		{"neg-in-sub", "1--x", []Token{num(1), op(Variable), op(Negate), op(Minus)}},

		{"call", "sin(x)", []Token{op(Variable), fn(1)}},
		{"call-expr", "ln(x+1)", []Token{op(Variable), num(1), op(Plus), fn(7)}},
		{"call-nested", "abs(sin(x))", []Token{op(Variable), fn(1), fn(9)}},
		{"call-pow", "sin(x)^2", []Token{op(Variable), fn(1), num(2), op(Pow)}},

		{"decimal", "1.5*x", []Token{num(1.5), op(Variable), op(Mul)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prog, err := Compile(c.src)
			if err != nil {
				t.Fatalf("%q failed to compile: %v", c.src, err)
			}
			if !reflect.DeepEqual(prog.code, c.code) {
				t.Errorf("%q compiled wrong:\nwant %v\ngot  %v", c.src, c.code, prog.code)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", new(SyntaxError)},
		{"blank", "  \t ", new(SyntaxError)},
		{"trailing-op", "2+", new(SyntaxError)},
		{"double-op", "3++4", new(SyntaxError)},
		{"leading-op", "*x", new(SyntaxError)},
		{"unary-plus", "+x", new(SyntaxError)},
		{"open-paren", "(x+1", new(SyntaxError)},
		{"close-paren", "x)", new(SyntaxError)},
		{"empty-paren", "()", new(SyntaxError)},
		{"chained-pow", "2^3^4", new(SyntaxError)},
		{"func-no-paren", "sin x", new(SyntaxError)},
		{"func-no-arg", "sin()", new(SyntaxError)},
		{"var-then-func", "xcos(x)", new(SyntaxError)},
		{"unknown-func", "foo(x)", new(NameError)},
		{"unknown-func-bare", "2*bogus", new(NameError)},
		{"bad-char", "2+$", new(LexError)},
		{"bad-decimal", "1.", new(LexError)},
		{"bare-point", "1.+2", new(LexError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prog, err := Compile(c.src)
			if prog != nil {
				t.Errorf("%q compiled to %v", c.src, prog)
			}
			if err == nil {
				t.Fatalf("%q compiled without error", c.src)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T (%v)", c.src, c.err, err, err)
			}
			if ie, ok := err.(InputError); !ok {
				t.Errorf("error %v from %q is no InputError", err, c.src)
			} else if ie.Pos() < 1 {
				t.Errorf("error %v from %q has position %d", err, c.src, ie.Pos())
			}
		})
	}
}

// Chained exponentiation needs explicit parentheses; EXPR3 takes a
// single exponent.
func TestCompilePowSingleLevel(t *testing.T) {
	if _, err := Compile("2^3^4"); err == nil {
		t.Error("2^3^4 compiled")
	}
	for _, src := range []string{"2^(3^4)", "(2^3)^4"} {
		if _, err := Compile(src); err != nil {
			t.Errorf("%q failed to compile: %v", src, err)
		}
	}
}

func TestCompileFuncIndexOrder(t *testing.T) {
	// The compiled index must follow table order, not lookup order.
	srcs := []string{"cos(x)", "sin(x)", "tg(x)", "ctg(x)", "arcsin(x)", "arccos(x)", "arctg(x)", "ln(x)", "lg(x)", "abs(x)"}
	for want, src := range srcs {
		prog, err := Compile(src)
		if err != nil {
			t.Fatalf("%q failed to compile: %v", src, err)
		}
		last := prog.code[len(prog.code)-1]
		if last.Kind != Func || last.Index != want {
			t.Errorf("%q compiled call %+v, want Func index %d", src, last, want)
		}
	}
}
