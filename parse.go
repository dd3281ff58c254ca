package formula

// The grammar, lowest to highest binding:
//
//	EXPR  := EXPR2 { ('+' | '-') EXPR2 }
//	EXPR2 := EXPR3 { ('*' | '/') EXPR3 }
//	EXPR3 := EXPR4 [ '^' EXPR4 ]
//	EXPR4 := 'x'
//	       | NUM [ 'x' | '(' EXPR ')' ]
//	       | '-' EXPR4
//	       | FUNC '(' EXPR ')'
//	       | '(' EXPR ')'
//
// A number directly followed by x or by a parenthesized expression is
// an implicit multiplication. EXPR3 accepts a single exponent only, so
// "2^3^4" fails at the trailing-End check; write "2^(3^4)".

// parser consumes tokens from the lexer with one token of lookahead and
// appends postfix instructions to out as grammar rules complete. Any
// error abandons out wholesale.
type parser struct {
	lex lexer
	tok Token
	out []Token
}

// Compile validates src against the formula grammar and compiles it
// into a postfix Program. The error is an InputError carrying the
// position of the offending input.
func Compile(src string) (*Program, error) {
	p := parser{lex: lexer{src: src}}
	if err := p.next(); err != nil {
		return nil, err
	}
	if err := p.expr(); err != nil {
		return nil, err
	}
	if p.tok.Kind != End {
		return nil, p.unexpected("")
	}
	return &Program{code: p.out}, nil
}

// next advances the lookahead.
func (p *parser) next() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect fails unless the lookahead has kind k. It does not consume the
// token.
func (p *parser) expect(k Kind, want string) error {
	if p.tok.Kind != k {
		return p.unexpected(want)
	}
	return nil
}

// unexpected builds a SyntaxError for the lookahead token.
func (p *parser) unexpected(want string) error {
	return &SyntaxError{Col: p.lex.tok + 1, Got: p.tok, Want: want}
}

func (p *parser) emit(t Token) {
	p.out = append(p.out, t)
}

// expr parses EXPR, a left-associative chain of additive terms.
func (p *parser) expr() error {
	if err := p.expr2(); err != nil {
		return err
	}
	for p.tok.Kind == Plus || p.tok.Kind == Minus {
		op := p.tok.Kind
		if err := p.next(); err != nil {
			return err
		}
		if err := p.expr2(); err != nil {
			return err
		}
		p.emit(Token{Kind: op})
	}
	return nil
}

// expr2 parses EXPR2, a left-associative chain of multiplicative terms.
func (p *parser) expr2() error {
	if err := p.expr3(); err != nil {
		return err
	}
	for p.tok.Kind == Mul || p.tok.Kind == Div {
		op := p.tok.Kind
		if err := p.next(); err != nil {
			return err
		}
		if err := p.expr3(); err != nil {
			return err
		}
		p.emit(Token{Kind: op})
	}
	return nil
}

// expr3 parses EXPR3, a term with at most one exponent.
func (p *parser) expr3() error {
	if err := p.expr4(); err != nil {
		return err
	}
	if p.tok.Kind == Pow {
		if err := p.next(); err != nil {
			return err
		}
		if err := p.expr4(); err != nil {
			return err
		}
		p.emit(Token{Kind: Pow})
	}
	return nil
}

// expr4 parses a primary term.
func (p *parser) expr4() error {
	switch p.tok.Kind {
	case Func:
		// Capture the index before descending; the Func instruction
		// lands after its argument so the stack machine sees argument
		// first, application second.
		index := p.tok.Index
		if err := p.next(); err != nil {
			return err
		}
		if err := p.paren(); err != nil {
			return err
		}
		p.emit(Token{Kind: Func, Index: index})
	case Variable:
		p.emit(Token{Kind: Variable})
		return p.next()
	case Number:
		p.emit(p.tok)
		if err := p.next(); err != nil {
			return err
		}
		switch p.tok.Kind {
		case Variable:
			// 3x is 3*x.
			p.emit(Token{Kind: Variable})
			p.emit(Token{Kind: Mul})
			return p.next()
		case Lparen:
			// 3(x+1) is 3*(x+1); the subexpression is parsed in full
			// before the Mul lands.
			if err := p.paren(); err != nil {
				return err
			}
			p.emit(Token{Kind: Mul})
		}
	case Lparen:
		return p.paren()
	case Minus:
		if err := p.next(); err != nil {
			return err
		}
		if err := p.expr4(); err != nil {
			return err
		}
		p.emit(Token{Kind: Negate})
	default:
		return p.unexpected("")
	}
	return nil
}

// paren parses '(' EXPR ')' with the lookahead on the open paren.
func (p *parser) paren() error {
	if err := p.expect(Lparen, "("); err != nil {
		return err
	}
	if err := p.next(); err != nil {
		return err
	}
	if err := p.expr(); err != nil {
		return err
	}
	if err := p.expect(Rparen, ")"); err != nil {
		return err
	}
	return p.next()
}
