package formula

import "strconv"

// lexer produces one Token per call to next from a cursor into the
// source text. It never backtracks; the cursor only moves forward, and
// once the input is exhausted every further call returns End.
type lexer struct {
	src string
	pos int
	// tok is the position of the start of the most recently scanned
	// token. The parser uses it to report error positions.
	tok int
}

func (l *lexer) next() (Token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	l.tok = l.pos
	if l.pos >= len(l.src) {
		return Token{Kind: End}, nil
	}
	c := l.src[l.pos]
	switch {
	case c == 'x' || c == 'X':
		// The variable wins over the letter class, so an identifier can
		// never begin with x.
		l.pos++
		return Token{Kind: Variable}, nil
	case isDigit(c):
		return l.scanNumber()
	case isAlpha(c):
		return l.scanName()
	default:
		k, ok := delimKind(c)
		if !ok {
			return Token{}, &LexError{Col: l.pos + 1, Text: string(c)}
		}
		l.pos++
		return Token{Kind: k}, nil
	}
}

// scanNumber scans an integer or decimal literal. A decimal point must
// be followed by at least one digit. The value of a decimal is
// intPart + ParseFloat("0."+fracDigits).
func (l *lexer) scanNumber() (Token, error) {
	n := 0
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		n = n*10 + int(l.src[l.pos]-'0')
		l.pos++
	}
	if l.pos >= len(l.src) || l.src[l.pos] != '.' {
		return Token{Kind: Number, Value: float64(n)}, nil
	}
	l.pos++
	if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
		return Token{}, &LexError{Col: l.pos + 1, Text: "."}
	}
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	frac, err := strconv.ParseFloat("0."+l.src[start:l.pos], 64)
	if err != nil {
		// The string is "0." plus one or more digits.
		panic("formula: bad fraction " + strconv.Quote(l.src[start:l.pos]) + ": " + err.Error())
	}
	return Token{Kind: Number, Value: float64(n) + frac}, nil
}

// scanName scans a maximal run of letters and resolves it in the
// function table.
func (l *lexer) scanName() (Token, error) {
	start := l.pos
	for l.pos < len(l.src) && isAlpha(l.src[l.pos]) {
		l.pos++
	}
	name := l.src[start:l.pos]
	i, ok := lookupFunc(name)
	if !ok {
		return Token{}, &NameError{Col: start + 1, Name: name}
	}
	return Token{Kind: Func, Index: i}, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
