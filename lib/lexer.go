package lib

import (
	"strconv"
)

const eof = rune(0)

// lexer is a single-pass, single-use tokenizer. Tokens come out on demand
// via nextToken, which never fails: once the input is exhausted it keeps
// returning end-of-input tokens.
type lexer struct {
	src      []rune
	length   int
	position int
	line     int
}

func newLexer(input string) *lexer {
	src := []rune(input)
	return &lexer{
		src:    src,
		length: len(src),
	}
}

// at returns the character at the given index, or the end-of-input sentinel
// for any index outside the source.
func (l *lexer) at(i int) rune {
	if i < 0 || i >= l.length {
		return eof
	}
	return l.src[i]
}

func (l *lexer) current() rune {
	return l.at(l.position)
}

func (l *lexer) peek(offset int) rune {
	return l.at(l.position + offset)
}

func (l *lexer) advance() {
	l.position++
}

// getLine is the number of newline characters consumed so far.
func (l *lexer) getLine() int {
	return l.line
}

func (l *lexer) nextToken() token {
	l.eatWhitespace()

	ch := l.current()
	switch {
	case ch == eof:
		return token{tokType: tokenTypeEOF}
	case isNumeric(ch):
		return l.scanNumber()
	case ch == '+' || ch == '-':
		// A sign folds into the literal that follows it only when the next
		// character is numeric and the raw character behind it is not. The
		// lookback deliberately sees the input as written, whitespace
		// included, so "10 -5" is a number pair while "10-  5" is a
		// subtraction.
		if isNumeric(l.peek(1)) && !isNumeric(l.at(l.position-1)) {
			return l.scanNumber()
		}
		l.advance()
		if ch == '+' {
			return token{tokType: tokenTypePlus, value: []rune{ch}}
		}
		return token{tokType: tokenTypeMinus, value: []rune{ch}}
	case ch == '*':
		l.advance()
		return token{tokType: tokenTypeAsterisk, value: []rune{ch}}
	case ch == '/':
		l.advance()
		return token{tokType: tokenTypeSlash, value: []rune{ch}}
	case ch == '(':
		l.advance()
		return token{tokType: tokenTypeLParen, value: []rune{ch}}
	case ch == ')':
		l.advance()
		return token{tokType: tokenTypeRParen, value: []rune{ch}}
	case ch == '[':
		l.advance()
		return token{tokType: tokenTypeLBracket, value: []rune{ch}}
	case ch == ']':
		l.advance()
		return token{tokType: tokenTypeRBracket, value: []rune{ch}}
	case ch == '{':
		l.advance()
		return token{tokType: tokenTypeLBrace, value: []rune{ch}}
	case ch == '}':
		l.advance()
		return token{tokType: tokenTypeRBrace, value: []rune{ch}}
	case isComparison(ch):
		return l.scanComparison()
	default:
		l.advance()
		return token{tokType: tokenTypeIllegal, value: []rune{ch}}
	}
}

func (l *lexer) eatWhitespace() {
	for {
		switch l.current() {
		case '\n':
			l.line++
		case ' ', '\t', '\r':
		default:
			return
		}
		l.advance()
	}
}

// scanNumber reads the maximal run of numeric characters, including a
// leading sign when the caller decided it belongs to the literal. Validity
// is decided by strconv rather than a hand-rolled grammar, so a run like
// "1.2.3" comes back as a single illegal token.
func (l *lexer) scanNumber() token {
	start := l.position
	if l.current() == '+' || l.current() == '-' {
		l.advance()
	}
	for isNumeric(l.current()) {
		l.advance()
	}
	lexeme := l.src[start:l.position]
	if _, err := strconv.ParseFloat(string(lexeme), 64); err != nil {
		return token{tokType: tokenTypeIllegal, value: lexeme}
	}
	return token{tokType: tokenTypeNumber, value: lexeme}
}

// scanComparison keeps extending the token while the next character is also
// a comparison character, which is what makes ">=" and "<=" single tokens.
// A run with no exact match, like "><", is one illegal token.
func (l *lexer) scanComparison() token {
	start := l.position
	l.advance()
	for isComparison(l.current()) {
		l.advance()
	}
	lexeme := l.src[start:l.position]
	kind, ok := comparisonTokens[string(lexeme)]
	if !ok {
		return token{tokType: tokenTypeIllegal, value: lexeme}
	}
	return token{tokType: kind, value: lexeme}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isNumeric(ch rune) bool {
	return isDigit(ch) || ch == '.'
}

func isComparison(ch rune) bool {
	switch ch {
	case '=', '<', '>', '~':
		return true
	}
	return false
}
