package lib

import (
	"errors"
	"fmt"
	"strconv"
)

// Everything Parse can fail with. Errors are raised at the point of
// detection and abort the parse; there is no recovery. The wrapped message
// carries expected-vs-found detail for callers that want more than a binary
// valid/invalid signal.
var (
	ErrIllegalToken          = errors.New("illegal token")
	ErrUnexpectedOperator    = errors.New("unexpected operator")
	ErrUnknownGroupDelimiter = errors.New("unknown group delimiter")
	ErrUnterminatedGroup     = errors.New("unterminated group")
	ErrEmptyResult           = errors.New("empty result")
	ErrNestingTooDeep        = errors.New("nesting too deep")
)

// maxGroupDepth caps group nesting so pathological input cannot recurse the
// parser off the stack.
const maxGroupDepth = 1000

// Parse tokenizes the input and builds a single expression tree from it.
// When the input holds several top-level expressions the last one wins.
func Parse(input string) (*Number, error) {
	p := newParser(newLexer(input))
	return p.parse()
}

type parser struct {
	reader tokenReader
	cur    token
	peek   token
	last   *Number
	depth  int
}

func newParser(reader tokenReader) *parser {
	p := &parser{reader: reader}
	p.cur = reader.nextToken()
	p.peek = reader.nextToken()
	return p
}

func (p *parser) advance() {
	p.cur = p.peek
	p.peek = p.reader.nextToken()
}

func (p *parser) parse() (*Number, error) {
	for p.cur.tokType != tokenTypeEOF {
		value, err := p.parseValue(p.last)
		if err != nil {
			return nil, err
		}
		p.last = value
	}
	if p.last == nil {
		return nil, fmt.Errorf("%w: no value in input", ErrEmptyResult)
	}
	return p.last, nil
}

// parseValue parses the next construct at the current nesting level, seeded
// with whatever that level has built so far.
func (p *parser) parseValue(left *Number) (*Number, error) {
	if isGroupStart(p.cur) {
		return p.parseGroup()
	}
	return p.parseExpression(left)
}

// parseGroup reads a whole delimited group and returns its contents as one
// tree. The current token must be an opening delimiter.
func (p *parser) parseGroup() (*Number, error) {
	closing, ok := groupDelimiters[p.cur.tokType]
	if !ok {
		return nil, fmt.Errorf("%w: <%s> has no closing delimiter", ErrUnknownGroupDelimiter, tokenString(p.cur))
	}
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxGroupDepth {
		return nil, fmt.Errorf("%w: more than %d nested groups", ErrNestingTooDeep, maxGroupDepth)
	}
	p.advance()

	var inner *Number
	for p.cur.tokType != closing {
		// Without this check a missing closer would keep consuming
		// end-of-input tokens forever.
		if p.cur.tokType == tokenTypeEOF {
			return nil, fmt.Errorf("%w: expected '%s' but got EOF", ErrUnterminatedGroup, tokenTypeLexeme(closing))
		}
		value, err := p.parseValue(inner)
		if err != nil {
			return nil, err
		}
		inner = value
	}
	p.advance()

	if inner == nil {
		return nil, fmt.Errorf("%w: empty group", ErrEmptyResult)
	}
	return inner, nil
}

// parseExpression continues the expression at the current level. With no
// left operand it is the ground case and just reads a number. With one, the
// current token must be an operator; a single token of lookahead then
// decides whether the operator after the right-hand number binds tighter and
// should capture it first, which is what turns "17 + 16 * 21" into
// 17 + (16 * 21). Equal priority does not recurse, so chains group to the
// left.
func (p *parser) parseExpression(left *Number) (*Number, error) {
	if left == nil {
		return p.parseNumber()
	}

	op, ok := operations[p.cur.tokType]
	if !ok {
		return nil, fmt.Errorf("%w: expected operator but got <%s>", ErrUnexpectedOperator, tokenString(p.cur))
	}
	p.advance()

	// A group binds as tightly as a literal.
	if isGroupStart(p.cur) {
		right, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		return Compound(left, op, right), nil
	}

	candidate, err := p.parseNumber()
	if err != nil {
		return nil, err
	}

	if next, found := operations[p.cur.tokType]; found && next.priority > op.priority {
		right, err := p.parseExpression(candidate)
		if err != nil {
			return nil, err
		}
		return Compound(left, op, right), nil
	}
	return Compound(left, op, candidate), nil
}

func (p *parser) parseNumber() (*Number, error) {
	if p.cur.tokType != tokenTypeNumber {
		return nil, fmt.Errorf("%w: expected number but got <%s>", ErrIllegalToken, tokenString(p.cur))
	}
	value, err := strconv.ParseFloat(string(p.cur.value), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: <%s>", ErrIllegalToken, tokenString(p.cur))
	}
	p.advance()
	return Identity(value), nil
}
