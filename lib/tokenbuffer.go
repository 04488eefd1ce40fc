package lib

// tokenBuffer replays a fixed token stream, then end-of-input tokens
// forever, matching the lexer's contract. It lets parser tests run against
// hand-built token sequences.
type tokenBuffer struct {
	tokens []token
	index  int
}

func newTokenBuffer(tokens []token) *tokenBuffer {
	return &tokenBuffer{tokens: tokens}
}

func (tb *tokenBuffer) nextToken() token {
	if tb.index >= len(tb.tokens) {
		return token{tokType: tokenTypeEOF}
	}
	tok := tb.tokens[tb.index]
	tb.index++
	return tok
}
