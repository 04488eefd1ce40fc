package lib

// tokenReader is the parser's view of a token source. The lexer satisfies
// it; tests satisfy it with a tokenBuffer.
type tokenReader interface {
	nextToken() token
}
