package lib

type tokenType int

const (
	tokenTypeEOF tokenType = iota
	tokenTypeIllegal
	tokenTypeNumber
	tokenTypePlus
	tokenTypeMinus
	tokenTypeAsterisk
	tokenTypeSlash
	tokenTypeLParen
	tokenTypeRParen
	tokenTypeLBracket
	tokenTypeRBracket
	tokenTypeLBrace
	tokenTypeRBrace
	tokenTypeEqual
	tokenTypeLess
	tokenTypeGreater
	tokenTypeLessOrEqual
	tokenTypeGreaterOrEqual
	tokenTypeTilde
)

type token struct {
	tokType tokenType
	value   []rune
}

// Comparison symbols are scanned greedily, then the accumulated lexeme is
// looked up here. No match means the token is illegal.
var comparisonTokens = map[string]tokenType{
	"=":  tokenTypeEqual,
	"<":  tokenTypeLess,
	">":  tokenTypeGreater,
	"<=": tokenTypeLessOrEqual,
	">=": tokenTypeGreaterOrEqual,
	"~":  tokenTypeTilde,
}

// Each opening delimiter maps to the closing delimiter that ends its group.
var groupDelimiters = map[tokenType]tokenType{
	tokenTypeLParen:   tokenTypeRParen,
	tokenTypeLBracket: tokenTypeRBracket,
	tokenTypeLBrace:   tokenTypeRBrace,
}

func isGroupStart(tok token) bool {
	_, ok := groupDelimiters[tok.tokType]
	return ok
}

func tokenString(tok token) string {
	switch tok.tokType {
	case tokenTypeEOF:
		return "EOF"
	case tokenTypeIllegal:
		return "illegal: " + string(tok.value)
	case tokenTypeNumber:
		return "number: " + string(tok.value)
	}
	if len(tok.value) > 0 {
		return string(tok.value)
	}
	return tokenTypeLexeme(tok.tokType)
}

func tokenTypeLexeme(t tokenType) string {
	switch t {
	case tokenTypePlus:
		return "+"
	case tokenTypeMinus:
		return "-"
	case tokenTypeAsterisk:
		return "*"
	case tokenTypeSlash:
		return "/"
	case tokenTypeLParen:
		return "("
	case tokenTypeRParen:
		return ")"
	case tokenTypeLBracket:
		return "["
	case tokenTypeRBracket:
		return "]"
	case tokenTypeLBrace:
		return "{"
	case tokenTypeRBrace:
		return "}"
	case tokenTypeEqual:
		return "="
	case tokenTypeLess:
		return "<"
	case tokenTypeGreater:
		return ">"
	case tokenTypeLessOrEqual:
		return "<="
	case tokenTypeGreaterOrEqual:
		return ">="
	case tokenTypeTilde:
		return "~"
	default:
		return "?"
	}
}
