package lib

// leafPriority marks leaf nodes. No operation uses it; every real operation
// has priority >= 0.
const leafPriority = -1

// Operation is an entry in the static operation table: how to apply the
// operator to two values, how to render it between two operands, and how
// tightly it binds (higher binds tighter).
type Operation struct {
	symbol   string
	priority int
	apply    func(left, right float64) float64
}

func (o *Operation) Symbol() string {
	return o.symbol
}

func (o *Operation) Priority() int {
	return o.priority
}

// Apply computes the operation on native float64s, so division by zero and
// NaN propagate the way the hardware says they do.
func (o *Operation) Apply(left, right float64) float64 {
	return o.apply(left, right)
}

func (o *Operation) render(left, right string) string {
	return left + " " + o.symbol + " " + right
}

var (
	OpSum            = &Operation{symbol: "+", priority: 0, apply: func(a, b float64) float64 { return a + b }}
	OpSubtraction    = &Operation{symbol: "-", priority: 0, apply: func(a, b float64) float64 { return a - b }}
	OpMultiplication = &Operation{symbol: "*", priority: 1, apply: func(a, b float64) float64 { return a * b }}
	OpDivision       = &Operation{symbol: "/", priority: 1, apply: func(a, b float64) float64 { return a / b }}
)

// operations maps operator token kinds to their table entries. Registration
// is static; nothing is added at runtime.
var operations = map[tokenType]*Operation{
	tokenTypePlus:     OpSum,
	tokenTypeMinus:    OpSubtraction,
	tokenTypeAsterisk: OpMultiplication,
	tokenTypeSlash:    OpDivision,
}
