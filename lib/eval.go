package lib

// Evaluate computes the value of a tree. Nothing is memoized; every call
// walks the whole subtree. Division follows native float64 semantics: a
// nonzero value over zero is a signed infinity, 0/0 is NaN, and a NaN in
// either operand makes the whole result NaN.
func Evaluate(n *Number) float64 {
	if n.op == nil {
		return n.value
	}
	return n.op.apply(Evaluate(n.left), Evaluate(n.right))
}
