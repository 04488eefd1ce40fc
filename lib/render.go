package lib

import (
	"strconv"
)

// Render produces the canonical infix form with minimal parenthesization. A
// child is wrapped only when it is itself a compound and binds more loosely
// than its parent. Equal priorities are never wrapped: the parser groups
// equal-priority chains to the left, and the rendering relies on that shape
// rather than re-deriving associativity.
func Render(n *Number) string {
	if n.op == nil {
		return strconv.FormatFloat(n.value, 'f', -1, 64)
	}
	return n.op.render(renderChild(n.left, n.op), renderChild(n.right, n.op))
}

func renderChild(child *Number, parent *Operation) string {
	rendered := Render(child)
	if !child.IsLeaf() && child.Priority() < parent.priority {
		return "(" + rendered + ")"
	}
	return rendered
}
