package lib

// Number is one node of an expression tree. A leaf holds a literal value and
// nothing else; a compound holds an operation and owns exactly two subtrees.
// Trees are immutable once built, so a tree can be evaluated, rendered and
// queried from any number of goroutines without synchronization.
type Number struct {
	value float64
	op    *Operation
	left  *Number
	right *Number
}

// Identity builds a leaf holding a literal value.
func Identity(value float64) *Number {
	return &Number{value: value}
}

// Compound builds a node applying op to two subtrees. Both children must be
// non-nil; the parser never produces anything else.
func Compound(left *Number, op *Operation, right *Number) *Number {
	return &Number{op: op, left: left, right: right}
}

func (n *Number) IsLeaf() bool {
	return n.op == nil
}

// Value is the literal held by a leaf. Meaningless for compounds; use
// Evaluate for those.
func (n *Number) Value() float64 {
	return n.value
}

func (n *Number) Left() *Number {
	return n.left
}

func (n *Number) Right() *Number {
	return n.right
}

func (n *Number) Operation() *Operation {
	return n.op
}

// Priority is the node's operation priority, or leafPriority for leaves.
func (n *Number) Priority() int {
	if n.op == nil {
		return leafPriority
	}
	return n.op.priority
}

// Depth counts the compound levels above the deepest leaf. A lone leaf has
// depth 0.
func Depth(n *Number) int {
	return depthFrom(n, -1)
}

func depthFrom(n *Number, base int) int {
	if n == nil {
		return base
	}
	left := depthFrom(n.left, base+1)
	right := depthFrom(n.right, base+1)
	if left > right {
		return left
	}
	return right
}

// Level collects the nodes exactly level edges below n, left to right. The
// root is level 0. Levels past the bottom of the tree come back empty.
func Level(n *Number, level int) []*Number {
	nodes := []*Number{}
	collectLevel(n, level, &nodes)
	return nodes
}

func collectLevel(n *Number, level int, nodes *[]*Number) {
	if n == nil || level < 0 {
		return
	}
	if level == 0 {
		*nodes = append(*nodes, n)
		return
	}
	collectLevel(n.left, level-1, nodes)
	collectLevel(n.right, level-1, nodes)
}
