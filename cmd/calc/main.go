package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/graeme-hill/mathstuff-go/lib"
)

func main() {
	levels := flag.Bool("levels", false, "print the stepwise reduction, one level at a time")
	depth := flag.Bool("depth", false, "print the depth of the expression tree")
	flag.Parse()

	if flag.NArg() > 0 {
		run(strings.Join(flag.Args(), " "), *levels, *depth)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		run(line, *levels, *depth)
	}
}

func run(input string, levels bool, depth bool) {
	tree, err := lib.Parse(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid expression: %v\n", err)
		return
	}

	if depth {
		fmt.Println(lib.Depth(tree))
		return
	}

	if levels {
		for level := lib.Depth(tree); level >= 0; level-- {
			fmt.Println(renderResolved(tree, level))
		}
		return
	}

	fmt.Printf("%s = %s\n", lib.Render(tree), formatValue(lib.Evaluate(tree)))
}

// renderResolved renders the tree with every subtree deeper than the given
// level collapsed to its evaluated value, so decreasing levels animate the
// reduction from leaves up to the final result.
func renderResolved(n *lib.Number, level int) string {
	if n.IsLeaf() || level == 0 {
		return formatValue(lib.Evaluate(n))
	}
	op := n.Operation()
	left := resolvedOperand(n.Left(), op, level-1)
	right := resolvedOperand(n.Right(), op, level-1)
	return left + " " + op.Symbol() + " " + right
}

func resolvedOperand(child *lib.Number, parent *lib.Operation, level int) string {
	rendered := renderResolved(child, level)
	if level > 0 && !child.IsLeaf() && child.Priority() < parent.Priority() {
		return "(" + rendered + ")"
	}
	return rendered
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
