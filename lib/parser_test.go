package lib

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func evalString(t *testing.T, input string) float64 {
	tree, err := Parse(input)
	require.NoError(t, err)
	return Evaluate(tree)
}

func TestParseBasicArithmetic(t *testing.T) {
	require.Equal(t, 24.0, evalString(t, "12 + 12"))
	require.Equal(t, 19074.0, evalString(t, "187 * 102"))
	require.Equal(t, 7.5, evalString(t, "15 / 2"))
	require.Equal(t, 5.0, evalString(t, "16 - 11"))
}

func TestParsePrecedence(t *testing.T) {
	require.Equal(t, 2383.0, evalString(t, "12 * 199 - 5"))
	require.Equal(t, -201.0, evalString(t, "111 - 156 * 2"))
	require.Equal(t, 353.0, evalString(t, "17 + 16 * 21"))
}

func TestParseEqualPriorityGroupsLeft(t *testing.T) {
	tree, err := Parse("16 + 21 + 9")
	require.NoError(t, err)
	require.Equal(t, 46.0, Evaluate(tree))
	require.Equal(t, "16 + 21 + 9", Render(tree))

	// Left grouping matters for the non-associative operators.
	require.Equal(t, 3.0, evalString(t, "10 - 5 - 2"))
	require.Equal(t, 10.0, evalString(t, "100 / 5 / 2"))
}

// Each step of the left-to-right walk re-applies the one-token lookahead
// rule, so alternating priority chains still come out with correct global
// grouping.
func TestParseAlternatingPriorities(t *testing.T) {
	tree, err := Parse("1 + 2 * 3 + 4 * 5")
	require.NoError(t, err)
	require.Equal(t, 27.0, Evaluate(tree))
	require.Equal(t, "1 + 2 * 3 + 4 * 5", Render(tree))
}

func TestParseGrouping(t *testing.T) {
	require.Equal(t, 2.0, evalString(t, "10 / (7 - 2)"))
	require.Equal(t, 5600.0, evalString(t, "{10 * [ 20 * ( 30 - 2 ) ] }"))
	require.Equal(t, 9.0, evalString(t, "(1 + 2) * 3"))
	require.Equal(t, 15.0, evalString(t, "1 + 2 * (3 + 4)"))
	require.Equal(t, 3.0, evalString(t, "((1 + 2))"))
}

func TestParseSignedLiterals(t *testing.T) {
	require.Equal(t, 0.0, evalString(t, "10 + (-10)"))
	require.Equal(t, 0.0, evalString(t, "10 + -10"))
	require.Equal(t, 20.0, evalString(t, "10 - -10"))
	require.Equal(t, -10.0, evalString(t, "-10"))
	require.Equal(t, -3.0, evalString(t, "2.-5"))
	require.Equal(t, 9.5, evalString(t, "10 + -.5"))
}

func TestParseDivisionEdgeCases(t *testing.T) {
	require.True(t, math.IsInf(evalString(t, "12 / 0"), 1))
	require.True(t, math.IsInf(evalString(t, "-12 / 0"), -1))
	require.True(t, math.IsNaN(evalString(t, "0 / 0")))
}

func TestParseSequentialExpressionsReturnsLast(t *testing.T) {
	require.Equal(t, 4.0, evalString(t, "(1 + 1) (2 + 2)"))
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   \t  ", "\n\n\r\t "} {
		// Repeated parses must fail the same way every time, and must not
		// hang.
		for i := 0; i < 3; i++ {
			_, err := Parse(input)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrEmptyResult), "want ErrEmptyResult, got %v", err)
		}
	}
}

func TestParseUnterminatedGroup(t *testing.T) {
	for _, input := range []string{"(5", "(1 + 2", "{10 * [ 20", "[1 + (2 * 3)"} {
		_, err := Parse(input)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrUnterminatedGroup), "want ErrUnterminatedGroup for %q, got %v", input, err)
	}
}

func TestParseDeeplyNestedGroups(t *testing.T) {
	tree, err := Parse(strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50))
	require.NoError(t, err)
	require.Equal(t, 1.0, Evaluate(tree))

	_, err = Parse(strings.Repeat("(", maxGroupDepth+1) + "1" + strings.Repeat(")", maxGroupDepth+1))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNestingTooDeep))

	// Unbalanced runs of openers fail the same way instead of recursing
	// without bound.
	_, err = Parse(strings.Repeat("(", maxGroupDepth*2))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNestingTooDeep))
}

func TestParseEmptyGroup(t *testing.T) {
	_, err := Parse("()")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEmptyResult))
}

func TestParseMissingOperator(t *testing.T) {
	_, err := Parse("5 6")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnexpectedOperator))
}

func TestParseMismatchedCloser(t *testing.T) {
	_, err := Parse("{1 + 2)")
	require.Error(t, err)
}

func TestParseDanglingOperator(t *testing.T) {
	_, err := Parse("3 +")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalToken))
}

func TestParseIllegalToken(t *testing.T) {
	_, err := Parse("1 $ 2")
	require.Error(t, err)

	_, err = Parse("$")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalToken))
}

func TestParseComparisonsRejected(t *testing.T) {
	// Comparison tokens lex cleanly but the parser has no use for them.
	_, err := Parse("1 <= 2")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnexpectedOperator))
}

func TestParseFromCannedTokenStream(t *testing.T) {
	buffer := newTokenBuffer([]token{
		{tokType: tokenTypeNumber, value: []rune("4")},
		{tokType: tokenTypePlus, value: []rune("+")},
		{tokType: tokenTypeNumber, value: []rune("5")},
	})
	p := newParser(buffer)
	tree, err := p.parse()
	require.NoError(t, err)
	require.Equal(t, 9.0, Evaluate(tree))
}

func TestParseTreeShape(t *testing.T) {
	tree, err := Parse("17 + 16 * 21")
	require.NoError(t, err)
	require.False(t, tree.IsLeaf())
	require.Equal(t, OpSum, tree.Operation())
	require.True(t, tree.Left().IsLeaf())
	require.Equal(t, 17.0, tree.Left().Value())
	require.Equal(t, OpMultiplication, tree.Right().Operation())
}
