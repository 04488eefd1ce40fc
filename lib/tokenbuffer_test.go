package lib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenBufferReplays(t *testing.T) {
	buf := newTokenBuffer([]token{
		{tokType: tokenTypeNumber, value: []rune("12")},
		{tokType: tokenTypePlus, value: []rune("+")},
	})

	requireTok(t, buf.nextToken(), tokenTypeNumber, "12")
	requireTok(t, buf.nextToken(), tokenTypePlus, "+")
}

func TestTokenBufferEOFForever(t *testing.T) {
	buf := newTokenBuffer([]token{
		{tokType: tokenTypeNumber, value: []rune("12")},
	})

	requireTok(t, buf.nextToken(), tokenTypeNumber, "12")
	for i := 0; i < 3; i++ {
		require.Equal(t, tokenTypeEOF, buf.nextToken().tokType)
	}
}

func TestTokenBufferEmpty(t *testing.T) {
	buf := newTokenBuffer(nil)
	require.Equal(t, tokenTypeEOF, buf.nextToken().tokType)
}
