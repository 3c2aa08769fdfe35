package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeBasic(t *testing.T) {
	tokens, err := Tokenize("!a & (b | 1)")
	require.NoError(t, err)

	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	assert.Equal(t, []TokenType{
		TokenNot, TokenVar, TokenAnd, TokenLParen,
		TokenVar, TokenOr, TokenConst, TokenRParen, TokenEOF,
	}, types)
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := Tokenize("a & b")
	require.NoError(t, err)
	require.Len(t, tokens, 4)
	assert.Equal(t, 0, tokens[0].Position)
	assert.Equal(t, 2, tokens[1].Position)
	assert.Equal(t, 4, tokens[2].Position)
}

func TestTokenizeIdentifiers(t *testing.T) {
	tokens, err := Tokenize("_x1 & longName")
	require.NoError(t, err)
	assert.Equal(t, "_x1", tokens[0].Value)
	assert.Equal(t, "longName", tokens[2].Value)
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unexpected character", "a + b"},
		{"multi-digit numeral", "a & 10"},
		{"invalid constant", "a & 2"},
		{"digit-prefixed identifier", "1abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)
			var lexErr *LexError
			assert.ErrorAs(t, err, &lexErr)
		})
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokenEOF, tokens[0].Type)
}
