/*
File   : coffeebean/lexer/lexer_test.go
Package: lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coffeebean/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestTokenize_Arithmetic(t *testing.T) {
	tokens, err := Tokenize("1 + 2 * 3")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Integer, token.Plus, token.Integer, token.Star, token.Integer, token.Eof,
	}, kinds(tokens))
}

func TestTokenize_CompoundOperators(t *testing.T) {
	tokens, err := Tokenize("x += 1 == 2 != 3 <= 4 >= 5")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Identifier, token.PlusEq, token.Integer,
		token.EqEq, token.Integer,
		token.BangEq, token.Integer,
		token.LtEq, token.Integer,
		token.GtEq, token.Integer,
		token.Eof,
	}, kinds(tokens))
}

func TestTokenize_KeywordsAndIdentifiers(t *testing.T) {
	tokens, err := Tokenize("func add do return end echo x and y or not z")
	assert.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.Func, token.Identifier, token.Do, token.Return, token.End,
		token.Echo, token.Identifier, token.And, token.Identifier,
		token.Or, token.Not, token.Identifier, token.Eof,
	}, kinds(tokens))
}

func TestTokenize_StringAndCharacterLiterals(t *testing.T) {
	tokens, err := Tokenize(`"hi" 'a'`)
	assert.NoError(t, err)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, `"hi"`, tokens[0].Lexeme)
	assert.Equal(t, token.Character, tokens[1].Kind)
	assert.Equal(t, `'a'`, tokens[1].Lexeme)
}

func TestTokenize_UnterminatedString(t *testing.T) {
	_, err := Tokenize(`"abc`)
	assert.Error(t, err)
	lexErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, 1, lexErr.Line)
	assert.Contains(t, lexErr.Message, "Unterminated string")
}

func TestTokenize_UnexpectedCharacter(t *testing.T) {
	_, err := Tokenize("x = @")
	assert.Error(t, err)
	lexErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Contains(t, lexErr.Message, "Unexpected character '@'")
}

func TestTokenize_LineCounting(t *testing.T) {
	tokens, err := Tokenize("x = 1\ny = 2\n# comment\nz = 3")
	assert.NoError(t, err)
	var identLines []int
	for _, tok := range tokens {
		if tok.Kind == token.Identifier {
			identLines = append(identLines, tok.Line)
		}
	}
	assert.Equal(t, []int{1, 2, 4}, identLines)
}

func TestTokenize_AlwaysEndsWithEof(t *testing.T) {
	for _, src := range []string{"", "   ", "echo 1", "# just a comment"} {
		tokens, err := Tokenize(src)
		assert.NoError(t, err)
		assert.NotEmpty(t, tokens)
		assert.Equal(t, token.Eof, tokens[len(tokens)-1].Kind)
	}
}
