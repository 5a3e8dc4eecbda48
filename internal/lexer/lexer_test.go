package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golox/internal/diag"
	"golox/internal/token"
)

func scan(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	diags := &diag.Bag{}
	toks := New(src, diags).ScanTokens()
	return toks, diags
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestScanTokens_Punctuation(t *testing.T) {
	toks, diags := scan(t, "(){},.-+;*")
	assert.False(t, diags.HasErrors())
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.EOF,
	}, kinds(toks))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	toks, diags := scan(t, "!= == <= >= < > = !")
	assert.False(t, diags.HasErrors())
	assert.Equal(t, []token.Kind{
		token.BangEqual, token.EqualEqual, token.LessEqual, token.GreaterEqual,
		token.Less, token.Greater, token.Equal, token.Bang, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	toks, diags := scan(t, "123 45.6")
	assert.False(t, diags.HasErrors())
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 45.6, toks[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	toks, diags := scan(t, `"hello world"`)
	assert.False(t, diags.HasErrors())
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, diags := scan(t, `"unterminated`)
	assert.True(t, diags.HasErrors())
}

func TestScanTokens_KeywordsVsIdentifiers(t *testing.T) {
	toks, diags := scan(t, "var x = fun while foo")
	assert.False(t, diags.HasErrors())
	assert.Equal(t, []token.Kind{
		token.Var, token.Identifier, token.Equal, token.Fun, token.While,
		token.Identifier, token.EOF,
	}, kinds(toks))
}

func TestScanTokens_CommentsSkipped(t *testing.T) {
	toks, diags := scan(t, "1 // a line comment\n+ /* a block\ncomment */ 2")
	assert.False(t, diags.HasErrors())
	assert.Equal(t, []token.Kind{token.Number, token.Plus, token.Number, token.EOF}, kinds(toks))
	// the block comment spans a newline, so the trailing `2` is on line 3
	assert.Equal(t, 3, toks[2].Line)
}

func TestScanTokens_UnterminatedBlockComment(t *testing.T) {
	_, diags := scan(t, "/* never closed")
	assert.True(t, diags.HasErrors())
}

func TestScanTokens_AlwaysEndsInEOF(t *testing.T) {
	toks, _ := scan(t, "")
	assert.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}
