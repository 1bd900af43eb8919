package lexer

import (
	"testing"

	"github.com/mna/stackasm/lang/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexBasics(t *testing.T) {
	src := []byte(`34 35 + print # push two ints, add, print
`)
	toks, err := Lex(src, "t.stk")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.INT, token.INT, token.PLUS, token.IDENT, token.EOF}, kinds(toks))
	require.Equal(t, "34", toks[0].Literal)
	require.Equal(t, "print", toks[3].Literal)
}

func TestLexNegativeInteger(t *testing.T) {
	toks, err := Lex([]byte("-5"), "t.stk")
	require.NoError(t, err)
	require.Equal(t, token.INT, toks[0].Kind)
	require.Equal(t, "-5", toks[0].Literal)
}

func TestLexString(t *testing.T) {
	toks, err := Lex([]byte(`"hello\nworld"`), "t.stk")
	require.NoError(t, err)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello\nworld", toks[0].Literal)
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex([]byte(`"hello`), "t.stk")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unterminated string literal")
}

func TestLexFunctionDeclaration(t *testing.T) {
	src := []byte(`func add : int int -> int in + end`)
	toks, err := Lex(src, "t.stk")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.FUNC, token.IDENT, token.COLON, token.IDENT, token.IDENT,
		token.ARROW, token.IDENT, token.IDENT, token.PLUS, token.END, token.EOF,
	}, kinds(toks))
}

func TestLexKeywordsAndIntrinsics(t *testing.T) {
	src := []byte(`if do while end drop dup swap @ ! syscall1`)
	toks, err := Lex(src, "t.stk")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{
		token.IF, token.DO, token.WHILE, token.END, token.DROP, token.COPY,
		token.SWAP, token.MEMORY_LOAD, token.MEMORY_STORE, token.SYSCALL1, token.EOF,
	}, kinds(toks))
}

func TestLexComment(t *testing.T) {
	toks, err := Lex([]byte("1 # trailing comment\n2"), "t.stk")
	require.NoError(t, err)
	require.Equal(t, []token.Kind{token.INT, token.INT, token.EOF}, kinds(toks))
}

func TestLexPositions(t *testing.T) {
	toks, err := Lex([]byte("1\n2"), "t.stk")
	require.NoError(t, err)
	l1, c1 := toks[0].Pos.LineCol()
	require.Equal(t, 1, l1)
	require.Equal(t, 1, c1)
	l2, _ := toks[1].Pos.LineCol()
	require.Equal(t, 2, l2)
}
