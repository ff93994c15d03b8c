package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/boolproof/internal/expr"
	. "github.com/gnoswap-labs/boolproof/internal/parser"
)

func TestParsePrecedence(t *testing.T) {
	e, err := Parse("p & q | r")
	require.NoError(t, err)
	assert.Equal(t, "((p & q) | r)", expr.Print(e))
}

func TestParseNotBindsTighterThanAnd(t *testing.T) {
	e, err := Parse("!p & q")
	require.NoError(t, err)
	assert.Equal(t, "(!p & q)", expr.Print(e))
}

func TestParseImpliesAndIff(t *testing.T) {
	e, err := Parse("p -> q <-> r")
	require.NoError(t, err)
	assert.Equal(t, "((p -> q) <-> r)", expr.Print(e))
}

func TestParseParentheses(t *testing.T) {
	e, err := Parse("!(p & q)")
	require.NoError(t, err)
	assert.Equal(t, "!(p & q)", expr.Print(e))
}

func TestParseConstants(t *testing.T) {
	e, err := Parse("T & F")
	require.NoError(t, err)
	assert.Equal(t, "(T & F)", expr.Print(e))
}

func TestParseUnicodeOperators(t *testing.T) {
	e, err := Parse("¬p ∧ q ∨ r")
	require.NoError(t, err)
	assert.Equal(t, "((!p & q) | r)", expr.Print(e))
}

func TestParseAliasOperators(t *testing.T) {
	e, err := Parse("~p && q || r")
	require.NoError(t, err)
	assert.Equal(t, "((!p & q) | r)", expr.Print(e))
}

func TestParseImpliesIsRightAssociative(t *testing.T) {
	e, err := Parse("p -> q -> r")
	require.NoError(t, err)
	assert.Equal(t, "(p -> (q -> r))", expr.Print(e))
}

func TestParseIffIsLeftAssociative(t *testing.T) {
	e, err := Parse("p <-> q <-> r")
	require.NoError(t, err)
	assert.Equal(t, "((p <-> q) <-> r)", expr.Print(e))
}

func TestParseSyntaxErrors(t *testing.T) {
	_, err := Parse("p &")
	require.Error(t, err)

	_, err = Parse("(p & q")
	require.Error(t, err)

	_, err = Parse("p # q")
	require.Error(t, err)

	var syntaxErr *SyntaxError
	_, err = Parse("p &")
	require.ErrorAs(t, err, &syntaxErr)
}
