package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gnoswap-labs/boolproof/internal/expr"
	. "github.com/gnoswap-labs/boolproof/internal/rules"
)

func TestDistributiveAndOverOrRule_PrefersRightSideOrOperand(t *testing.T) {
	// x & (y | z): the Or is on the right of the And, matching the
	// pattern's canonical "x & (y | z)" reading directly.
	result, ok := DistributiveAndOverOrRule(A(V("x"), O(V("y"), V("z"))))
	assert.True(t, ok)
	assert.Equal(t, "((x & y) | (x & z))", Print(result))
}

func TestDistributiveAndOverOrRule_OrOnLeft(t *testing.T) {
	result, ok := DistributiveAndOverOrRule(A(O(V("y"), V("z")), V("x")))
	assert.True(t, ok)
	assert.Equal(t, "((y & x) | (z & x))", Print(result))
}

func TestDistributiveAndOverOrRule_NoMatch(t *testing.T) {
	_, ok := DistributiveAndOverOrRule(A(V("x"), V("y")))
	assert.False(t, ok)
}

func TestDistributiveOrOverAndRule_PrefersRightSideAndOperand(t *testing.T) {
	result, ok := DistributiveOrOverAndRule(O(V("x"), A(V("y"), V("z"))))
	assert.True(t, ok)
	assert.Equal(t, "((x | y) & (x | z))", Print(result))
}

func TestDistributiveOrOverAndRule_AndOnLeft(t *testing.T) {
	result, ok := DistributiveOrOverAndRule(O(A(V("y"), V("z")), V("x")))
	assert.True(t, ok)
	assert.Equal(t, "((y | x) & (z | x))", Print(result))
}
