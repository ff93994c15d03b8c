package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gnoswap-labs/boolproof/internal/expr"
	. "github.com/gnoswap-labs/boolproof/internal/rules"
)

func TestAssociativeAndRule(t *testing.T) {
	// (p & q) & r -> p & (q & r): left-nested is tried first.
	result, ok := AssociativeAndRule(A(A(V("p"), V("q")), V("r")))
	assert.True(t, ok)
	assert.Equal(t, "(p & (q & r))", Print(result))

	// p & (q & r) -> (p & q) & r: only right-nested, so the right branch fires.
	result, ok = AssociativeAndRule(A(V("p"), A(V("q"), V("r"))))
	assert.True(t, ok)
	assert.Equal(t, "((p & q) & r)", Print(result))

	_, ok = AssociativeAndRule(A(V("p"), V("q")))
	assert.False(t, ok)
}

func TestAssociativeOrRule(t *testing.T) {
	result, ok := AssociativeOrRule(O(O(V("p"), V("q")), V("r")))
	assert.True(t, ok)
	assert.Equal(t, "(p | (q | r))", Print(result))
}
