package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gnoswap-labs/boolproof/internal/expr"
	. "github.com/gnoswap-labs/boolproof/internal/rules"
)

func TestIdentityAndRule(t *testing.T) {
	result, ok := IdentityAndRule(A(True(), V("p")))
	assert.True(t, ok)
	assert.Equal(t, V("p"), result)

	result, ok = IdentityAndRule(A(V("p"), True()))
	assert.True(t, ok)
	assert.Equal(t, V("p"), result)

	_, ok = IdentityAndRule(A(V("p"), V("q")))
	assert.False(t, ok)
}

func TestIdentityOrRule(t *testing.T) {
	result, ok := IdentityOrRule(O(False(), V("p")))
	assert.True(t, ok)
	assert.Equal(t, V("p"), result)
}

func TestAnnihilationAndRule(t *testing.T) {
	result, ok := AnnihilationAndRule(A(V("p"), False()))
	assert.True(t, ok)
	assert.Equal(t, False(), result)
}

func TestAnnihilationOrRule(t *testing.T) {
	result, ok := AnnihilationOrRule(O(True(), V("p")))
	assert.True(t, ok)
	assert.Equal(t, True(), result)
}
