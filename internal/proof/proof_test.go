package proof_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/gnoswap-labs/boolproof/internal/expr"
	. "github.com/gnoswap-labs/boolproof/internal/proof"
	"github.com/gnoswap-labs/boolproof/internal/rules"
)

func TestNotFound(t *testing.T) {
	p := NotFound()
	assert.False(t, p.FoundTarget)
	assert.Empty(t, p.Steps)
	assert.Equal(t, 0, p.TotalSteps)
}

func TestAssembleRenumbersSteps(t *testing.T) {
	path := []Step{
		{Expr: V("a"), Law: rules.DoubleNegation, Description: "first", StepNumber: 40},
		{Expr: V("b"), Law: rules.CommutativeAnd, Description: "second", StepNumber: 41},
	}
	p := Assemble(path)

	assert.True(t, p.FoundTarget)
	assert.Equal(t, 2, p.TotalSteps)
	assert.Equal(t, 1, p.Steps[0].StepNumber)
	assert.Equal(t, 2, p.Steps[1].StepNumber)
	assert.Equal(t, "first", p.Steps[0].Description)
}

func TestAssembleEmptyPath(t *testing.T) {
	p := Assemble(nil)
	assert.True(t, p.FoundTarget)
	assert.Equal(t, 0, p.TotalSteps)
	assert.Empty(t, p.Steps)
}
