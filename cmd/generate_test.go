package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCmdListsEquivalentForms(t *testing.T) {
	generateMaxSteps = 5
	defer func() { generateMaxSteps = 20 }()

	var buf bytes.Buffer
	generateCmd.SetOut(&buf)
	err := generateCmd.RunE(generateCmd, []string{"!!p"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "!!p")
}

func TestGenerateCmdRejectsWrongArgCount(t *testing.T) {
	err := generateCmd.RunE(generateCmd, nil)
	assert.Error(t, err)
}
