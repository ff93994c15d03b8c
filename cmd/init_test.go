package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/boolproof/internal/config"
)

func TestInitCmdWritesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".boolproof.yaml")
	cfgFile = path
	defer func() { cfgFile = "" }()

	err := initCmd.RunE(initCmd, nil)
	require.NoError(t, err)

	got, err := config.Load(path)
	require.NoError(t, err)
	want := config.Default()
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.MaxDepth, got.MaxDepth)
	assert.Equal(t, want.MaxTransformations, got.MaxTransformations)
	assert.Empty(t, got.DisabledLaws)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
