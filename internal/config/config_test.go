package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/gnoswap-labs/boolproof/internal/config"
	"github.com/gnoswap-labs/boolproof/internal/rules"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".boolproof.yaml")
	want := Config{
		Name:               "boolproof",
		MaxDepth:           7,
		MaxTransformations: 500,
		DisabledLaws:       []string{"COMMUTATIVE_AND"},
	}
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "maxDepth: 7")
}

func TestDisabledLawSetResolvesNames(t *testing.T) {
	cfg := Config{DisabledLaws: []string{"COMMUTATIVE_AND", "NOT_A_REAL_LAW"}}
	set := cfg.DisabledLawSet()
	assert.True(t, set[rules.CommutativeAnd])
	assert.Len(t, set, 1)
}
