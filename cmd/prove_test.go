package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/boolproof/internal/config"
)

func TestProveOneFindsReflexiveProof(t *testing.T) {
	out := captureStdout(t, func() {
		err := proveOne(config.Default(), "p", "p")
		assert.NoError(t, err)
	})
	assert.Contains(t, out, "proved in 0 step(s)")
}

func TestProveOneReturnsErrNotProvedWhenUnreachable(t *testing.T) {
	proveMaxDepth = 1
	proveMaxTransformations = 50
	defer func() { proveMaxDepth, proveMaxTransformations = 0, 0 }()

	out := captureStdout(t, func() {
		err := proveOne(config.Default(), "p", "q")
		assert.ErrorIs(t, err, errNotProved)
	})
	assert.Contains(t, out, "no proof found")
}

func TestProveOneRejectsUnparsableExpression(t *testing.T) {
	err := proveOne(config.Default(), "p &", "p")
	assert.Error(t, err)
}

func TestRunBatchProvesEachLineAndReportsFailures(t *testing.T) {
	proveMaxDepth = 1
	proveMaxTransformations = 50
	defer func() { proveMaxDepth, proveMaxTransformations = 0, 0 }()

	path := filepath.Join(t.TempDir(), "cases.bp")
	require.NoError(t, os.WriteFile(path, []byte(
		"# a comment\n\np | p\np | q\n"), 0o644))

	_ = captureStdout(t, func() {
		err := runBatch(config.Default(), path)
		assert.ErrorIs(t, err, errNotProved)
	})
}

func TestRunBatchDirDiscoversAndRunsBpFiles(t *testing.T) {
	proveMaxDepth = 5
	proveMaxTransformations = 500
	defer func() { proveMaxDepth, proveMaxTransformations = 0, 0 }()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ok.bp"), []byte("p | p\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("p | q\n"), 0o644))

	_ = captureStdout(t, func() {
		err := runBatchDir(config.Default(), dir)
		assert.NoError(t, err)
	})
}
