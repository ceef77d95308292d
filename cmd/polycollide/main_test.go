package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/osuushi/polycollide/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoScene = "../../scene/testdata/demo.yaml"

func TestRunResolve(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runResolve(&out, dbg.NewPalette(false), nil, demoScene))
	assert.Contains(t, out.String(), "ball: (3, 0) → (1, 0) ended at (2.0010")
	assert.Contains(t, out.String(), "hex: (0, 10) → (0, 12) ended at (0.0000, 12.0000)")
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCheck(&out, dbg.NewPalette(false), demoScene))
	assert.Empty(t, out.String())
}

func TestRunRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.png")
	require.NoError(t, runRender(demoScene, path, 20, true, false))
	assert.FileExists(t, path)
}

func TestRunSchema(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runSchema(&out))
	assert.Contains(t, out.String(), `"bodies"`)
}
