// SPDX-License-Identifier: MIT
package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/wta/internal/config"
	"github.com/katalvlaran/wta/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Full reads every field.
func TestLoad_Full(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(`
epsilon: 1e-8
log_level: debug
demo: rgb
trees:
  - "(+ R G)"
  - B
`))
	require.NoError(t, err)
	assert.Equal(t, 1e-8, cfg.Epsilon)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "rgb", cfg.Demo)
	assert.Equal(t, []string{"(+ R G)", "B"}, cfg.Trees)
}

// TestLoad_EmptyUsesDefaults treats an empty document as the defaults.
func TestLoad_EmptyUsesDefaults(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, matrix.DefaultEpsilon, cfg.Epsilon)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

// TestLoad_Rejects covers unknown keys and invalid values.
func TestLoad_Rejects(t *testing.T) {
	_, err := config.Load(strings.NewReader("epsilon: 1e-5\ncolour: red\n"))
	assert.Error(t, err)

	_, err = config.Load(strings.NewReader("epsilon: -1\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(strings.NewReader("log_level: loud\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(strings.NewReader("grammar: g.txt\ndemo: rgb\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

// TestLoadFile reads from disk.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wtamin.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: WARN\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.Level())

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
