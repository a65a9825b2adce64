package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/block/blocktest"
	"github.com/BTechSCALE/blockly/config"
	"github.com/BTechSCALE/blockly/logger"
	"github.com/BTechSCALE/blockly/scope"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvAscent, config.EnvLogLevel, config.EnvColor, config.EnvFollowRenames} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, scope.AscentEnclosing, cfg.Ascent)
	assert.Equal(t, logger.LogLevelWarn, cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.FollowRenames)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "BLOCKSCOPE_ASCENT=lexical\nBLOCKSCOPE_LOG_LEVEL=debug\nBLOCKSCOPE_COLOR=false\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, scope.AscentLexical, cfg.Ascent)
	assert.Equal(t, logger.LogLevelDebug, cfg.LogLevel)
	assert.False(t, cfg.Color)
	assert.True(t, cfg.FollowRenames)
}

func TestEnvironmentWins(t *testing.T) {
	clearEnv(t)
	path := writeEnv(t, "BLOCKSCOPE_ASCENT=lexical\nBLOCKSCOPE_FOLLOW_RENAMES=true\n")
	t.Setenv(config.EnvAscent, "enclosing")
	t.Setenv(config.EnvFollowRenames, "0")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, scope.AscentEnclosing, cfg.Ascent)
	assert.False(t, cfg.FollowRenames)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	clearEnv(t)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFromLookupErrors(t *testing.T) {
	env := map[string]string{
		config.EnvAscent:   "sideways",
		config.EnvColor:    "maybe",
		config.EnvLogLevel: "info",
	}
	cfg, err := config.FromLookup(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvAscent)
	assert.Contains(t, err.Error(), config.EnvColor)
	assert.Equal(t, logger.LogLevelInfo, cfg.LogLevel)
	assert.True(t, cfg.Color)
}

func TestDispatcherUsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Ascent = scope.AscentLexical
	cfg.LogLevel = logger.LogLevelOff

	ws := block.NewWorkspace()
	proc := blocktest.Proc(t, ws, "p", false)
	d := blocktest.Declare(t, ws, "d", "int", "x")
	s := blocktest.Set(t, ws, "s", "x")
	blocktest.Plug(t, proc, block.SlotStack, d)
	blocktest.Chain(t, d, s)

	disp := cfg.Dispatcher(ws)
	disp.Settle()
	assert.Same(t, d, s.Declarator())
	assert.Equal(t, scope.AscentLexical, disp.Binder().Walker().Ascent())
}
