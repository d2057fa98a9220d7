package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSQLiteConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "database:\n  driver: sqlite\n  path: " + filepath.Join(dir, "board.db") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMigrateCommands(t *testing.T) {
	cfgPath := writeSQLiteConfig(t)

	out, err := run(t, "status", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "pending"), out)

	_, err = run(t, "up", "--config", cfgPath)
	require.NoError(t, err)

	out, err = run(t, "status", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "applied"), out)
	assert.Contains(t, out, "00001_create_posts.sql")

	_, err = run(t, "down", "--config", cfgPath)
	require.NoError(t, err)

	out, err = run(t, "status", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "applied"), out)
	assert.Equal(t, 1, strings.Count(out, "pending"), out)
}

func TestMigrateCommands_InvalidDriver(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database:\n  driver: oracle\n"), 0o600))

	_, err := run(t, "up", "--config", path)
	assert.Error(t, err)
}

func TestMigrateCommands_RejectsArgs(t *testing.T) {
	_, err := run(t, "up", "extra")
	assert.Error(t, err)
}
