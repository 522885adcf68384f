package msgcat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaults(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	s, err := c.Render("table.move", map[string]any{"Disk": 2, "From": "A", "To": "C"})
	require.NoError(t, err)
	assert.Equal(t, "2 from A to C", s)

	s, err = c.Render("summary.moves", map[string]any{"Moves": 7})
	require.NoError(t, err)
	assert.Equal(t, "Number of moves required to complete the game: 7", s)
	assert.True(t, c.has("table.start"))

	s, err = c.Render("input.too_many", map[string]any{"Max": 63})
	require.NoError(t, err)
	assert.Equal(t, "Number of disks must be at most 63.", s)
	assert.Equal(t, "Enter the number of disks: ", c.MustRender("input.prompt", nil))
}

func TestRenderMissing(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	_, err = c.Render("no.such.key", nil)
	assert.Error(t, err)
	assert.Equal(t, "no.such.key", c.MustRender("no.such.key", nil))

	_, err = c.Render("table.move", map[string]any{"Disk": 1})
	assert.Error(t, err, "missing template fields are errors")
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("table:\n  start: \"begin\"\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	c, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, "begin", c.MustRender("table.start", nil))
	assert.Equal(t, "Move", c.MustRender("table.move_header", nil))
}

func TestOverrideDirDuplicateKeys(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("table:\n  start: one\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte("table:\n  start: two\n"), 0o644))

	_, err := New(dir)
	assert.ErrorContains(t, err, "duplicate override key")
}

func TestOverrideRejectsNonStringLeaves(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("table:\n  start: 3\n"), 0o644))

	_, err := New(dir)
	assert.Error(t, err)
}
