package symlink

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS(t *testing.T, files ...string) billy.Filesystem {
	t.Helper()
	mem := memfs.New()
	require.NoError(t, mem.MkdirAll("/src", 0o755))
	require.NoError(t, mem.MkdirAll("/dst", 0o755))
	for _, f := range files {
		require.NoError(t, util.WriteFile(mem, "/src/"+f, []byte(f), 0o644))
	}
	return mem
}

func TestSync(t *testing.T) {
	t.Run("links literal files", func(t *testing.T) {
		mem := newFS(t, ".env", ".envrc")
		s := New(mem)

		created, err := s.Sync("/src", "/dst", []string{".env", ".envrc", ".tool-versions"})

		require.NoError(t, err)
		assert.Equal(t, []string{".env", ".envrc"}, created)

		target, err := mem.Readlink("/dst/.env")
		require.NoError(t, err)
		assert.Equal(t, "/src/.env", target)
	})

	t.Run("expands globs", func(t *testing.T) {
		mem := newFS(t, ".env", ".env.local", "README.md")
		s := New(mem)

		created, err := s.Sync("/src", "/dst", []string{".env*"})

		require.NoError(t, err)
		assert.Equal(t, []string{".env", ".env.local"}, created)
	})

	t.Run("creates intermediate directories", func(t *testing.T) {
		mem := newFS(t)
		require.NoError(t, util.WriteFile(mem, "/src/config/app.local.yml", []byte("x"), 0o644))
		s := New(mem)

		created, err := s.Sync("/src", "/dst", []string{"config/*.local.yml"})

		require.NoError(t, err)
		assert.Equal(t, []string{"config/app.local.yml"}, created)

		fi, err := mem.Lstat("/dst/config")
		require.NoError(t, err)
		assert.True(t, fi.IsDir())
	})

	t.Run("is idempotent", func(t *testing.T) {
		mem := newFS(t, ".env", ".envrc")
		s := New(mem)
		patterns := []string{".env", ".envrc"}

		first, err := s.Sync("/src", "/dst", patterns)
		require.NoError(t, err)
		second, err := s.Sync("/src", "/dst", patterns)
		require.NoError(t, err)

		assert.Equal(t, []string{".env", ".envrc"}, first)
		assert.Empty(t, second)
	})

	t.Run("existing target entries are skipped", func(t *testing.T) {
		mem := newFS(t, ".env")
		require.NoError(t, util.WriteFile(mem, "/dst/.env", []byte("mine"), 0o644))
		s := New(mem)

		created, err := s.Sync("/src", "/dst", []string{".env"})

		require.NoError(t, err)
		assert.Empty(t, created)
		content, err := util.ReadFile(mem, "/dst/.env")
		require.NoError(t, err)
		assert.Equal(t, "mine", string(content))
	})

	t.Run("overlapping patterns link once", func(t *testing.T) {
		mem := newFS(t, ".env")
		s := New(mem)

		created, err := s.Sync("/src", "/dst", []string{".env", ".env*"})

		require.NoError(t, err)
		assert.Equal(t, []string{".env"}, created)
	})

	t.Run("no patterns", func(t *testing.T) {
		created, err := New(newFS(t, ".env")).Sync("/src", "/dst", nil)

		require.NoError(t, err)
		assert.Empty(t, created)
	})
}
