package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTempDir(t *testing.T) {
	dir := TempDir(t)

	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if resolved != dir {
		t.Errorf("expected resolved path %q, got %q", resolved, dir)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "file.txt")

	WriteFile(t, path, "hello")

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello" {
		t.Errorf("expected %q, got %q", "hello", string(got))
	}
}

func TestChdir(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("changes directory", func(t *testing.T) {
		dir := TempDir(t)
		Chdir(t, dir)

		cwd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		resolved, _ := filepath.EvalSymlinks(cwd)
		if resolved != dir {
			t.Errorf("expected cwd %q, got %q", dir, resolved)
		}
	})

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if cwd != origDir {
		t.Errorf("expected cwd restored to %q, got %q", origDir, cwd)
	}
}
