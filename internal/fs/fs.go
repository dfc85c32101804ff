package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

const (
	// Strict permissions (gosec-compliant defaults)
	DirStrict  = 0o750 // rwxr-x---
	FileStrict = 0o600 // rw-------

	// Git-compatible permissions
	DirGit  = 0o755 // rwxr-xr-x
	FileGit = 0o644 // rw-r--r--
)

// PathExists reports whether anything, including a dangling symlink, occupies path.
func PathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// CreateDirectory creates a directory with the given permissions, including parent directories
func CreateDirectory(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WriteFileAtomic writes data to a file atomically by writing to a temp file then renaming
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmpPath := fmt.Sprintf("%s.tmp.%d.%d", path, os.Getpid(), time.Now().UnixNano())
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// PathsEqual compares two cleaned paths for equality.
// On Windows, comparison is case-insensitive since the filesystem is case-insensitive.
func PathsEqual(path1, path2 string) bool {
	clean1 := filepath.Clean(path1)
	clean2 := filepath.Clean(path2)

	if runtime.GOOS == "windows" {
		return strings.EqualFold(clean1, clean2)
	}
	return clean1 == clean2
}

// SamePath is PathsEqual after resolving symlinks on both sides, so a cwd under
// /private/var matches a git-reported /var path on macOS.
func SamePath(path1, path2 string) bool {
	if PathsEqual(path1, path2) {
		return true
	}
	return PathsEqual(resolve(path1), resolve(path2))
}

func resolve(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
