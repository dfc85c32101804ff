// Package symlink links untracked files from one checkout into another.
package symlink

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/fs"
	"github.com/sqve/arbor/internal/logger"
)

// Synchronizer creates missing symlinks for a set of glob patterns. All paths
// it receives are absolute and resolved against fs.
type Synchronizer struct {
	fs billy.Filesystem
}

// New returns a Synchronizer over filesystem, which must be rooted at "/".
func New(filesystem billy.Filesystem) *Synchronizer {
	return &Synchronizer{fs: filesystem}
}

// Sync links every path under sourceDir matching patterns to the same relative
// path under targetDir. Entries already present in targetDir are left alone.
// It returns the relative paths that were newly linked; on error the paths
// linked so far are returned with it.
func (s *Synchronizer) Sync(sourceDir, targetDir string, patterns []string) ([]string, error) {
	log := logger.WithComponent("symlink")

	var created []string
	for _, pattern := range patterns {
		matches, err := s.match(sourceDir, pattern)
		if err != nil {
			return created, arborerrors.ErrSymlink(pattern, err)
		}

		for _, rel := range matches {
			linked, err := s.link(sourceDir, targetDir, rel)
			if err != nil {
				return created, err
			}
			if linked {
				log.Debug("linked", "path", rel, "target", targetDir)
				created = append(created, rel)
			}
		}
	}

	return created, nil
}

// match globs pattern under sourceDir, falling back to a literal path when the
// glob matches nothing.
func (s *Synchronizer) match(sourceDir, pattern string) ([]string, error) {
	source, err := s.fs.Chroot(sourceDir)
	if err != nil {
		return nil, err
	}

	matches, err := util.Glob(source, filepath.ToSlash(pattern))
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		slices.Sort(matches)
		return matches, nil
	}

	if _, err := source.Lstat(pattern); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return []string{pattern}, nil
}

func (s *Synchronizer) link(sourceDir, targetDir, rel string) (bool, error) {
	link := filepath.Join(targetDir, rel)

	if _, err := s.fs.Lstat(link); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, arborerrors.ErrSymlink(link, err)
	}

	if err := s.fs.MkdirAll(filepath.Dir(link), fs.DirGit); err != nil {
		return false, arborerrors.ErrSymlink(link, err)
	}
	if err := s.fs.Symlink(filepath.Join(sourceDir, rel), link); err != nil {
		return false, arborerrors.ErrSymlink(link, err)
	}
	return true, nil
}
