package git

import (
	gogit "github.com/go-git/go-git/v5"

	arborerrors "github.com/sqve/arbor/internal/errors"
)

// EnsureRepository fails with ErrNotARepository unless path is inside a git
// working tree or linked worktree. It reads .git directly, so it is cheap to
// call before any git subprocess.
func EnsureRepository(path string) error {
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err == nil {
		return nil
	}
	if arborerrors.Is(err, gogit.ErrRepositoryNotExists) {
		return arborerrors.ErrNotARepository(path, nil)
	}
	return arborerrors.ErrNotARepository(path, err)
}
