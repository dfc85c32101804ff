package worktree

import (
	"path/filepath"

	"github.com/sqve/arbor/internal/config"
	arborerrors "github.com/sqve/arbor/internal/errors"
)

// Init writes .arbor/settings.toml and its .gitignore into the repository
// root. It fails with ErrAlreadyInitialized when settings already exist.
func Init(env *Env) (string, error) {
	if config.Exists(env.RepoRoot) {
		return "", arborerrors.ErrAlreadyInitialized(filepath.Join(config.DirName, config.FileName))
	}

	repoName := filepath.Base(env.RepoRoot)
	if repoName == "" || repoName == "." || repoName == string(filepath.Separator) {
		repoName = "repo"
	}

	if _, err := config.WriteTemplateToFile(env.RepoRoot, repoName, env.Git.DefaultBranch()); err != nil {
		return "", err
	}
	return "Initialized " + filepath.Join(config.DirName, config.FileName), nil
}
