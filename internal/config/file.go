package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	arborerrors "github.com/sqve/arbor/internal/errors"
	"github.com/sqve/arbor/internal/fs"
)

const (
	DirName           = ".arbor"
	FileName          = "settings.toml"
	LocalFileName     = "settings.local.toml"
	gitignoreFileName = ".gitignore"
)

//go:embed settings.template.toml
var initTemplate string

func Path(repoRoot string) string {
	return filepath.Join(repoRoot, DirName, FileName)
}

func LocalPath(repoRoot string) string {
	return filepath.Join(repoRoot, DirName, LocalFileName)
}

// Exists reports whether the repository has been initialized.
func Exists(repoRoot string) bool {
	return fs.PathExists(Path(repoRoot))
}

// Load reads the base settings and merges the local override onto them.
// Missing files yield defaults; malformed files fail naming the file.
func Load(repoRoot string) (Settings, error) {
	base, err := LoadFromFile(Path(repoRoot))
	if err != nil {
		return Settings{}, err
	}

	local, err := LoadFromFile(LocalPath(repoRoot))
	if err != nil {
		return Settings{}, err
	}

	merged := Merge(base, local)
	if err := ValidateSettings(merged); err != nil {
		return Settings{}, arborerrors.ErrConfigInvalid(Path(repoRoot), err.Error())
	}
	return merged, nil
}

// LoadFromFile returns empty settings if the file is missing, an error if it is invalid.
func LoadFromFile(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the repository root
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, arborerrors.ErrConfigInvalid(path, err.Error())
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, arborerrors.ErrConfigInvalid(path, describeDecodeError(err))
	}
	return s, nil
}

// WriteTemplateToFile writes the commented settings template and the
// .gitignore keeping settings.local.toml out of version control.
func WriteTemplateToFile(repoRoot, repoName, defaultBranch string) (string, error) {
	path := Path(repoRoot)
	if fs.PathExists(path) {
		return "", arborerrors.ErrAlreadyInitialized(filepath.Join(DirName, FileName))
	}

	dir := filepath.Dir(path)
	if err := fs.CreateDirectory(dir, fs.DirGit); err != nil {
		return "", arborerrors.ErrFileSystem("create settings directory", err)
	}

	content := RenderTemplate(initTemplate, map[string]string{
		"repo_name":      repoName,
		"default_branch": defaultBranch,
	})
	if err := fs.WriteFileAtomic(path, []byte(content), fs.FileGit); err != nil {
		return "", arborerrors.ErrFileSystem("write settings", err)
	}

	ignore := filepath.Join(dir, gitignoreFileName)
	if err := fs.WriteFileAtomic(ignore, []byte(LocalFileName+"\n"), fs.FileGit); err != nil {
		return "", arborerrors.ErrFileSystem("write .gitignore", err)
	}

	return path, nil
}

func describeDecodeError(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("line %d, column %d: %s", row, col, decodeErr.Error())
	}
	return err.Error()
}
