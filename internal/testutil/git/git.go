// Package git creates throwaway git repositories for tests that need a real
// git binary.
package git

import (
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sqve/arbor/internal/testutil"
)

// TestRepo is a repository with one commit on its initial branch.
type TestRepo struct {
	t    *testing.T
	Dir  string // parent directory, a good place for sibling worktrees
	Path string
}

// NewTestRepo creates a repository at <tmp>/repo. Pass an optional branch
// name (default "main").
func NewTestRepo(t *testing.T, branchName ...string) *TestRepo {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not found in PATH")
	}

	dir := testutil.TempDir(t)
	r := &TestRepo{t: t, Dir: dir, Path: filepath.Join(dir, "repo")}

	branch := "main"
	if len(branchName) > 0 && branchName[0] != "" {
		branch = branchName[0]
	}

	r.Git(dir, "init", "-q", r.Path)
	r.Git(r.Path, "symbolic-ref", "HEAD", "refs/heads/"+branch)
	r.Git(r.Path, "config", "commit.gpgsign", "false")
	r.Git(r.Path, "config", "user.email", "test@example.com")
	r.Git(r.Path, "config", "user.name", "Test User")

	r.WriteFile("README.md", "test\n")
	r.Commit("initial")

	return r
}

// Git runs git in dir and returns trimmed stdout. Fails the test on error.
func (r *TestRepo) Git(dir string, args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...) // nolint:gosec
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		stderr := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		r.t.Fatalf("git %s failed: %v\n%s", strings.Join(args, " "), err, stderr)
	}
	return strings.TrimSpace(string(out))
}

// WriteFile writes name relative to the repository root.
func (r *TestRepo) WriteFile(name, content string) {
	r.t.Helper()
	testutil.WriteFile(r.t, filepath.Join(r.Path, name), content)
}

// Commit stages everything and commits.
func (r *TestRepo) Commit(message string) {
	r.t.Helper()
	r.Git(r.Path, "add", "-A")
	r.Git(r.Path, "commit", "-q", "--allow-empty", "-m", message)
}

func (r *TestRepo) CreateBranch(name string) {
	r.t.Helper()
	r.Git(r.Path, "branch", name)
}

// AddWorktree checks out a new branch in a sibling directory and returns its path.
func (r *TestRepo) AddWorktree(branch string) string {
	r.t.Helper()
	path := filepath.Join(r.Dir, strings.ReplaceAll(branch, "/", "-"))
	r.Git(r.Path, "worktree", "add", "-q", "-b", branch, path)
	return path
}

// SetUpstreamGone points branch at an origin ref that was never fetched,
// which git reports as gone.
func (r *TestRepo) SetUpstreamGone(branch string) {
	r.t.Helper()
	if r.Git(r.Path, "remote") == "" {
		r.Git(r.Path, "remote", "add", "origin", filepath.Join(r.Dir, "missing.git"))
	}
	r.Git(r.Path, "config", "branch."+branch+".remote", "origin")
	r.Git(r.Path, "config", "branch."+branch+".merge", "refs/heads/"+branch)
}
