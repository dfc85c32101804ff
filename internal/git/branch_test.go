package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBranchList(t *testing.T) {
	out := "main\torigin/main\t*\t\n" +
		"feat/old\torigin/feat/old\t \t[gone]\n" +
		"feat/ahead\torigin/feat/ahead\t \t[ahead 2]\n" +
		"local\t\t \t\n"

	branches := ParseBranchList(out)

	require.Len(t, branches, 4)
	assert.Equal(t, Branch{Name: "main", Upstream: "origin/main", IsHead: true}, branches[0])
	assert.True(t, branches[1].Gone)
	assert.False(t, branches[2].Gone)
	assert.Empty(t, branches[3].Upstream)
}

func TestParseBranchListShortLines(t *testing.T) {
	branches := ParseBranchList("only-name\nname\tupstream\n\n")

	require.Len(t, branches, 2)
	assert.Equal(t, Branch{Name: "only-name"}, branches[0])
	assert.Equal(t, Branch{Name: "name", Upstream: "upstream"}, branches[1])
}

func TestFindHelpers(t *testing.T) {
	branches := []Branch{{Name: "a"}, {Name: "b", Gone: true}}
	b, ok := FindBranch(branches, "b")
	assert.True(t, ok)
	assert.True(t, b.Gone)
	_, ok = FindBranch(branches, "c")
	assert.False(t, ok)

	wts := []Worktree{{Path: "/d"}, {Path: "/x", Branch: "x"}}
	wt, ok := FindWorktree(wts, "x")
	assert.True(t, ok)
	assert.Equal(t, "/x", wt.Path)
	_, ok = FindWorktree(wts, "")
	assert.False(t, ok)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "feat-login", SanitizeName("feat/login"))
	assert.Equal(t, "a-b-c", SanitizeName("a/b/c"))
	assert.Equal(t, "plain", SanitizeName("plain"))
}

func TestValidateBranchName(t *testing.T) {
	valid := []string{"main", "feat/login", "fix-123", "release/v1.2"}
	for _, name := range valid {
		assert.NoError(t, ValidateBranchName(name), name)
	}

	invalid := []string{"", "-x", "/x", "x/", "a..b", "x.lock", "has space", "a:b", "a~1", "a^", "a?", "a*", "a[b", `a\b`}
	for _, name := range invalid {
		assert.Error(t, ValidateBranchName(name), name)
	}
}
