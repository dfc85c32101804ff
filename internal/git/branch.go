package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
)

// branchListFormat yields: short name, upstream short name, head marker,
// tracking annotation; tab separated.
const branchListFormat = "%(refname:short)%09%(upstream:short)%09%(HEAD)%09%(upstream:track)"

const goneMarker = "[gone]"

// Branch is one local branch.
type Branch struct {
	Name     string
	Upstream string
	IsHead   bool
	Gone     bool
}

// ParseBranchList parses for-each-ref output produced with branchListFormat.
// Short lines are accepted with the missing fields left empty.
func ParseBranchList(output string) []Branch {
	var branches []Branch

	for _, line := range splitLines(output) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		field := func(i int) string {
			if i < len(fields) {
				return fields[i]
			}
			return ""
		}

		branches = append(branches, Branch{
			Name:     field(0),
			Upstream: field(1),
			IsHead:   strings.TrimSpace(field(2)) == "*",
			Gone:     strings.Contains(field(3), goneMarker),
		})
	}

	return branches
}

// FindBranch returns the branch with the given name.
func FindBranch(branches []Branch, name string) (Branch, bool) {
	for _, b := range branches {
		if b.Name == name {
			return b, true
		}
	}
	return Branch{}, false
}

// FindWorktree returns the worktree that has branch checked out.
func FindWorktree(worktrees []Worktree, branch string) (Worktree, bool) {
	for _, wt := range worktrees {
		if wt.HasBranch() && wt.Branch == branch {
			return wt, true
		}
	}
	return Worktree{}, false
}

// SanitizeName maps a branch name onto a flat directory name.
func SanitizeName(branch string) string {
	return strings.ReplaceAll(branch, "/", "-")
}

// ValidateBranchName rejects names git would refuse before any worktree
// directory is created for them.
func ValidateBranchName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("branch name cannot be empty")
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("branch name %q cannot start with '-'", name)
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return fmt.Errorf("branch name %q cannot start or end with '/'", name)
	case strings.Contains(name, ".."), strings.HasSuffix(name, ".lock"):
		return fmt.Errorf("branch name %q is not a valid ref name", name)
	case strings.ContainsAny(name, " ~^:?*[\\"):
		return fmt.Errorf("branch name %q contains an invalid character", name)
	}

	if plumbing.NewBranchReferenceName(name).Short() != name {
		return fmt.Errorf("branch name %q is not a valid ref name", name)
	}
	return nil
}
