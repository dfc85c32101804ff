package git

import (
	"fmt"
	"strconv"
	"strings"

	arborerrors "github.com/sqve/arbor/internal/errors"
)

// MinVersion is the oldest git supporting `worktree remove` and
// `worktree lock --reason`.
var MinVersion = Version{Major: 2, Minor: 17}

type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v is older than other.
func (v Version) Less(other Version) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	if v.Minor != other.Minor {
		return v.Minor < other.Minor
	}
	return v.Patch < other.Patch
}

// ParseVersion reads `git --version` output such as "git version 2.39.2 (Apple
// Git-143)" or "git version 2.45.1.windows.1".
func ParseVersion(output string) (Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return Version{}, fmt.Errorf("unrecognized git version output: %q", strings.TrimSpace(output))
	}

	parts := strings.Split(fields[2], ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("unrecognized git version %q", fields[2])
	}

	var nums [3]int
	for i := 0; i < len(nums) && i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			if i < 2 {
				return Version{}, fmt.Errorf("unrecognized git version %q", fields[2])
			}
			break
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Version returns the installed git version.
func (c *Client) Version() (Version, error) {
	out, err := c.run(c.Dir, "--version")
	if err != nil {
		return Version{}, err
	}
	v, err := ParseVersion(out)
	if err != nil {
		return Version{}, arborerrors.Wrap(err, "failed to determine git version")
	}
	return v, nil
}

// CheckVersion fails with ErrGitVersionTooOld below MinVersion.
func (c *Client) CheckVersion() error {
	v, err := c.Version()
	if err != nil {
		return err
	}
	if v.Less(MinVersion) {
		return arborerrors.ErrGitVersionTooOld(v.String(), MinVersion.String())
	}
	return nil
}
