// Package formatter renders worktrees for terminal output.
package formatter

import (
	"strings"
	"unicode/utf8"

	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/styles"
)

const (
	ellipsis      = "..."
	minPathWidth  = 12
	columnSpacing = "  "
)

// Flags returns the bracketed state markers of a worktree, or "".
func Flags(wt git.Worktree) string {
	var flags []string
	if wt.Bare {
		flags = append(flags, "[bare]")
	}
	if wt.Locked {
		flags = append(flags, "[locked]")
	}
	if wt.Prunable {
		flags = append(flags, "[prunable]")
	}
	return strings.Join(flags, " ")
}

// TruncatePath shortens path from the left so it fits in width runes.
func TruncatePath(path string, width int) string {
	n := utf8.RuneCountInString(path)
	if width <= 0 || n <= width {
		return path
	}
	if width <= len(ellipsis) {
		return ellipsis[:width]
	}
	runes := []rune(path)
	return ellipsis + string(runes[n-(width-len(ellipsis)):])
}

// WorktreeRows renders one aligned line per worktree: branch, short hash,
// path and flags. With width > 0 paths are truncated so each line fits.
func WorktreeRows(worktrees []git.Worktree, width int) []string {
	branchWidth := 0
	for _, wt := range worktrees {
		branchWidth = max(branchWidth, utf8.RuneCountInString(wt.DisplayName()))
	}

	rows := make([]string, 0, len(worktrees))
	for _, wt := range worktrees {
		branch := pad(wt.DisplayName(), branchWidth)
		hash := pad(wt.ShortHead(), 7)
		flags := Flags(wt)

		path := wt.Path
		if width > 0 {
			used := branchWidth + 7 + 2*len(columnSpacing)
			if flags != "" {
				used += len(columnSpacing) + len(flags)
			}
			path = TruncatePath(path, max(width-used, minPathWidth))
		}

		parts := []string{
			styles.Render(&styles.Success, branch),
			styles.Render(&styles.Warning, hash),
		}
		if flags == "" {
			parts = append(parts, styles.Render(&styles.Dimmed, path))
		} else {
			parts = append(parts,
				styles.Render(&styles.Dimmed, path),
				styles.Render(&styles.Error, flags),
			)
		}
		rows = append(rows, strings.Join(parts, columnSpacing))
	}
	return rows
}

// WorktreeLabel is the short "branch  path" form used in pickers.
func WorktreeLabel(wt git.Worktree) string {
	return wt.DisplayName() + columnSpacing + styles.Render(&styles.Dimmed, wt.Path)
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
