package dashboard

import (
	"path/filepath"
	"strings"

	"github.com/sqve/arbor/internal/formatter"
	"github.com/sqve/arbor/internal/styles"
)

const cursor = "> "

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Render(&styles.Header, "arbor: "+filepath.Base(m.env.RepoRoot)))
	b.WriteString("\n\n")

	if len(m.worktrees) == 0 {
		b.WriteString(styles.Render(&styles.Dimmed, "No worktrees found."))
		b.WriteString("\n")
	}

	width := m.width
	if width > 0 {
		width -= len(cursor)
	}
	for i, row := range formatter.WorktreeRows(m.worktrees, width) {
		if i == m.selected {
			b.WriteString(styles.Render(&styles.Selected, cursor))
		} else {
			b.WriteString(strings.Repeat(" ", len(cursor)))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(styles.Render(&styles.Info, m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}
