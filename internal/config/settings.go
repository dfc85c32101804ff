package config

import (
	"path/filepath"
	"slices"
)

const (
	// DefaultSourceBranch is used when no default_source is configured.
	DefaultSourceBranch = "main"
	// DefaultWorktreeDirName is created inside the git common dir when no
	// destination is configured.
	DefaultWorktreeDirName = "arbor-worktrees"
	// DefaultTabTitleTemplate titles multiplexer tabs after the branch.
	DefaultTabTitleTemplate = "{name}"
)

// Settings is the per-repository configuration read from .arbor/settings.toml
// and .arbor/settings.local.toml. Pointer fields distinguish "absent" from a
// zero value so an override never erases what the base file set.
type Settings struct {
	WorktreeDestinationBaseDir *string          `toml:"worktree_destination_base_dir,omitempty"`
	DefaultSource              *string          `toml:"default_source,omitempty"`
	Symlinks                   []string         `toml:"symlinks,omitempty"`
	ExtraSymlinks              []string         `toml:"extra_symlinks,omitempty"`
	InitSubmodules             bool             `toml:"init_submodules"`
	SubmoduleReference         bool             `toml:"submodule_reference"`
	WezTerm                    *WezTermSettings `toml:"wezterm,omitempty"`
	Hooks                      HookSettings     `toml:"hooks"`
}

type WezTermSettings struct {
	AutoOpen         bool    `toml:"auto_open"`
	TabTitleTemplate *string `toml:"tab_title_template,omitempty"`
}

type HookSettings struct {
	PostAdd []string `toml:"post_add,omitempty"`
}

// Merge returns base with override applied. Neither argument is modified.
func Merge(base, override Settings) Settings {
	merged := base.clone()

	if override.WorktreeDestinationBaseDir != nil {
		merged.WorktreeDestinationBaseDir = ptr(*override.WorktreeDestinationBaseDir)
	}
	if override.DefaultSource != nil {
		merged.DefaultSource = ptr(*override.DefaultSource)
	}
	if len(override.Symlinks) > 0 {
		merged.Symlinks = slices.Clone(override.Symlinks)
	}
	merged.ExtraSymlinks = appendUnique(merged.ExtraSymlinks, override.ExtraSymlinks)

	// Booleans only ever switch on.
	merged.InitSubmodules = base.InitSubmodules || override.InitSubmodules
	merged.SubmoduleReference = base.SubmoduleReference || override.SubmoduleReference

	if override.WezTerm != nil {
		merged.WezTerm = override.WezTerm.clone()
	}
	if len(override.Hooks.PostAdd) > 0 {
		merged.Hooks.PostAdd = slices.Clone(override.Hooks.PostAdd)
	}

	return merged
}

// AllSymlinks returns the primary patterns followed by extra patterns not
// already present, in first-seen order.
func (s Settings) AllSymlinks() []string {
	return appendUnique(appendUnique(nil, s.Symlinks), s.ExtraSymlinks)
}

// DefaultSourceBranch returns the configured source branch or "main".
func (s Settings) DefaultSourceBranch() string {
	if s.DefaultSource != nil && *s.DefaultSource != "" {
		return *s.DefaultSource
	}
	return DefaultSourceBranch
}

// WorktreeBaseDir returns the directory new worktrees are created in. A
// relative configured value is resolved against repoRoot; without one the
// worktrees live in <commonDir>/arbor-worktrees.
func (s Settings) WorktreeBaseDir(repoRoot, commonDir string) string {
	if s.WorktreeDestinationBaseDir != nil && *s.WorktreeDestinationBaseDir != "" {
		dir := *s.WorktreeDestinationBaseDir
		if filepath.IsAbs(dir) {
			return filepath.Clean(dir)
		}
		return filepath.Join(repoRoot, dir)
	}
	return filepath.Join(commonDir, DefaultWorktreeDirName)
}

// AutoOpen reports whether new worktrees should open in a multiplexer tab.
func (s Settings) AutoOpen() bool {
	return s.WezTerm != nil && s.WezTerm.AutoOpen
}

// TabTitle renders the configured tab title template for a branch.
func (s Settings) TabTitle(branch string) string {
	tmpl := DefaultTabTitleTemplate
	if s.WezTerm != nil && s.WezTerm.TabTitleTemplate != nil {
		tmpl = *s.WezTerm.TabTitleTemplate
	}
	return RenderTemplate(tmpl, map[string]string{"name": branch})
}

func (s Settings) clone() Settings {
	c := s
	if s.WorktreeDestinationBaseDir != nil {
		c.WorktreeDestinationBaseDir = ptr(*s.WorktreeDestinationBaseDir)
	}
	if s.DefaultSource != nil {
		c.DefaultSource = ptr(*s.DefaultSource)
	}
	c.Symlinks = slices.Clone(s.Symlinks)
	c.ExtraSymlinks = slices.Clone(s.ExtraSymlinks)
	c.WezTerm = s.WezTerm.clone()
	c.Hooks.PostAdd = slices.Clone(s.Hooks.PostAdd)
	return c
}

func (w *WezTermSettings) clone() *WezTermSettings {
	if w == nil {
		return nil
	}
	c := *w
	if w.TabTitleTemplate != nil {
		c.TabTitleTemplate = ptr(*w.TabTitleTemplate)
	}
	return &c
}

func appendUnique(dst, src []string) []string {
	out := slices.Clone(dst)
	for _, s := range src {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
