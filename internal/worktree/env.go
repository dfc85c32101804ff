// Package worktree implements arbor's commands on top of git worktrees. Each
// command is a short pipeline: read the registry, decide, mutate through git,
// report. Nothing is cached between commands.
package worktree

import (
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/sqve/arbor/internal/config"
	"github.com/sqve/arbor/internal/git"
	"github.com/sqve/arbor/internal/logger"
	"github.com/sqve/arbor/internal/multiplexer"
	"github.com/sqve/arbor/internal/process"
	"github.com/sqve/arbor/internal/symlink"
)

// Env is everything a command needs about the repository it runs in.
type Env struct {
	Git       *git.Client
	FS        billy.Filesystem
	Links     *symlink.Synchronizer
	Settings  config.Settings
	Mux       multiplexer.Multiplexer // nil outside a multiplexer
	Out       *logger.Printer
	Cwd       string
	RepoRoot  string
	CommonDir string
}

// Options configure Load.
type Options struct {
	Runner process.Runner
	Out    *logger.Printer
	Getenv func(string) string
	// SkipSettings loads an empty configuration, for commands that must run
	// before .arbor/settings.toml exists.
	SkipSettings bool
}

// Load discovers the repository containing cwd and prepares an Env for it.
// It fails with ErrNotARepository outside a repository, with
// ErrGitVersionTooOld on an unsupported git and with ErrConfigInvalid when
// the settings cannot be read.
func Load(cwd string, opts Options) (*Env, error) {
	log := logger.WithComponent("worktree")

	if opts.Runner == nil {
		opts.Runner = process.Default
	}
	if opts.Out == nil {
		opts.Out = logger.Stdio()
	}
	if opts.Getenv == nil {
		opts.Getenv = os.Getenv
	}

	if err := git.EnsureRepository(cwd); err != nil {
		return nil, err
	}

	client := git.NewClient(opts.Runner, cwd)
	if err := client.CheckVersion(); err != nil {
		return nil, err
	}

	root, err := client.TopLevel()
	if err != nil {
		return nil, err
	}
	client = client.At(root)

	commonDir, err := client.CommonDir()
	if err != nil {
		return nil, err
	}

	var settings config.Settings
	if !opts.SkipSettings {
		if settings, err = config.Load(root); err != nil {
			return nil, err
		}
	}

	rootFS := osfs.New("/")
	env := &Env{
		Git:       client,
		FS:        rootFS,
		Links:     symlink.New(rootFS),
		Settings:  settings,
		Mux:       multiplexer.Detect(opts.Runner, opts.Getenv),
		Out:       opts.Out,
		Cwd:       cwd,
		RepoRoot:  root,
		CommonDir: commonDir,
	}

	log.Debug("environment loaded", "root", root, "common_dir", commonDir, "multiplexer", env.muxName())
	return env, nil
}

func (e *Env) muxName() string {
	if e.Mux == nil {
		return "none"
	}
	return e.Mux.Name()
}

// BaseDir is where new worktrees are created.
func (e *Env) BaseDir() string {
	return e.Settings.WorktreeBaseDir(e.RepoRoot, e.CommonDir)
}

// joinNames renders a list for one-line summaries.
func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
