package shellapp

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mako10k/ishell/internal/alias"
	"github.com/mako10k/ishell/internal/builtin"
	"github.com/mako10k/ishell/internal/complete"
	"github.com/mako10k/ishell/internal/env"
	"github.com/mako10k/ishell/internal/exec"
	"github.com/mako10k/ishell/internal/history"
	"github.com/mako10k/ishell/internal/persistence"
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// filesystemModifying names the builtins that trigger an immediate
// persistence save rather than a debounced one, plus any command carrying
// output redirection (checked separately by the caller) (spec 4.B).
var filesystemModifying = map[string]bool{
	"touch": true,
	"mkdir": true,
	"rm":    true,
	"rmdir": true,
	"vi":    true,
	"cp":    true,
	"mv":    true,
}

// App is a fully wired shell session: filesystem, alias/env tables,
// executor, persistence, history, and the logger that App itself uses.
type App struct {
	Config  *Config
	Logger  *zap.Logger
	FS      *vfs.State
	Session *exec.Session
	Persist *persistence.Adapter
}

// New initializes a fresh or persistence-rehydrated session for profile,
// sources ~/.bashrc if present, and returns the wired App (SPEC_FULL.md
// shellapp "initialize(profile)" note).
func New(cfg *Config, store persistence.BlobStore, logger *zap.Logger) (*App, error) {
	profile, err := ResolveProfile(cfg.Profile)
	if err != nil {
		return nil, err
	}

	adapter := persistence.NewAdapter(store)
	fs, _, loadErr := adapter.Load()
	if loadErr != nil {
		logger.Warn("failed to load persisted filesystem, starting fresh", zap.Error(loadErr))
		fs = nil
	}
	if fs == nil {
		fs = freshFilesystem(profile, cfg)
	} else {
		// adapter.Load() always rehydrates Home as the hardcoded default
		// (internal/persistence.Adapter); reassert the configured profile's
		// home so a resumed non-default session still resolves "~", a
		// bare "cd", and the history path against its own home (spec §9
		// Open Question 2).
		fs.Home = profile.Home
		fs.PerFileCap = cfg.PerFileCap
		fs.PerDirCap = cfg.PerDirCap
		fs.TotalCap = cfg.TotalCap
	}

	aliases := alias.NewTable()
	envTable := env.NewTable()
	session := exec.NewSession(fs, aliases, envTable)

	app := &App{Config: cfg, Logger: logger, FS: fs, Session: session, Persist: adapter}

	if err := app.sourceBashrc(); err != nil {
		logger.Debug("no .bashrc to source", zap.Error(err))
	}

	logger.Info("session initialized", zap.String("profile", profile.Name), zap.String("home", vfs.JoinPath(profile.Home)))
	return app, nil
}

// freshFilesystem builds a new, empty filesystem rooted at profile's home
// with cfg's quota caps applied.
func freshFilesystem(profile Profile, cfg *Config) *vfs.State {
	fs := vfs.NewState()
	fs.Home = profile.Home
	ensureDirectory(fs, profile.Home)
	_ = fs.Cd(profile.Home)
	fs.PerFileCap = cfg.PerFileCap
	fs.PerDirCap = cfg.PerDirCap
	fs.TotalCap = cfg.TotalCap
	return fs
}

// ResetFilesystem re-initializes the filesystem from defaults, optionally
// under a named profile (spec §6: "RESET_FILESYSTEM (optionally :mode):
// re-initialise from defaults"). Aliases and env are left untouched; only
// the filesystem tree is replaced. The host (cmd/ishell) calls this after
// observing the RESET_FILESYSTEM control signal in a command's output.
func (a *App) ResetFilesystem(mode string) error {
	profile, err := ResolveProfile(mode)
	if err != nil {
		return err
	}
	fs := freshFilesystem(profile, a.Config)
	a.FS = fs
	a.Session.FS = fs
	if err := a.Persist.Clear(); err != nil {
		return err
	}
	return a.Persist.Save(fs, a.Config.Profile)
}

// ensureDirectory creates every path segment under the root that does not
// already exist, for profiles whose home differs from NewState's built-in
// "/home/user" (spec §9 Open Question: a profile's home is just data, never
// branched per-command).
func ensureDirectory(fs *vfs.State, path []string) {
	var built []string
	for _, segment := range path {
		parent := append([]string{}, built...)
		if fs.GetNode(append(append([]string{}, parent...), segment)) == nil {
			_, _ = fs.CreateDirectory(parent, segment)
		}
		built = append(built, segment)
	}
}

// sourceBashrc applies ~/.bashrc's alias/export declarations at startup if
// the file exists, mirroring a login shell (SPEC_FULL.md shellapp note).
func (a *App) sourceBashrc() error {
	path := append(append([]string{}, a.FS.Home...), ".bashrc")
	node := a.FS.GetNode(path)
	if node == nil {
		return fmt.Errorf("no .bashrc present")
	}
	ctx := &builtin.Context{FS: a.FS, Aliases: a.Session.Aliases, Env: a.Session.Env}
	applied := builtin.ApplyScript(ctx, node.Content)
	a.Logger.Debug("sourced .bashrc", zap.Int("aliases", applied.AliasCount), zap.Int("exports", applied.ExportCount))
	return nil
}

// RunLine parses and executes one line of input, records it to history,
// and schedules or forces a persistence save depending on whether the
// command modifies the filesystem (spec 4.B, 4.K).
func (a *App) RunLine(line string) result.CommandResult {
	node, err := parseLine(line)
	if err != nil {
		return result.Fail(result.ExitUsageError, err.Error())
	}

	res := a.Session.Run(node)

	if histErr := history.Append(a.FS, line); histErr != nil {
		a.Logger.Warn("failed to append history", zap.Error(histErr))
	}

	if modifiesFilesystem(node) {
		if err := a.Persist.Save(a.FS, a.Config.Profile); err != nil {
			a.Logger.Error("immediate save failed", zap.Error(err))
		}
	} else {
		a.Persist.ScheduleSave(a.FS, a.Config.Profile)
	}

	return res
}

// Completer builds the autocompletion oracle adapter for the current
// session state (component L, wired at the cmd/ishell REPL layer).
func (a *App) Completer() *complete.ReadlineAdapter {
	return complete.NewReadlineAdapter(a.FS, a.Session.Aliases)
}
