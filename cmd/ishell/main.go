// Command ishell is the CLI entrypoint: an interactive REPL, a one-shot
// `-c` command, a script runner, and a `tree` subcommand for inspecting the
// virtual filesystem. Grounded on forensicanalysis-fscmd/cmd.go's cobra
// root-command wiring, replacing the teacher's hand-rolled os.Args switch
// (cmd/llmsh/main.go) with a cobra command tree.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mako10k/ishell/internal/persistence"
	"github.com/mako10k/ishell/internal/shellapp"
	"github.com/mako10k/ishell/internal/vfs"
)

var (
	flagProfile   string
	flagDebug     bool
	flagConfig    string
	flagCommand   string
	flagPersistTo string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ishell [script]",
		Short: "an in-memory Unix-like shell interpreter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			defer app.Logger.Sync()

			if flagCommand != "" {
				return runOne(app, flagCommand)
			}
			if len(args) == 1 {
				return runScript(app, args[0])
			}
			return runInteractive(app)
		},
	}

	root.PersistentFlags().StringVar(&flagProfile, "profile", "", "home directory profile (default, portfolio)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose structured logging")
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a JSON config file")
	root.PersistentFlags().StringVarP(&flagCommand, "command", "c", "", "execute a single command line and exit")
	root.PersistentFlags().StringVar(&flagPersistTo, "persist-dir", "", "persist the filesystem to this directory across runs (default: in-memory only)")

	root.AddCommand(newTreeCmd())
	return root
}

func newTreeCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "tree [path]",
		Short: "render the virtual filesystem as a tree diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp()
			if err != nil {
				return err
			}
			defer app.Logger.Sync()

			path := app.FS.CurrentPath
			if len(args) == 1 {
				path = app.FS.ResolvePath(args[0])
			}
			rendered, err := app.FS.RenderTree(path, all)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include dotfiles")
	return cmd
}

func buildApp() (*shellapp.App, error) {
	cfg := shellapp.DefaultConfig()
	if flagProfile != "" {
		cfg.Profile = flagProfile
	}
	if flagConfig != "" {
		loaded, err := shellapp.LoadConfigFile(flagConfig, true)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		if flagProfile != "" {
			cfg.Profile = flagProfile
		}
	}

	logger, err := shellapp.NewLogger(flagDebug)
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	persistDir := cfg.PersistenceDir
	if flagPersistTo != "" {
		persistDir = flagPersistTo
	}

	var store persistence.BlobStore
	if persistDir != "" {
		store, err = persistence.NewFileBlobStore(persistDir)
		if err != nil {
			return nil, err
		}
	} else {
		store = persistence.NewMemoryBlobStore()
	}

	return shellapp.New(cfg, store, logger)
}

// runOne executes a single "-c" command line and prints its output.
func runOne(app *shellapp.App, line string) error {
	res := app.RunLine(line)
	emit(app, res)
	if !res.Success {
		os.Exit(res.ExitCode)
	}
	return nil
}

// runScript executes every non-blank, non-comment line of a host file in
// order, exactly as interactive input would be entered one line at a time
// (the tokenizer has no newline-as-separator concept of its own; ";" and
// "&&"/"||" still work within a single line).
func runScript(app *shellapp.App, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening script %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res := app.RunLine(line)
		emit(app, res)
	}
	return scanner.Err()
}

// runInteractive drives the chzyer/readline REPL, grounded on the teacher's
// interactiveWithReadline (internal/llmsh/shell.go): history file handling
// and a readline.AutoCompleter, generalized to read history from the
// virtual filesystem and complete against the live oracle (component L)
// instead of a static command list.
func runInteractive(app *shellapp.App) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptFor(app),
		AutoComplete:    app.Completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	seedHistory(rl, app)

	for {
		rl.SetPrompt(promptFor(app))
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		res := app.RunLine(line)
		emit(app, res)
		rl.SaveHistory(line)
	}
}

func seedHistory(rl *readline.Instance, app *shellapp.App) {
	node := app.FS.GetNode(append(append([]string{}, app.FS.Home...), ".history"))
	if node == nil {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(node.Content, "\n"), "\n") {
		if line != "" {
			rl.SaveHistory(line)
		}
	}
}

func promptFor(app *shellapp.App) string {
	return vfs.JoinPath(app.FS.CurrentPath) + " $ "
}
