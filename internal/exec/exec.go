// Package exec implements the executor (component G): it walks a
// ChainedCommand/PipedCommand/ParsedCommand tree and runs it against a
// filesystem, alias table, and env table.
//
// Grounded on internal/llmsh/executor.go's Execute/executeSequence/
// executeConditional/executePipeline dispatch-by-type shape, generalized in
// three ways. First, chain nodes carry an explicit ";"/"&&"/"||" operator
// per command (spec 4.G) rather than the teacher's binary-tree
// SequenceNode/ConditionalNode pair, so exit-code short-circuiting walks a
// flat operator list instead of recursing down a tree. Second, pipeline
// plumbing keeps the teacher's "materialize previous stdout, feed as next
// stdin" shape but always does so as a full textual buffer between stages
// (never the teacher's io.Pipe streaming), attached to the next stage as a
// synthetic heredoc input source exactly as spec 4.G describes. Third,
// alias expansion re-entry mirrors the teacher's executeLLMSh recursive
// subshell pattern (spawn another shell on "-c" text), adapted from
// "spawn a process" to "recurse into this executor".
package exec

import (
	"strconv"
	"strings"

	"github.com/mako10k/ishell/internal/alias"
	"github.com/mako10k/ishell/internal/ast"
	"github.com/mako10k/ishell/internal/builtin"
	"github.com/mako10k/ishell/internal/env"
	"github.com/mako10k/ishell/internal/parse"
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Session bundles the state threaded through a run of commands: the
// filesystem, alias table, and env table.
type Session struct {
	FS      *vfs.State
	Aliases *alias.Table
	Env     *env.Table

	// aliasStack names the aliases currently being expanded somewhere up
	// this call's tree. alias.Table.Expand only catches a cycle whose
	// name reappears as the *leading* word of its own expansion; a cycle
	// buried after an operator (e.g. `a` -> "echo hi && a") escapes that
	// check and would otherwise recurse through runNode/runCommand
	// without bound (spec §8: any-length cycle is "command not found").
	aliasStack []string
}

// NewSession wires fs, aliases, and envTable together and seeds the
// reserved HOME/SHELL env vars from fs (spec 4.D: PWD/HOME/SHELL are
// session-derived, not user-assigned).
func NewSession(fs *vfs.State, aliases *alias.Table, envTable *env.Table) *Session {
	s := &Session{FS: fs, Aliases: aliases, Env: envTable}
	s.Env.Set(env.HOME, vfs.JoinPath(fs.Home))
	s.Env.Set(env.SHELL, "ishell")
	s.Env.Set(env.PWD, vfs.JoinPath(fs.CurrentPath))
	return s
}

// stdinSource is the text fed to a command as stdin: either a real
// redirection already attached to the command, or the previous pipeline
// stage's materialized output.
type stdinSource struct {
	text string
	has  bool
}

// Run executes node and records its exit code into $?.
func (s *Session) Run(node ast.Node) result.CommandResult {
	if node == nil {
		return result.Ok("")
	}
	res := s.runNode(node, stdinSource{})
	s.Env.Set(env.Exit, strconv.Itoa(res.ExitCode))
	return res
}

func (s *Session) runNode(node ast.Node, stdin stdinSource) result.CommandResult {
	switch n := node.(type) {
	case *ast.ChainedCommand:
		return s.runChain(n, stdin)
	case *ast.PipedCommand:
		return s.runPipeline(n, stdin)
	case *ast.ParsedCommand:
		return s.runCommand(n, stdin)
	default:
		return result.Fail(result.ExitGeneralFailure, "exec: unrecognized node type")
	}
}

// runChain runs commands left-to-right, consulting operators[i-1] before
// each step after the first, and concatenates every executed step's
// flattened output; the final executed step's exit code and success flag
// are what the chain as a whole reports (spec 4.G).
func (s *Session) runChain(c *ast.ChainedCommand, stdin stdinSource) result.CommandResult {
	var res result.CommandResult
	var combined strings.Builder

	for i, node := range c.Commands {
		if i > 0 {
			switch c.Operators[i-1] {
			case ast.OpAnd:
				if res.ExitCode != 0 {
					continue
				}
			case ast.OpOr:
				if res.ExitCode == 0 {
					continue
				}
			case ast.OpSemicolon:
			}
		}

		in := stdinSource{}
		if i == 0 {
			in = stdin
		}
		res = s.runNode(node, in)
		combined.WriteString(res.Output.Flatten())
	}

	res.Output = result.Plain(combined.String())
	return res
}

// runPipeline feeds each stage's materialized stdout to the next stage as
// stdin, flattening structured output to plain text along the way, and
// aborts immediately on the first failing stage (spec 4.G).
func (s *Session) runPipeline(p *ast.PipedCommand, stdin stdinSource) result.CommandResult {
	var res result.CommandResult
	for i, stage := range p.Commands {
		in := stdinSource{}
		switch {
		case i == 0:
			in = stdin
		default:
			in = stdinSource{text: res.Output.Flatten(), has: true}
		}
		res = s.runCommand(stage, in)
		if !res.Success {
			return res
		}
	}
	return res
}

// runCommand resolves alias expansion before dispatching cmd. If cmd's
// name is an alias, the expansion is re-parsed: an expansion containing
// operators is dispatched as its own chain/pipeline, otherwise it is
// treated as a single command that inherits cmd's redirections (spec 4.G).
func (s *Session) runCommand(cmd *ast.ParsedCommand, stdin stdinSource) result.CommandResult {
	if aliasOnStack(s.aliasStack, cmd.Command) {
		return result.Fail(result.ExitCommandNotFound, cmd.Command+": command not found")
	}

	expansion, expanded, err := s.Aliases.Expand(cmd.Command, cmd.Args)
	if err != nil {
		// alias.ErrCycle (or any expansion failure) is the same "command
		// not found" the spec mandates for a cycle of any length (spec §8).
		return result.Fail(result.ExitCommandNotFound, cmd.Command+": command not found")
	}
	if !expanded {
		return s.dispatch(cmd, stdin)
	}

	node, err := parse.Parse(expansion)
	if err != nil {
		return result.Fail(result.ExitUsageError, cmd.Command+": "+err.Error())
	}
	if node == nil {
		return result.Ok("")
	}

	s.aliasStack = append(s.aliasStack, cmd.Command)
	defer func() { s.aliasStack = s.aliasStack[:len(s.aliasStack)-1] }()

	pc, ok := node.(*ast.ParsedCommand)
	if !ok {
		return s.runNode(node, stdin)
	}
	if pc.RedirectOutput == nil {
		pc.RedirectOutput = cmd.RedirectOutput
	}
	if pc.RedirectInput == nil {
		pc.RedirectInput = cmd.RedirectInput
	}
	return s.dispatch(pc, stdin)
}

// aliasOnStack reports whether name is already being expanded somewhere up
// the current call tree.
func aliasOnStack(stack []string, name string) bool {
	for _, n := range stack {
		if n == name {
			return true
		}
	}
	return false
}

// dispatch resolves cmd's effective stdin (a real redirection taking
// priority over piped-in stdin), substitutes $NAME/${NAME}/$? in every
// argument, runs the builtin, applies any output redirection, and keeps
// PWD synchronized after a successful cd (spec 4.D, 4.G).
func (s *Session) dispatch(cmd *ast.ParsedCommand, stdin stdinSource) result.CommandResult {
	args := make([]string, len(cmd.Args))
	for i, a := range cmd.Args {
		if i < len(cmd.ArgQuotes) && cmd.ArgQuotes[i] == '\'' {
			args[i] = a
			continue
		}
		args[i] = s.Env.Expand(a)
	}

	fn, ok := builtin.Lookup(cmd.Command)
	if !ok {
		return result.Fail(result.ExitCommandNotFound, cmd.Command+": command not found")
	}

	ctx := &builtin.Context{FS: s.FS, Aliases: s.Aliases, Env: s.Env}
	if code, ok := s.Env.Get(env.Exit); ok {
		if n, err := strconv.Atoi(code); err == nil {
			ctx.LastExitCode = n
		}
	}

	redirectIn := cmd.RedirectInput
	if redirectIn == nil && stdin.has {
		redirectIn = &ast.InputRedirect{Kind: ast.InputFromHeredoc, Source: stdin.text}
	}

	switch {
	case redirectIn == nil:
	case redirectIn.Kind == ast.InputFromHeredoc:
		ctx.Stdin, ctx.HasStdin = redirectIn.Source, true
	case cmd.Command == "wc" && len(args) == 0:
		// wc with "<" and no operand treats the redirected filename as its
		// sole positional argument rather than reading file content as
		// stdin (spec 4.G); wc.go resolves the path itself.
		args = []string{redirectIn.Source}
	default:
		path := s.FS.ResolvePath(redirectIn.Source)
		node := s.FS.GetNode(path)
		if node == nil || node.Kind != vfs.KindFile {
			return result.Fail(result.ExitGeneralFailure, cmd.Command+": "+redirectIn.Source+": no such file or directory")
		}
		ctx.Stdin, ctx.HasStdin = node.Content, true
	}

	res := fn(ctx, args)

	if cmd.RedirectOutput != nil {
		if err := s.writeRedirect(cmd.RedirectOutput, res.Output.Flatten()); err != nil {
			return result.Fail(result.ExitGeneralFailure, cmd.Command+": "+err.Error())
		}
		res.Output = result.Plain("")
	}

	if cmd.Command == "cd" && res.Success {
		s.Env.Set(env.PWD, vfs.JoinPath(s.FS.CurrentPath))
	}

	return res
}

// writeRedirect overwrites or appends text to the file named by redir,
// creating it along a single path segment if missing (spec 4.G: "both
// create the file if missing (including along a single-segment path - not
// multi-segment creation)").
func (s *Session) writeRedirect(redir *ast.OutputRedirect, text string) error {
	path := s.FS.ResolvePath(redir.Filename)
	if len(path) == 0 {
		return vfs.ErrInvalidName
	}

	if s.FS.GetNode(path) == nil {
		parent := path[:len(path)-1]
		name := path[len(path)-1]
		if _, err := s.FS.CreateFile(parent, name, ""); err != nil {
			return err
		}
	}

	if redir.Mode == ast.RedirectAppend {
		return s.FS.AppendFile(path, text)
	}
	return s.FS.WriteFile(path, text)
}
