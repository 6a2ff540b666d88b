// Package builtin implements the ~30 built-in commands (component H),
// generalized from the teacher's stream-only command signature
// (func(args []string, stdin io.Reader, stdout io.Writer) error, see
// internal/tools/builtin/*.go) to a filesystem-aware signature: builtins in
// this spec need to cd/ls/mkdir/rm the virtual tree, which the teacher's
// pipe-only Commands map never needed since it only ever piped bytes
// between external processes and the host's real filesystem.
package builtin

import (
	"github.com/mako10k/ishell/internal/alias"
	"github.com/mako10k/ishell/internal/env"
	"github.com/mako10k/ishell/internal/vfs"
)

// Context carries everything a builtin needs: the session's filesystem,
// alias and env tables, the text piped in as stdin, and the exit code of
// the previous command (for `$?` semantics already resolved into Env by
// the executor before dispatch).
type Context struct {
	FS           *vfs.State
	Aliases      *alias.Table
	Env          *env.Table
	Stdin        string
	HasStdin     bool
	LastExitCode int
}
