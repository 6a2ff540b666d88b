package builtin

import (
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Pwd emits the formatted current path (spec 4.H).
func Pwd(ctx *Context, args []string) result.CommandResult {
	return result.Ok(vfs.JoinPath(ctx.FS.CurrentPath))
}
