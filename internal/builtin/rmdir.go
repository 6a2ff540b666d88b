package builtin

import (
	"strings"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Rmdir removes empty directories only; trailing slashes are tolerated
// (spec 4.H).
func Rmdir(ctx *Context, args []string) result.CommandResult {
	_, operands := splitArgs(args)
	if len(operands) == 0 {
		return result.Fail(result.ExitGeneralFailure, "rmdir: missing operand")
	}

	for _, operand := range operands {
		clean := strings.TrimRight(operand, "/")
		path := ctx.FS.ResolvePath(clean)
		node := ctx.FS.GetNode(path)
		if node == nil {
			return result.Fail(result.ExitGeneralFailure, "rmdir: "+operand+": "+vfs.ErrNotFound.Error())
		}
		if node.Kind != vfs.KindDirectory {
			return result.Fail(result.ExitGeneralFailure, "rmdir: "+operand+": "+vfs.ErrNotADirectory.Error())
		}
		if err := ctx.FS.DeleteNode(path, false); err != nil {
			return result.Fail(result.ExitGeneralFailure, "rmdir: "+operand+": "+err.Error())
		}
	}
	return result.Ok("")
}
