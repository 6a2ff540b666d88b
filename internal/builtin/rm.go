package builtin

import (
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Rm removes files or directories. "-r"/"-R" recurse into directories;
// "-f" suppresses missing-target errors and forces success (spec 4.H).
func Rm(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)
	recursive := flags['r'] || flags['R']
	force := flags['f']

	if len(operands) == 0 {
		if force {
			return result.Ok("")
		}
		return result.Fail(result.ExitGeneralFailure, "rm: missing operand")
	}

	for _, operand := range operands {
		path := ctx.FS.ResolvePath(operand)
		node := ctx.FS.GetNode(path)
		if node == nil {
			if force {
				continue
			}
			return result.Fail(result.ExitGeneralFailure, "rm: "+operand+": "+vfs.ErrNotFound.Error())
		}
		if node.Kind == vfs.KindDirectory && !recursive {
			return result.Fail(result.ExitGeneralFailure, "rm: "+operand+": "+vfs.ErrIsADirectory.Error())
		}
		if err := ctx.FS.DeleteNode(path, recursive); err != nil {
			if force {
				continue
			}
			return result.Fail(result.ExitGeneralFailure, "rm: "+operand+": "+err.Error())
		}
	}
	return result.Ok("")
}
