package builtin

import (
	"fmt"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Stat shows detailed metadata for a single path (SPEC_FULL.md component A
// supplement, grounded on forensicanalysis-fscmd's `stat` subcommand).
func Stat(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		return result.Fail(result.ExitGeneralFailure, "stat: missing operand")
	}

	path := ctx.FS.ResolvePath(args[0])
	node, err := ctx.FS.Stat(path)
	if err != nil {
		return result.Fail(result.ExitGeneralFailure, "stat: "+args[0]+": "+err.Error())
	}

	kind := "file"
	if node.Kind == vfs.KindDirectory {
		kind = "directory"
	}
	out := fmt.Sprintf(
		"  File: %s\n  Kind: %s\n  Size: %d\n  Perm: %s\nCreated: %s\nModified: %s\n",
		args[0], kind, node.Size, node.Permissions,
		node.CreatedAt.Format("2006-01-02 15:04:05"),
		node.ModifiedAt.Format("2006-01-02 15:04:05"),
	)
	return result.Ok(out)
}
