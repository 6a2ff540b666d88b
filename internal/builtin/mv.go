package builtin

import (
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Mv moves/renames one or more sources to a destination. A directory
// destination means "into". "-f" overrides an existing destination; "-n"
// never overwrites; "-i" is treated the same as the default (refuse an
// existing destination) since there is no interactive prompt channel in
// this core (spec 4.H).
func Mv(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)
	if len(operands) < 2 {
		return result.Fail(result.ExitGeneralFailure, "mv: missing destination operand")
	}

	sources := operands[:len(operands)-1]
	dest := operands[len(operands)-1]
	force := flags['f']
	noClobber := flags['n']

	destPath := ctx.FS.ResolvePath(dest)
	destNode := ctx.FS.GetNode(destPath)
	destIsDir := destNode != nil && destNode.Kind == vfs.KindDirectory

	if len(sources) > 1 && !destIsDir {
		return result.Fail(result.ExitGeneralFailure, "mv: target "+dest+" is not a directory")
	}

	for _, src := range sources {
		srcPath := ctx.FS.ResolvePath(src)
		srcNode := ctx.FS.GetNode(srcPath)
		if srcNode == nil {
			return result.Fail(result.ExitGeneralFailure, "mv: "+src+": "+vfs.ErrNotFound.Error())
		}

		targetPath := destPath
		if destIsDir {
			targetPath = append(append([]string{}, destPath...), srcNode.Name)
		}

		if existing := ctx.FS.GetNode(targetPath); existing != nil {
			if noClobber {
				continue
			}
			if !force {
				return result.Fail(result.ExitGeneralFailure, "mv: "+vfs.JoinPath(targetPath)+": "+vfs.ErrAlreadyExists.Error())
			}
			if err := ctx.FS.DeleteNode(targetPath, true); err != nil {
				return result.Fail(result.ExitGeneralFailure, "mv: "+err.Error())
			}
		}

		if err := copyNode(ctx.FS, srcNode, targetPath[:len(targetPath)-1], targetPath[len(targetPath)-1]); err != nil {
			return result.Fail(result.ExitGeneralFailure, "mv: "+err.Error())
		}
		if err := ctx.FS.DeleteNode(srcPath, true); err != nil {
			return result.Fail(result.ExitGeneralFailure, "mv: "+err.Error())
		}
	}
	return result.Ok("")
}
