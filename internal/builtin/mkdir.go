package builtin

import (
	"errors"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Mkdir creates directories. "-p" creates intermediate directories
// silently and ignores existing directory targets (spec 4.H).
func Mkdir(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)
	if len(operands) == 0 {
		return result.Fail(result.ExitGeneralFailure, "mkdir: missing operand")
	}

	for _, operand := range operands {
		path := ctx.FS.ResolvePath(operand)
		if flags['p'] {
			if err := mkdirAllPath(ctx.FS, path); err != nil {
				return result.Fail(result.ExitGeneralFailure, "mkdir: "+operand+": "+err.Error())
			}
			continue
		}

		if len(path) == 0 {
			return result.Fail(result.ExitGeneralFailure, "mkdir: "+operand+": "+vfs.ErrAlreadyExists.Error())
		}
		if _, err := ctx.FS.CreateDirectory(path[:len(path)-1], path[len(path)-1]); err != nil {
			return result.Fail(result.ExitGeneralFailure, "mkdir: "+operand+": "+err.Error())
		}
	}
	return result.Ok("")
}

func mkdirAllPath(fs *vfs.State, path []string) error {
	var built []string
	for _, name := range path {
		node := fs.GetNode(append(append([]string{}, built...), name))
		if node == nil {
			if _, err := fs.CreateDirectory(built, name); err != nil {
				return err
			}
		} else if node.Kind != vfs.KindDirectory {
			return errors.New("not a directory: " + name)
		}
		built = append(built, name)
	}
	return nil
}
