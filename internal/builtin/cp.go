package builtin

import (
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Cp copies one or more sources to a destination. A directory destination
// means "into"; "-r" is required to copy directories; "-f" overrides an
// existing destination (spec 4.H).
func Cp(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)
	if len(operands) < 2 {
		return result.Fail(result.ExitGeneralFailure, "cp: missing destination operand")
	}

	sources := operands[:len(operands)-1]
	dest := operands[len(operands)-1]
	recursive := flags['r'] || flags['R']
	force := flags['f']

	destPath := ctx.FS.ResolvePath(dest)
	destNode := ctx.FS.GetNode(destPath)
	destIsDir := destNode != nil && destNode.Kind == vfs.KindDirectory

	if len(sources) > 1 && !destIsDir {
		return result.Fail(result.ExitGeneralFailure, "cp: target "+dest+" is not a directory")
	}

	for _, src := range sources {
		srcPath := ctx.FS.ResolvePath(src)
		srcNode := ctx.FS.GetNode(srcPath)
		if srcNode == nil {
			return result.Fail(result.ExitGeneralFailure, "cp: "+src+": "+vfs.ErrNotFound.Error())
		}
		if srcNode.Kind == vfs.KindDirectory && !recursive {
			return result.Fail(result.ExitGeneralFailure, "cp: "+src+": "+vfs.ErrIsADirectory.Error()+" (use -r)")
		}

		targetPath := destPath
		if destIsDir {
			targetPath = append(append([]string{}, destPath...), srcNode.Name)
		}

		if existing := ctx.FS.GetNode(targetPath); existing != nil {
			if !force {
				return result.Fail(result.ExitGeneralFailure, "cp: "+vfs.JoinPath(targetPath)+": "+vfs.ErrAlreadyExists.Error())
			}
			if err := ctx.FS.DeleteNode(targetPath, true); err != nil {
				return result.Fail(result.ExitGeneralFailure, "cp: "+err.Error())
			}
		}

		if err := copyNode(ctx.FS, srcNode, targetPath[:len(targetPath)-1], targetPath[len(targetPath)-1]); err != nil {
			return result.Fail(result.ExitGeneralFailure, "cp: "+err.Error())
		}
	}
	return result.Ok("")
}

func copyNode(fs *vfs.State, src *vfs.Node, destParent []string, destName string) error {
	if src.Kind == vfs.KindFile {
		_, err := fs.CreateFile(destParent, destName, src.Content)
		return err
	}

	if _, err := fs.CreateDirectory(destParent, destName); err != nil {
		return err
	}
	childParent := append(append([]string{}, destParent...), destName)
	for name, child := range src.Children {
		if err := copyNode(fs, child, childParent, name); err != nil {
			return err
		}
	}
	return nil
}
