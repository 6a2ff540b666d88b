package builtin

import (
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Touch creates empty files or refreshes modified_at for existing ones;
// multi-arg (spec 4.H).
func Touch(ctx *Context, args []string) result.CommandResult {
	_, operands := splitArgs(args)
	if len(operands) == 0 {
		return result.Fail(result.ExitGeneralFailure, "touch: missing operand")
	}

	for _, operand := range operands {
		path := ctx.FS.ResolvePath(operand)
		node := ctx.FS.GetNode(path)
		if node == nil {
			if _, err := ctx.FS.CreateFile(path[:len(path)-1], path[len(path)-1], ""); err != nil {
				return result.Fail(result.ExitGeneralFailure, "touch: "+operand+": "+err.Error())
			}
			continue
		}
		if node.Kind != vfs.KindFile {
			return result.Fail(result.ExitGeneralFailure, "touch: "+operand+": "+vfs.ErrIsADirectory.Error())
		}
		if err := ctx.FS.WriteFile(path, node.Content); err != nil {
			return result.Fail(result.ExitGeneralFailure, "touch: "+operand+": "+err.Error())
		}
	}
	return result.Ok("")
}
