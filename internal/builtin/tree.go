package builtin

import "github.com/mako10k/ishell/internal/result"

// Tree renders a directory as a tree diagram (SPEC_FULL.md component A
// supplement, grounded on forensicanalysis-fscmd's `tree` subcommand).
func Tree(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)

	target := ctx.FS.CurrentPath
	if len(operands) > 0 {
		target = ctx.FS.ResolvePath(operands[0])
	}

	rendered, err := ctx.FS.RenderTree(target, flags['a'])
	if err != nil {
		return result.Fail(result.ExitGeneralFailure, "tree: "+err.Error())
	}
	return result.Ok(rendered)
}
