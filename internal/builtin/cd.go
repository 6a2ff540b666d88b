package builtin

import "github.com/mako10k/ishell/internal/result"

// Cd changes the current directory. No argument goes home; the target
// must resolve to an existing directory (spec 4.H).
func Cd(ctx *Context, args []string) result.CommandResult {
	var target string
	if len(args) == 0 {
		target = "~"
	} else {
		target = args[0]
	}

	path := ctx.FS.ResolvePath(target)
	if err := ctx.FS.Cd(path); err != nil {
		return result.Fail(result.ExitGeneralFailure, "cd: "+err.Error())
	}
	return result.Ok("")
}
