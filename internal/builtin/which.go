package builtin

import "github.com/mako10k/ishell/internal/result"

// Which reports whether a name would run as an alias or a builtin
// (SPEC_FULL.md component H supplement, grounded on the teacher's
// HelpSystem.ListCommands reflection pattern).
func Which(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		return result.Fail(result.ExitGeneralFailure, "which: missing operand")
	}
	name := args[0]
	if cmd, ok := ctx.Aliases.Get(name); ok {
		return result.Ok(name + ": aliased to `" + cmd + "`\n")
	}
	if _, ok := Lookup(name); ok {
		return result.Ok(name + ": shell builtin\n")
	}
	return result.Fail(result.ExitGeneralFailure, name+": not found")
}

// Type classifies name as alias, builtin, or not found (SPEC_FULL.md
// component H supplement).
func Type(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		return result.Fail(result.ExitGeneralFailure, "type: missing operand")
	}
	name := args[0]
	if _, ok := ctx.Aliases.Get(name); ok {
		return result.Ok(name + " is an alias\n")
	}
	if _, ok := Lookup(name); ok {
		return result.Ok(name + " is a shell builtin\n")
	}
	return result.Fail(result.ExitGeneralFailure, name+" not found")
}
