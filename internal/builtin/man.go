package builtin

import "github.com/mako10k/ishell/internal/result"

// Man shows the one-line summary for a single command name (spec 4.H).
func Man(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		return result.Fail(result.ExitGeneralFailure, "man: missing operand")
	}
	summary, ok := commandSummaries[args[0]]
	if !ok {
		return result.Fail(result.ExitGeneralFailure, "man: no manual entry for "+args[0])
	}
	return result.Ok(args[0] + " - " + summary + "\n")
}
