package builtin

import "github.com/mako10k/ishell/internal/result"

// Clear emits the CLEAR control signal (spec 4.H, 6).
func Clear(ctx *Context, args []string) result.CommandResult {
	return result.Ok(result.SignalClear)
}
