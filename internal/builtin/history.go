package builtin

import (
	"strconv"

	"github.com/mako10k/ishell/internal/history"
	"github.com/mako10k/ishell/internal/result"
)

// History reads `.history` from the effective home (spec 4.H, 4.K).
func History(ctx *Context, args []string) result.CommandResult {
	entries, err := history.Load(ctx.FS)
	if err != nil {
		return result.Fail(result.ExitGeneralFailure, "history: "+err.Error())
	}

	var out string
	for i, entry := range entries {
		out += strconv.Itoa(i+1) + "  " + entry + "\n"
	}
	return result.Ok(out)
}
