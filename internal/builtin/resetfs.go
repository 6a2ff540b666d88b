package builtin

import "github.com/mako10k/ishell/internal/result"

// ResetFS emits the RESET_FILESYSTEM control signal, optionally qualified
// with a mode (spec 4.H, 6).
func ResetFS(ctx *Context, args []string) result.CommandResult {
	mode := ""
	if len(args) > 0 {
		mode = args[0]
	}
	return result.Ok(result.ResetFilesystemSignal(mode))
}
