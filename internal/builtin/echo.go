package builtin

import (
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// Echo joins its arguments with a single space and appends a trailing
// newline (spec 4.H). Variable substitution already happened on args
// before dispatch (spec 4.D is an executor-wide pass over every command's
// arguments, not an echo-specific behaviour).
func Echo(ctx *Context, args []string) result.CommandResult {
	return result.Ok(strings.Join(args, " ") + "\n")
}
