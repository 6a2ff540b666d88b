package builtin

import (
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// Tail outputs the last n lines (default 10); "-n N" overrides (spec
// 4.H). Grounded on internal/tools/builtin/commands.go's Tail.
func Tail(ctx *Context, args []string) result.CommandResult {
	n, operands, err := parseLineCount(args, 10)
	if err != nil {
		return result.Fail(result.ExitUsageError, "tail: "+err.Error())
	}

	text, failure := readOperandsOrStdin(ctx, "tail", operands)
	if failure != nil {
		return *failure
	}

	lines := strings.Split(text, "\n")
	start := len(lines) - n
	if start < 0 {
		start = 0
	}
	return result.Ok(strings.Join(lines[start:], "\n"))
}
