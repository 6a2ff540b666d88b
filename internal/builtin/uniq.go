package builtin

import (
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// Uniq removes consecutive duplicate lines only (spec 4.H). Grounded on
// internal/tools/builtin/commands.go's uniq-equivalent dedup logic (the
// teacher's Sort command's "-u" path); this builtin implements the
// distinct, order-preserving consecutive-only semantics the spec calls
// for rather than a whole-input unique set.
func Uniq(ctx *Context, args []string) result.CommandResult {
	_, operands := splitArgs(args)

	text, failure := readOperandsOrStdin(ctx, "uniq", operands)
	if failure != nil {
		return *failure
	}

	text = strings.TrimSuffix(text, "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	var out []string
	for i, line := range lines {
		if i == 0 || line != lines[i-1] {
			out = append(out, line)
		}
	}
	return result.Ok(strings.Join(out, "\n"))
}
