package builtin

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// Sort sorts lines of text. "-n" sorts numerically (non-numeric lines are
// treated as 0 and a stable sort retains their relative input order);
// "-r" reverses (spec 4.H). Grounded on
// internal/tools/builtin/commands.go's Sort.
func Sort(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)

	text, failure := readOperandsOrStdin(ctx, "sort", operands)
	if failure != nil {
		return *failure
	}

	text = strings.TrimSuffix(text, "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}

	if flags['n'] {
		sort.SliceStable(lines, func(i, j int) bool {
			a, errA := strconv.ParseFloat(strings.TrimSpace(lines[i]), 64)
			if errA != nil {
				a = 0
			}
			b, errB := strconv.ParseFloat(strings.TrimSpace(lines[j]), 64)
			if errB != nil {
				b = 0
			}
			if flags['r'] {
				return a > b
			}
			return a < b
		})
	} else {
		sort.SliceStable(lines, func(i, j int) bool {
			if flags['r'] {
				return lines[i] > lines[j]
			}
			return lines[i] < lines[j]
		})
	}

	return result.Ok(strings.Join(lines, "\n"))
}
