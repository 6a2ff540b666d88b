package builtin

import (
	"strconv"
	"strings"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Head outputs the first n lines (default 10); "-n N" overrides (spec
// 4.H). Grounded on internal/tools/builtin/commands.go's Head.
func Head(ctx *Context, args []string) result.CommandResult {
	n, operands, err := parseLineCount(args, 10)
	if err != nil {
		return result.Fail(result.ExitUsageError, "head: "+err.Error())
	}

	text, failure := readOperandsOrStdin(ctx, "head", operands)
	if failure != nil {
		return *failure
	}

	lines := strings.Split(text, "\n")
	if n < len(lines) {
		lines = lines[:n]
	}
	return result.Ok(strings.Join(lines, "\n"))
}

// parseLineCount extracts "-n N" or legacy "-N" from args, returning the
// count and the remaining non-flag operands.
func parseLineCount(args []string, def int) (int, []string, error) {
	n := def
	var operands []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "-n":
			if i+1 >= len(args) {
				return 0, nil, errMissingCountOperand
			}
			v, err := strconv.Atoi(args[i+1])
			if err != nil {
				return 0, nil, errInvalidCount
			}
			n = v
			i++
		case strings.HasPrefix(a, "-n"):
			v, err := strconv.Atoi(strings.TrimPrefix(a, "-n"))
			if err != nil {
				return 0, nil, errInvalidCount
			}
			n = v
		case len(a) > 1 && a[0] == '-':
			if v, err := strconv.Atoi(a[1:]); err == nil {
				n = v
				continue
			}
			operands = append(operands, a)
		default:
			operands = append(operands, a)
		}
	}
	return n, operands, nil
}

func readOperandsOrStdin(ctx *Context, cmd string, operands []string) (string, *result.CommandResult) {
	if len(operands) == 0 {
		return ctx.Stdin, nil
	}
	var parts []string
	for _, operand := range operands {
		path := ctx.FS.ResolvePath(operand)
		node := ctx.FS.GetNode(path)
		if node == nil {
			r := result.Fail(result.ExitGeneralFailure, cmd+": "+operand+": "+vfs.ErrNotFound.Error())
			return "", &r
		}
		if node.Kind != vfs.KindFile {
			r := result.Fail(result.ExitGeneralFailure, cmd+": "+operand+": "+vfs.ErrIsADirectory.Error())
			return "", &r
		}
		parts = append(parts, node.Content)
	}
	return strings.Join(parts, "\n"), nil
}
