package builtin

import (
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// Alias defines an alias (`alias name=command`) or, with no arguments,
// lists every alias sorted by name (spec 4.H, 4.C).
func Alias(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		var out strings.Builder
		for _, name := range ctx.Aliases.List() {
			cmd, _ := ctx.Aliases.Get(name)
			out.WriteString("alias " + name + "='" + cmd + "'\n")
		}
		return result.Ok(out.String())
	}

	joined := strings.Join(args, " ")
	eq := strings.Index(joined, "=")
	if eq < 0 {
		return result.Fail(result.ExitGeneralFailure, "alias: usage: alias name=command")
	}
	name := joined[:eq]
	command := unquote(joined[eq+1:])

	if err := ctx.Aliases.Set(name, command); err != nil {
		return result.Fail(result.ExitGeneralFailure, "alias: "+err.Error())
	}
	return result.Ok("")
}

// Unalias removes one alias, or every alias with "-a" (spec 4.H, 4.C).
func Unalias(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)
	if flags['a'] {
		ctx.Aliases.UnsetAll()
		return result.Ok("")
	}
	if len(operands) == 0 {
		return result.Fail(result.ExitGeneralFailure, "unalias: missing operand")
	}
	for _, name := range operands {
		if !ctx.Aliases.Unset(name) {
			return result.Fail(result.ExitGeneralFailure, "unalias: "+name+": not found")
		}
	}
	return result.Ok("")
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
