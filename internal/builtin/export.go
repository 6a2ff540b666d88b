package builtin

import (
	"sort"
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// Export assigns an environment variable (`export NAME=value`), or with no
// arguments lists every assigned variable (spec 4.H, 4.D).
func Export(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		return Env(ctx, args)
	}
	joined := strings.Join(args, " ")
	eq := strings.Index(joined, "=")
	if eq < 0 {
		return result.Fail(result.ExitGeneralFailure, "export: usage: export NAME=value")
	}
	name := joined[:eq]
	value := unquote(joined[eq+1:])
	ctx.Env.Set(name, value)
	return result.Ok("")
}

// Env lists every assigned environment variable, sorted by name (spec
// 4.H).
func Env(ctx *Context, args []string) result.CommandResult {
	all := ctx.Env.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	for _, name := range names {
		out.WriteString(name + "=" + all[name] + "\n")
	}
	return result.Ok(out.String())
}

// Unset removes an environment variable (spec 4.H, 4.D).
func Unset(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		return result.Fail(result.ExitGeneralFailure, "unset: missing operand")
	}
	for _, name := range args {
		ctx.Env.Unset(name)
	}
	return result.Ok("")
}
