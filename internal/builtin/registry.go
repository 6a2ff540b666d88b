package builtin

import "github.com/mako10k/ishell/internal/result"

// Func is a built-in command implementation. Grounded on the teacher's
// CommandFunc (internal/tools/builtin/commands.go), generalized from
// func(args []string, stdin io.Reader, stdout io.Writer) error to take a
// *Context so builtins can reach the virtual filesystem, aliases, and env.
type Func func(ctx *Context, args []string) result.CommandResult

// Registry maps command names to their implementations, mirroring the
// teacher's package-level Commands map.
var Registry = map[string]Func{
	"cd":           Cd,
	"ls":           Ls,
	"pwd":          Pwd,
	"cat":          Cat,
	"touch":        Touch,
	"mkdir":        Mkdir,
	"rm":           Rm,
	"rmdir":        Rmdir,
	"cp":           Cp,
	"mv":           Mv,
	"echo":         Echo,
	"wc":           Wc,
	"grep":         Grep,
	"head":         Head,
	"tail":         Tail,
	"sort":         Sort,
	"uniq":         Uniq,
	"alias":        Alias,
	"unalias":      Unalias,
	"export":       Export,
	"env":          Env,
	"unset":        Unset,
	"source":       Source,
	"history":      History,
	"date":         Date,
	"clear":        Clear,
	"help":         Help,
	"man":          Man,
	"reset-fs":     ResetFS,
	"storage-info": StorageInfo,
	"vi":           Vi,
	"stat":         Stat,
	"tree":         Tree,
	"which":        Which,
	"type":         Type,
}

// Lookup returns the handler for name, if any.
func Lookup(name string) (Func, bool) {
	fn, ok := Registry[name]
	return fn, ok
}

// Names returns every registered command name, for `which`/`type` and the
// autocompletion oracle.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}
