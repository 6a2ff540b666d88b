package builtin

import (
	"fmt"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/scriptsrc"
	"github.com/mako10k/ishell/internal/vfs"
)

// Source applies only the alias and export declarations from a file,
// tallying and reporting ignored command lines (spec 4.H, 4.I).
func Source(ctx *Context, args []string) result.CommandResult {
	_, operands := splitArgs(args)
	if len(operands) == 0 {
		return result.Fail(result.ExitGeneralFailure, "source: missing operand")
	}

	path := ctx.FS.ResolvePath(operands[0])
	node := ctx.FS.GetNode(path)
	if node == nil {
		return result.Fail(result.ExitGeneralFailure, "source: "+operands[0]+": "+vfs.ErrNotFound.Error())
	}
	if node.Kind != vfs.KindFile {
		return result.Fail(result.ExitGeneralFailure, "source: "+operands[0]+": "+vfs.ErrIsADirectory.Error())
	}

	applied := ApplyScript(ctx, node.Content)
	return result.Ok(fmt.Sprintf("%d aliases, %d exports applied, %d lines ignored\n", applied.AliasCount, applied.ExportCount, applied.IgnoredCount))
}

// ApplyScript parses content with the shell-script sub-parser and applies
// every alias and export declaration found to ctx. In the returned Result,
// AliasCount and ExportCount count only the declarations actually applied.
// It is also used for automatic ~/.bashrc loading at session init.
func ApplyScript(ctx *Context, content string) scriptsrc.Result {
	parsed := scriptsrc.Parse(content)
	applied := parsed
	applied.AliasCount, applied.ExportCount = 0, 0
	for _, line := range parsed.Lines {
		if line.Err != nil {
			continue
		}
		switch line.Kind {
		case scriptsrc.LineAlias:
			if ctx.Aliases.Set(line.Name, line.Value) == nil {
				applied.AliasCount++
			}
		case scriptsrc.LineExport:
			ctx.Env.Set(line.Name, line.Value)
			applied.ExportCount++
		}
	}
	return applied
}
