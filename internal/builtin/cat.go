package builtin

import (
	"fmt"
	"strings"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Cat concatenates files. "-n" numbers lines globally across files; a
// single ".md" file without "-n" renders as structured markdown segments;
// otherwise the concatenation is plain text (spec 4.H).
func Cat(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)

	if len(operands) == 0 {
		if ctx.HasStdin {
			return result.Ok(ctx.Stdin)
		}
		return result.Fail(result.ExitGeneralFailure, "cat: missing operand")
	}

	if !flags['n'] && len(operands) == 1 && strings.HasSuffix(operands[0], ".md") {
		path := ctx.FS.ResolvePath(operands[0])
		node := ctx.FS.GetNode(path)
		if node == nil {
			return result.Fail(result.ExitGeneralFailure, "cat: "+operands[0]+": "+vfs.ErrNotFound.Error())
		}
		if node.Kind != vfs.KindFile {
			return result.Fail(result.ExitGeneralFailure, "cat: "+operands[0]+": "+vfs.ErrIsADirectory.Error())
		}
		return result.OkSegments(renderMarkdown(node.Content))
	}

	var out strings.Builder
	lineNum := 1
	for _, operand := range operands {
		path := ctx.FS.ResolvePath(operand)
		node := ctx.FS.GetNode(path)
		if node == nil {
			return result.Fail(result.ExitGeneralFailure, "cat: "+operand+": "+vfs.ErrNotFound.Error())
		}
		if node.Kind != vfs.KindFile {
			return result.Fail(result.ExitGeneralFailure, "cat: "+operand+": "+vfs.ErrIsADirectory.Error())
		}

		if !flags['n'] {
			out.WriteString(node.Content)
			continue
		}
		for _, line := range strings.Split(node.Content, "\n") {
			fmt.Fprintf(&out, "%6d\t%s\n", lineNum, line)
			lineNum++
		}
	}
	return result.Ok(out.String())
}
