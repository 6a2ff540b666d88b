package builtin

import (
	"fmt"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Ls lists a directory. "-a" includes dotfiles, "-l" produces a structured
// segment list (spec 4.H).
func Ls(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)

	target := ctx.FS.CurrentPath
	if len(operands) > 0 {
		target = ctx.FS.ResolvePath(operands[0])
	}

	entries, err := ctx.FS.List(target, flags['a'])
	if err != nil {
		return result.Fail(result.ExitGeneralFailure, "ls: "+err.Error())
	}

	if flags['l'] {
		var segs []result.Segment
		for _, e := range entries {
			typ := result.SegTypeFile
			if e.Kind == vfs.KindDirectory {
				typ = result.SegTypeDirectory
			}
			line := fmt.Sprintf("%8d  %s  %s\n", e.Size, e.Mtime.Format("Jan 02 15:04"), e.Name)
			segs = append(segs, result.Segment{Text: line, Type: typ})
		}
		return result.OkSegments(segs)
	}

	var segs []result.Segment
	for _, e := range entries {
		typ := result.SegTypeFile
		if e.Kind == vfs.KindDirectory {
			typ = result.SegTypeDirectory
		}
		segs = append(segs, result.Segment{Text: e.Name + "  ", Type: typ})
	}
	return result.OkSegments(segs)
}
