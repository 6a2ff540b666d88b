package builtin

import (
	"fmt"

	"github.com/mako10k/ishell/internal/result"
)

// StorageInfo reports the current aggregate size against the whole-tree
// cap (spec 4.H, 4.A quotas).
func StorageInfo(ctx *Context, args []string) result.CommandResult {
	used := ctx.FS.TotalSize()
	return result.Ok(fmt.Sprintf("%d / %d bytes used (%.1f%%)\n", used, ctx.FS.TotalCap, 100*float64(used)/float64(ctx.FS.TotalCap)))
}
