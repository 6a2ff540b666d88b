package builtin

import (
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Vi emits the OPEN_EDITOR control signal for the host to activate the
// modal editor; the file's existing content (or empty, for a new file) is
// embedded in the signal (spec 3 EditorState lifecycle, spec 4.H, 6).
func Vi(ctx *Context, args []string) result.CommandResult {
	if len(args) == 0 {
		return result.Fail(result.ExitGeneralFailure, "vi: missing filename")
	}

	path := ctx.FS.ResolvePath(args[0])
	content := ""
	if node := ctx.FS.GetNode(path); node != nil {
		if node.Kind != vfs.KindFile {
			return result.Fail(result.ExitGeneralFailure, "vi: "+args[0]+": "+vfs.ErrIsADirectory.Error())
		}
		content = node.Content
	}

	// The signal carries the fully resolved path rather than the raw
	// operand so the editor can write back correctly even if the working
	// directory changes while it is open (spec 3 EditorState, spec 6).
	return result.Ok(result.OpenEditorSignal(vfs.JoinPath(path), content))
}
