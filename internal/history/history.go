// Package history implements the append-only command log kept inside the
// virtual filesystem at `~/.history` (component K).
//
// Grounded on the teacher's interactive shell.go, which persists readline
// history to a plain file via manual read/append logic
// (interactiveWithReadline's history-file handling); this package moves
// that persistence target from a real file to the virtual filesystem and
// adds the 1000-entry cap and empty-command rejection the spec requires.
package history

import (
	"strings"

	"github.com/mako10k/ishell/internal/vfs"
)

// MaxEntries bounds retained history; oldest entries are evicted first
// (spec 4.K).
const MaxEntries = 1000

const filename = ".history"

func path(fs *vfs.State) []string {
	return append(append([]string{}, fs.Home...), filename)
}

// Load reads every recorded command from ~/.history, oldest first.
func Load(fs *vfs.State) ([]string, error) {
	node := fs.GetNode(path(fs))
	if node == nil {
		return nil, nil
	}
	if node.Content == "" {
		return nil, nil
	}
	lines := strings.Split(strings.TrimRight(node.Content, "\n"), "\n")
	return lines, nil
}

// Append records command to ~/.history unless it is empty, evicting the
// oldest entry if the log would exceed MaxEntries (spec 4.K, 8).
func Append(fs *vfs.State, command string) error {
	if strings.TrimSpace(command) == "" {
		return nil
	}

	entries, err := Load(fs)
	if err != nil {
		return err
	}
	entries = append(entries, command)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	content := strings.Join(entries, "\n") + "\n"
	return fs.WriteFile(path(fs), content)
}
