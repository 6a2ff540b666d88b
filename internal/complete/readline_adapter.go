package complete

import (
	"strings"

	"github.com/chzyer/readline"

	"github.com/mako10k/ishell/internal/alias"
	"github.com/mako10k/ishell/internal/builtin"
	"github.com/mako10k/ishell/internal/vfs"
)

// ReadlineAdapter wires the oracle into chzyer/readline's AutoCompleter
// interface for cmd/ishell's interactive mode, replacing the teacher's
// static readline.NewPrefixCompleter(items...) built from a hardcoded
// command slice (internal/llmsh/shell.go's createCompleter).
type ReadlineAdapter struct {
	FS      *vfs.State
	Aliases *alias.Table
}

// NewReadlineAdapter builds an adapter reading live completions from fs
// and aliases.
func NewReadlineAdapter(fs *vfs.State, aliases *alias.Table) *ReadlineAdapter {
	return &ReadlineAdapter{FS: fs, Aliases: aliases}
}

// Do implements readline.AutoCompleter: given the full line and the
// cursor offset, it returns the suffixes that complete the word under the
// cursor and how many runes of that word they share.
func (a *ReadlineAdapter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	res := Complete(text, a.FS, builtin.Names(), a.Aliases.List())
	if len(res.Completions) == 0 {
		return nil, 0
	}

	_, namePart := splitPrefix(lastToken(text))
	suffixes := make([][]rune, 0, len(res.Completions))
	for _, c := range res.Completions {
		_, candidateName := splitPrefix(c)
		if !strings.HasPrefix(candidateName, namePart) {
			continue
		}
		suffixes = append(suffixes, []rune(candidateName[len(namePart):]))
	}
	return suffixes, len([]rune(namePart))
}

func lastToken(text string) string {
	if text == "" || strings.HasSuffix(text, " ") {
		return ""
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

var _ readline.AutoCompleter = (*ReadlineAdapter)(nil)
