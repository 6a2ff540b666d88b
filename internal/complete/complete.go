// Package complete implements the autocompletion oracle (component L):
// given a partial input line and the session's state, it returns candidate
// completions and their common prefix.
//
// Grounded on the teacher's createCompleter() (internal/llmsh/shell.go),
// which builds a readline.PrefixCompleter from a hardcoded command slice.
// This module generalizes that static list into a live lookup against the
// builtin table and alias table for the command position, and adds
// filesystem-aware completion for argument position (command-position vs
// argument-position classification, and per-command directory/file
// restriction, per spec 4.L) -- something the teacher's stream-only shell
// never needed since it has no virtual filesystem to complete paths
// against.
package complete

import (
	"sort"
	"strings"

	"github.com/mako10k/ishell/internal/vfs"
)

// Result is {completions, common_prefix} (spec 4.L).
type Result struct {
	Completions []string
	CommonPrefix string
}

// dirOnlyCommands restrict argument completion to directories (spec 4.L).
var dirOnlyCommands = map[string]bool{
	"cd":    true,
	"mkdir": true,
	"rmdir": true,
}

// Complete returns completions for the text typed so far (line, up to the
// cursor). builtinNames and aliasNames supply the command-position
// vocabulary; fs supplies filesystem children for argument-position
// completion. Failure model is "none": an empty Result is returned when
// nothing matches or the prefix's directory cannot be listed; a prefix that
// matches several names returns all of them.
func Complete(line string, fs *vfs.State, builtinNames, aliasNames []string) Result {
	tokens := strings.Fields(line)
	trailingSpace := line == "" || strings.HasSuffix(line, " ")

	if isCommandPosition(tokens, trailingSpace) {
		prefix := ""
		if !trailingSpace && len(tokens) == 1 {
			prefix = tokens[0]
		}
		return completeCommand(prefix, builtinNames, aliasNames)
	}

	prefix := ""
	var preceding string
	if trailingSpace {
		if len(tokens) > 0 {
			preceding = tokens[len(tokens)-1]
		}
	} else {
		prefix = tokens[len(tokens)-1]
		if len(tokens) > 1 {
			preceding = tokens[len(tokens)-2]
		}
	}

	command := ""
	if len(tokens) > 0 {
		command = tokens[0]
	}

	return completeFilesystem(prefix, restrictionFor(command, preceding), fs)
}

func isCommandPosition(tokens []string, trailingSpace bool) bool {
	if trailingSpace {
		return len(tokens) == 0
	}
	return len(tokens) == 1
}

type restriction int

const (
	restrictAny restriction = iota
	restrictDirs
	restrictFiles
)

func restrictionFor(command, preceding string) restriction {
	switch preceding {
	case "<":
		return restrictFiles
	case ">", ">>":
		return restrictAny
	}
	if dirOnlyCommands[command] {
		return restrictDirs
	}
	return restrictAny
}

func completeCommand(prefix string, builtinNames, aliasNames []string) Result {
	var candidates []string
	for _, name := range builtinNames {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, name)
		}
	}
	for _, name := range aliasNames {
		if strings.HasPrefix(name, prefix) {
			candidates = append(candidates, name)
		}
	}
	return buildResult(candidates)
}

func completeFilesystem(prefix string, restrict restriction, fs *vfs.State) Result {
	dirPart, namePart := splitPrefix(prefix)

	var dirPath []string
	if dirPart == "" {
		dirPath = fs.CurrentPath
	} else {
		dirPath = fs.ResolvePath(dirPart)
	}

	includeHidden := strings.HasPrefix(namePart, ".")
	entries, err := fs.List(dirPath, includeHidden)
	if err != nil {
		return Result{}
	}

	var candidates []string
	for _, entry := range entries {
		if restrict == restrictDirs && entry.Kind != vfs.KindDirectory {
			continue
		}
		if restrict == restrictFiles && entry.Kind != vfs.KindFile {
			continue
		}
		if !strings.HasPrefix(entry.Name, namePart) {
			continue
		}
		name := entry.Name
		if entry.Kind == vfs.KindDirectory {
			name += "/"
		}
		candidates = append(candidates, dirPart+name)
	}

	return buildResult(candidates)
}

// splitPrefix splits prefix at its last "/" into the directory portion
// (including the trailing slash, empty if none) and the partial name
// being completed.
func splitPrefix(prefix string) (dirPart, namePart string) {
	idx := strings.LastIndex(prefix, "/")
	if idx < 0 {
		return "", prefix
	}
	return prefix[:idx+1], prefix[idx+1:]
}

func buildResult(candidates []string) Result {
	if len(candidates) == 0 {
		return Result{}
	}
	sort.Strings(candidates)
	return Result{Completions: candidates, CommonPrefix: commonPrefix(candidates)}
}

func commonPrefix(candidates []string) string {
	prefix := candidates[0]
	for _, c := range candidates[1:] {
		for !strings.HasPrefix(c, prefix) {
			prefix = prefix[:len(prefix)-1]
			if prefix == "" {
				return ""
			}
		}
	}
	return prefix
}
