package builtin

import (
	"sort"
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// commandSummaries is a short one-line description per builtin, grounded on
// the teacher's HelpSystem/CommandHelp table shape
// (internal/llmsh/help.go) generalized from LLM tool-call commands to this
// spec's filesystem builtins.
var commandSummaries = map[string]string{
	"cd":           "change the current directory",
	"ls":           "list directory contents",
	"pwd":          "print the current directory",
	"cat":          "concatenate and print files",
	"touch":        "create a file or update its timestamp",
	"mkdir":        "create a directory",
	"rm":           "remove files or directories",
	"rmdir":        "remove an empty directory",
	"cp":           "copy files or directories",
	"mv":           "move or rename files or directories",
	"echo":         "print arguments",
	"wc":           "count lines, words, characters",
	"grep":         "search text using a pattern",
	"head":         "print the first lines of input",
	"tail":         "print the last lines of input",
	"sort":         "sort lines of text",
	"uniq":         "remove consecutive duplicate lines",
	"alias":        "define or list command aliases",
	"unalias":      "remove a command alias",
	"export":       "assign an environment variable",
	"env":          "list environment variables",
	"unset":        "remove an environment variable",
	"source":       "apply aliases and exports from a file",
	"history":      "show the command history",
	"date":         "print the current date and time",
	"clear":        "clear the visible output",
	"help":         "list available commands",
	"man":          "show detailed help for a command",
	"reset-fs":     "reset the filesystem to its defaults",
	"storage-info": "report filesystem storage usage",
	"vi":           "open the modal text editor",
	"stat":         "show detailed file or directory metadata",
	"tree":         "render a directory as a tree",
	"which":        "show whether a name is an alias, builtin, or unknown",
	"type":         "classify a name as alias, builtin, or not found",
}

// Help lists every builtin command with a one-line summary (spec 4.H).
func Help(ctx *Context, args []string) result.CommandResult {
	names := make([]string, 0, len(commandSummaries))
	for name := range commandSummaries {
		names = append(names, name)
	}
	sort.Strings(names)

	var out strings.Builder
	for _, name := range names {
		out.WriteString(name)
		out.WriteString(" - ")
		out.WriteString(commandSummaries[name])
		out.WriteString("\n")
	}
	return result.Ok(out.String())
}
