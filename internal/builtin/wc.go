package builtin

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// Wc counts lines, words, and characters. "-l"/"-w"/"-c" select a subset;
// default prints all three; multi-file input gets a "total" summary line.
// When invoked with "<" redirection and no operand, the redirected
// filename becomes the sole positional argument (spec 4.G, 4.H). Grounded
// on internal/tools/builtin/commands.go's Wc.
func Wc(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)
	showLines, showWords, showChars := true, true, true
	if flags['l'] || flags['w'] || flags['c'] {
		showLines, showWords, showChars = flags['l'], flags['w'], flags['c']
	}

	if len(operands) == 0 {
		l, w, c := countText(ctx.Stdin)
		return result.Ok(formatCounts(l, w, c, showLines, showWords, showChars) + "\n")
	}

	var totalL, totalW, totalC int
	var out strings.Builder
	for _, operand := range operands {
		path := ctx.FS.ResolvePath(operand)
		node := ctx.FS.GetNode(path)
		if node == nil {
			return result.Fail(result.ExitGeneralFailure, "wc: "+operand+": "+vfs.ErrNotFound.Error())
		}
		if node.Kind != vfs.KindFile {
			return result.Fail(result.ExitGeneralFailure, "wc: "+operand+": "+vfs.ErrIsADirectory.Error())
		}
		l, w, c := countText(node.Content)
		totalL, totalW, totalC = totalL+l, totalW+w, totalC+c
		fmt.Fprintf(&out, "%s %s\n", formatCounts(l, w, c, showLines, showWords, showChars), operand)
	}
	if len(operands) > 1 {
		fmt.Fprintf(&out, "%s total\n", formatCounts(totalL, totalW, totalC, showLines, showWords, showChars))
	}
	return result.Ok(out.String())
}

func countText(s string) (lines, words, chars int) {
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		lines++
		chars += len([]rune(scanner.Text())) + 1
		words += len(strings.Fields(scanner.Text()))
	}
	return lines, words, chars
}

func formatCounts(l, w, c int, showL, showW, showC bool) string {
	var parts []string
	if showL {
		parts = append(parts, fmt.Sprintf("%d", l))
	}
	if showW {
		parts = append(parts, fmt.Sprintf("%d", w))
	}
	if showC {
		parts = append(parts, fmt.Sprintf("%d", c))
	}
	return strings.Join(parts, " ")
}
