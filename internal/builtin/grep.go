package builtin

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/vfs"
)

// maxGrepPatternLength bounds pattern length to prevent catastrophic
// regexp backtracking (spec 4.H).
const maxGrepPatternLength = 100

// Grep searches stdin or file operands for pattern. "-i" ignores case,
// "-v" inverts the match, "-n" prefixes line numbers, "-c" prints a match
// count. Exit 0 on match, 1 on no match, 2 on usage/pattern error.
// Grounded on internal/tools/builtin/commands.go's Grep.
func Grep(ctx *Context, args []string) result.CommandResult {
	flags, operands := splitArgs(args)
	if len(operands) == 0 {
		return result.Fail(result.ExitUsageError, "grep: missing pattern")
	}

	pattern := operands[0]
	if len(pattern) > maxGrepPatternLength {
		return result.Fail(result.ExitUsageError, "grep: pattern too long")
	}

	expr := pattern
	if flags['i'] {
		expr = "(?i)" + expr
	}
	regex, err := regexp.Compile(expr)
	if err != nil {
		return result.Fail(result.ExitUsageError, "grep: invalid pattern: "+err.Error())
	}

	var text string
	fileOperands := operands[1:]
	if len(fileOperands) == 0 {
		text = ctx.Stdin
	} else {
		var parts []string
		for _, operand := range fileOperands {
			path := ctx.FS.ResolvePath(operand)
			node := ctx.FS.GetNode(path)
			if node == nil {
				return result.Fail(result.ExitGeneralFailure, "grep: "+operand+": "+vfs.ErrNotFound.Error())
			}
			parts = append(parts, node.Content)
		}
		text = strings.Join(parts, "\n")
	}

	var out strings.Builder
	matchCount := 0
	lineNum := 1
	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := scanner.Text()
		matched := regex.MatchString(line)
		if matched != flags['v'] {
			matchCount++
			if !flags['c'] {
				if flags['n'] {
					fmt.Fprintf(&out, "%d:%s\n", lineNum, line)
				} else {
					fmt.Fprintln(&out, line)
				}
			}
		}
		lineNum++
	}

	if flags['c'] {
		fmt.Fprintf(&out, "%d\n", matchCount)
	}

	if matchCount == 0 {
		return result.CommandResult{Success: true, Output: result.Plain(out.String()), ExitCode: result.ExitGeneralFailure}
	}
	return result.Ok(out.String())
}
