package shellapp

import (
	"github.com/mako10k/ishell/internal/ast"
	"github.com/mako10k/ishell/internal/parse"
)

func parseLine(line string) (ast.Node, error) {
	return parse.Parse(line)
}

// modifiesFilesystem reports whether node contains a command that mutates
// the filesystem directly, or carries output redirection -- either of
// which triggers an immediate save rather than a debounced one (spec 4.B:
// "filesystem-modifying commands ... and anything with output redirection
// trigger an immediate save").
func modifiesFilesystem(node ast.Node) bool {
	switch n := node.(type) {
	case *ast.ChainedCommand:
		for _, c := range n.Commands {
			if modifiesFilesystem(c) {
				return true
			}
		}
		return false
	case *ast.PipedCommand:
		for _, c := range n.Commands {
			if commandModifies(c) {
				return true
			}
		}
		return false
	case *ast.ParsedCommand:
		return commandModifies(n)
	default:
		return false
	}
}

func commandModifies(c *ast.ParsedCommand) bool {
	return filesystemModifying[c.Command] || c.RedirectOutput != nil
}
