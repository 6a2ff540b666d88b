package vfs

import (
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// RenderTree renders the subtree rooted at path as a tree diagram, using
// the same dotfile-last ordering as List. Grounded on
// forensicanalysis-fscmd's `tree` subcommand, which walks an io/fs.FS into a
// treeprint.Tree; here the walk is over our own Node tree instead.
func (s *State) RenderTree(path []string, includeHidden bool) (string, error) {
	node := s.GetNode(path)
	if node == nil {
		return "", ErrNotFound
	}
	if node.Kind != KindDirectory {
		return "", ErrNotADirectory
	}

	root := treeprint.NewWithRoot(displayName(node, path))
	addChildren(root, node, includeHidden)
	return root.String(), nil
}

func displayName(node *Node, path []string) string {
	if len(path) == 0 {
		return "/"
	}
	return node.Name
}

func addChildren(branch treeprint.Tree, node *Node, includeHidden bool) {
	names := make([]string, 0, len(node.Children))
	for name := range node.Children {
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		iDot := strings.HasPrefix(names[i], ".")
		jDot := strings.HasPrefix(names[j], ".")
		if iDot != jDot {
			return !iDot
		}
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	for _, name := range names {
		child := node.Children[name]
		if child.Kind == KindDirectory {
			sub := branch.AddBranch(name)
			addChildren(sub, child, includeHidden)
		} else {
			branch.AddNode(name)
		}
	}
}
