// Package vfs implements the in-memory hierarchical filesystem (component A
// of the spec): node model, path resolution, CRUD primitives, and
// size/count invariants.
//
// The teacher's internal/app/vfs.go models a flat, FD-indexed collection of
// pipes (VirtualFile/VirtualFS) built for streaming bytes between LLM tool
// calls; it has no directory hierarchy at all. This package keeps the
// teacher's implementation STYLE — a small tagged struct, timestamps
// stamped on every mutation (State itself holds no lock) — but rebuilds the data
// model from scratch as a proper tree, since the teacher's flat FD map
// cannot represent nested directories, path resolution, or per-directory
// quotas.
package vfs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Default quota values (spec §3 FSState invariants). A session's quotas are
// configurable (SPEC_FULL.md component A note) so tests can use small caps.
const (
	DefaultPerFileCap = 5 * 1024 * 1024
	DefaultPerDirCap  = 1000
	DefaultTotalCap   = 50 * 1024 * 1024
	MaxNameLength     = 255
)

var (
	ErrNotFound        = errors.New("no such file or directory")
	ErrNotADirectory   = errors.New("not a directory")
	ErrIsADirectory    = errors.New("is a directory")
	ErrAlreadyExists   = errors.New("file exists")
	ErrInvalidName     = errors.New("invalid name")
	ErrQuotaExceeded   = errors.New("quota exceeded")
	ErrDirectoryNotEmpty = errors.New("directory not empty")
)

// NodeKind distinguishes the two FSNode variants.
type NodeKind int

const (
	KindFile NodeKind = iota
	KindDirectory
)

// Node is a tagged File/Directory variant (spec §3 FSNode).
type Node struct {
	Name        string
	Kind        NodeKind
	Permissions string
	CreatedAt   time.Time
	ModifiedAt  time.Time
	Size        int64

	Content  string           // valid when Kind == KindFile
	Children map[string]*Node // valid when Kind == KindDirectory
}

func newFile(name, content string, now time.Time) *Node {
	return &Node{
		Name:        name,
		Kind:        KindFile,
		Permissions: "rw-r--r--",
		CreatedAt:   now,
		ModifiedAt:  now,
		Size:        int64(len(content)),
		Content:     content,
	}
}

func newDirectory(name string, now time.Time) *Node {
	return &Node{
		Name:        name,
		Kind:        KindDirectory,
		Permissions: "rwxr-xr-x",
		CreatedAt:   now,
		ModifiedAt:  now,
		Children:    make(map[string]*Node),
	}
}

// State owns the tree root and the session's current working path.
type State struct {
	Root        *Node
	CurrentPath []string // always resolves to an existing directory
	Home        []string

	PerFileCap int64
	PerDirCap  int
	TotalCap   int64

	Now func() time.Time // overridable for deterministic tests
}

// NewState creates a fresh filesystem with an empty root and the default
// profile home at /home/user.
func NewState() *State {
	now := time.Now
	root := newDirectory("/", now())
	home := []string{"home", "user"}

	s := &State{
		Root:        root,
		CurrentPath: nil,
		Home:        home,
		PerFileCap:  DefaultPerFileCap,
		PerDirCap:   DefaultPerDirCap,
		TotalCap:    DefaultTotalCap,
		Now:         now,
	}

	// Pre-create the home directory so a fresh session starts somewhere
	// sensible; ignore the error, the inputs are fixed and always valid.
	_ = s.mkdirAll(home)
	s.CurrentPath = home
	return s
}

func (s *State) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *State) mkdirAll(path []string) error {
	cur := s.Root
	for _, name := range path {
		child, ok := cur.Children[name]
		if !ok {
			child = newDirectory(name, s.now())
			cur.Children[name] = child
		}
		if child.Kind != KindDirectory {
			return ErrNotADirectory
		}
		cur = child
	}
	return nil
}

// ResolvePath turns raw (absolute, relative, or "~"-prefixed) into an
// absolute ordered sequence of path segments, collapsing "." and "..",
// and dropping empty segments. It never panics and never fails: a path
// that escapes the root via excess ".." simply clamps at the root, matching
// spec 4.A's "must not panic on any string input."
func (s *State) ResolvePath(raw string) []string {
	var base []string
	switch {
	case strings.HasPrefix(raw, "~"):
		base = append(append([]string{}, s.Home...))
		raw = strings.TrimPrefix(raw, "~")
		raw = strings.TrimPrefix(raw, "/")
	case strings.HasPrefix(raw, "/"):
		base = nil
	default:
		base = append([]string{}, s.CurrentPath...)
	}

	segments := append(base, strings.Split(raw, "/")...)

	var resolved []string
	for _, seg := range segments {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, seg)
		}
	}
	return resolved
}

// GetNode returns the node at path, or nil if it does not exist.
func (s *State) GetNode(path []string) *Node {
	cur := s.Root
	for _, name := range path {
		if cur.Kind != KindDirectory {
			return nil
		}
		next, ok := cur.Children[name]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// getDirectory returns the directory node at path, or an error.
func (s *State) getDirectory(path []string) (*Node, error) {
	node := s.GetNode(path)
	if node == nil {
		return nil, ErrNotFound
	}
	if node.Kind != KindDirectory {
		return nil, ErrNotADirectory
	}
	return node, nil
}

func validateName(name string) error {
	if name == "" || len(name) > MaxNameLength || strings.ContainsAny(name, "\\\x00") {
		return ErrInvalidName
	}
	return nil
}

// totalSize recursively sums byte content under node.
func totalSize(node *Node) int64 {
	if node.Kind == KindFile {
		return int64(len(node.Content))
	}
	var sum int64
	for _, c := range node.Children {
		sum += totalSize(c)
	}
	return sum
}

// TotalSize returns the aggregate byte size of the whole tree.
func (s *State) TotalSize() int64 {
	return totalSize(s.Root)
}

// CreateFile creates a file named `name` under parentPath with content,
// enforcing the name, per-directory count, per-file size, and whole-tree
// size invariants (spec 4.A).
func (s *State) CreateFile(parentPath []string, name, content string) (*Node, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	parent, err := s.getDirectory(parentPath)
	if err != nil {
		return nil, err
	}
	if _, exists := parent.Children[name]; exists {
		return nil, ErrAlreadyExists
	}
	if len(parent.Children) >= s.PerDirCap {
		return nil, fmt.Errorf("%w: directory entry limit", ErrQuotaExceeded)
	}
	if int64(len(content)) > s.PerFileCap {
		return nil, fmt.Errorf("%w: per-file size limit", ErrQuotaExceeded)
	}
	if s.TotalSize()+int64(len(content)) > s.TotalCap {
		return nil, fmt.Errorf("%w: total filesystem size limit", ErrQuotaExceeded)
	}

	now := s.now()
	file := newFile(name, content, now)
	parent.Children[name] = file
	parent.ModifiedAt = now
	return file, nil
}

// WriteFile overwrites an existing file's content (used by `>`/`>>`
// redirection and by the editor's `:w`), enforcing the same size caps as
// CreateFile but not the directory-count cap (the entry already exists). A
// missing file is created through CreateFile, with all of its caps.
func (s *State) WriteFile(path []string, content string) error {
	if len(path) == 0 {
		return ErrInvalidName
	}
	parentPath := path[:len(path)-1]
	name := path[len(path)-1]

	parent, err := s.getDirectory(parentPath)
	if err != nil {
		return err
	}
	node, ok := parent.Children[name]
	if !ok {
		_, err := s.CreateFile(parentPath, name, content)
		return err
	}
	if node.Kind != KindFile {
		return ErrIsADirectory
	}

	delta := int64(len(content)) - int64(len(node.Content))
	if int64(len(content)) > s.PerFileCap {
		return fmt.Errorf("%w: per-file size limit", ErrQuotaExceeded)
	}
	if s.TotalSize()+delta > s.TotalCap {
		return fmt.Errorf("%w: total filesystem size limit", ErrQuotaExceeded)
	}

	now := s.now()
	node.Content = content
	node.Size = int64(len(content))
	node.ModifiedAt = now
	parent.ModifiedAt = now
	return nil
}

// AppendFile appends content to an existing file or creates it if absent.
func (s *State) AppendFile(path []string, content string) error {
	node := s.GetNode(path)
	if node == nil {
		_, err := s.CreateFile(path[:len(path)-1], path[len(path)-1], content)
		return err
	}
	if node.Kind != KindFile {
		return ErrIsADirectory
	}
	return s.WriteFile(path, node.Content+content)
}

// CreateDirectory creates a directory named `name` under parentPath.
func (s *State) CreateDirectory(parentPath []string, name string) (*Node, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	parent, err := s.getDirectory(parentPath)
	if err != nil {
		return nil, err
	}
	if _, exists := parent.Children[name]; exists {
		return nil, ErrAlreadyExists
	}
	if len(parent.Children) >= s.PerDirCap {
		return nil, fmt.Errorf("%w: directory entry limit", ErrQuotaExceeded)
	}

	now := s.now()
	dir := newDirectory(name, now)
	parent.Children[name] = dir
	parent.ModifiedAt = now
	return dir, nil
}

// DeleteNode removes the node at path. Deleting a non-empty directory
// requires recursive=true (spec 4.A: "delete_node on a non-empty directory
// requires the caller to recurse").
func (s *State) DeleteNode(path []string, recursive bool) error {
	if len(path) == 0 {
		return ErrInvalidName // refuse to delete root
	}
	parentPath := path[:len(path)-1]
	name := path[len(path)-1]

	parent, err := s.getDirectory(parentPath)
	if err != nil {
		return err
	}
	node, ok := parent.Children[name]
	if !ok {
		return ErrNotFound
	}
	if node.Kind == KindDirectory && len(node.Children) > 0 && !recursive {
		return ErrDirectoryNotEmpty
	}

	delete(parent.Children, name)
	parent.ModifiedAt = s.now()
	return nil
}

// Cd changes CurrentPath to path if it resolves to an existing directory,
// leaving CurrentPath untouched otherwise (spec 3: "cd failures leave the
// prior path intact").
func (s *State) Cd(path []string) error {
	if _, err := s.getDirectory(path); err != nil {
		return err
	}
	s.CurrentPath = path
	return nil
}

// Entry is one row of a directory listing.
type Entry struct {
	Name  string
	Kind  NodeKind
	Size  int64
	Mtime time.Time
}

// List returns the children of the directory at path, sorted by the stable
// comparator from spec 4.A: dotfiles after non-dotfiles, then
// case-insensitive lexicographic. includeHidden corresponds to `-a`.
func (s *State) List(path []string, includeHidden bool) ([]Entry, error) {
	dir, err := s.getDirectory(path)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dir.Children))
	for name, child := range dir.Children {
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		entries = append(entries, Entry{Name: name, Kind: child.Kind, Size: child.Size, Mtime: child.ModifiedAt})
	}

	sort.Slice(entries, func(i, j int) bool {
		iDot := strings.HasPrefix(entries[i].Name, ".")
		jDot := strings.HasPrefix(entries[j].Name, ".")
		if iDot != jDot {
			return !iDot // non-dotfiles first
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries, nil
}

// Stat exposes size/mtime/kind for a single path (supplemented `stat`
// builtin, SPEC_FULL.md component A).
func (s *State) Stat(path []string) (*Node, error) {
	node := s.GetNode(path)
	if node == nil {
		return nil, ErrNotFound
	}
	return node, nil
}

// JoinPath renders a resolved path as a "/"-prefixed string.
func JoinPath(path []string) string {
	if len(path) == 0 {
		return "/"
	}
	return "/" + strings.Join(path, "/")
}
