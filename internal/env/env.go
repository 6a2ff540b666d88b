// Package env implements the shell's variable table and substitution
// (component D of the spec).
//
// The teacher has no equivalent of shell variable expansion (llmsh's
// commands receive already-tokenized args with no $VAR handling at all), so
// this package is built fresh, following the teacher's general style of a
// small mutex-free struct wrapping a map (see internal/app/vfs.go's
// VFSEntry-map pattern, here simplified since env access is single-threaded
// per shell session).
package env

import "strings"

// Reserved variable names with session-derived values rather than
// user-assigned ones.
const (
	PWD   = "PWD"
	HOME  = "HOME"
	SHELL = "SHELL"
	Exit  = "?"
)

// Table holds the shell's environment variables for one session.
type Table struct {
	vars map[string]string
}

// NewTable creates an empty variable table.
func NewTable() *Table {
	return &Table{vars: make(map[string]string)}
}

// Get returns the value of name and whether it is set. $? and other
// reserved names are read the same way as user-assigned variables; the
// caller (internal/exec) is responsible for keeping PWD/HOME/SHELL/$? in
// sync with session state on every command.
func (t *Table) Get(name string) (string, bool) {
	v, ok := t.vars[name]
	return v, ok
}

// Set assigns name to value, unsetting any previous value.
func (t *Table) Set(name, value string) {
	t.vars[name] = value
}

// Unset removes name from the table. Unsetting a reserved name is allowed;
// it simply reads as empty until the session resets it.
func (t *Table) Unset(name string) {
	delete(t.vars, name)
}

// All returns a snapshot of every assigned variable, for the `env` builtin.
func (t *Table) All() map[string]string {
	out := make(map[string]string, len(t.vars))
	for k, v := range t.vars {
		out[k] = v
	}
	return out
}

// Expand substitutes $NAME and ${NAME} references in s with their values
// from the table. An unset variable expands to the empty string. This is
// hand-rolled rather than built on os.Expand because os.Expand cannot
// distinguish "missing" from "set to empty" and has no notion of the
// reserved `$?` name, which os.Expand's mapping function would have to
// special-case anyway with no simpler result.
func (t *Table) Expand(s string) string {
	var out strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '$' || i == len(runes)-1 {
			out.WriteRune(c)
			continue
		}

		next := runes[i+1]
		if next == '{' {
			end := i + 2
			for end < len(runes) && runes[end] != '}' {
				end++
			}
			if end >= len(runes) {
				// Unterminated ${...}; emit literally.
				out.WriteRune(c)
				continue
			}
			name := string(runes[i+2 : end])
			if v, ok := t.Get(name); ok {
				out.WriteString(v)
			}
			i = end
			continue
		}

		if isNameStart(next) {
			end := i + 1
			for end < len(runes) && isNameChar(runes[end]) {
				end++
			}
			name := string(runes[i+1 : end])
			if v, ok := t.Get(name); ok {
				out.WriteString(v)
			}
			i = end - 1
			continue
		}

		if next == '?' {
			if v, ok := t.Get(Exit); ok {
				out.WriteString(v)
			}
			i++
			continue
		}

		// "$" followed by a character that can't start a variable name
		// (e.g. "$$", "$ ") is emitted literally.
		out.WriteRune(c)
	}
	return out.String()
}

func isNameStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isNameChar(r rune) bool {
	return isNameStart(r) || (r >= '0' && r <= '9')
}
