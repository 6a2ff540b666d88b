// Package alias implements the alias table (component C): named macros with
// positional argument substitution, cycle detection, and content
// validation.
//
// The teacher has no macro-expansion concept, so this package is built
// fresh; it follows the teacher's general pattern of a mutex-free struct
// around a map (see internal/app/vfs.go's VFSEntry map) since, like env, the
// table is owned by a single session. Re-quoting of unconsumed trailing
// arguments uses github.com/kballard/go-shellquote, which the
// liudonghua123-reposurgeon example in the retrieval pack also uses for
// safely rejoining shell words.
package alias

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// MaxExpansionDepth bounds alias expansion; exceeding it is reported as a
// cycle (spec 4.C: "expansion depth is bounded (>= 16)").
const MaxExpansionDepth = 16

var nameRe = regexp.MustCompile(`^[A-Za-z_.][A-Za-z0-9_.]*$`)

// dangerousSubstrings are rejected outright in alias command text (spec
// 4.C).
var dangerousSubstrings = []string{
	"rm -rf /",
	"eval(",
	"$(",
	"`",
	">/dev/null 2>&1 && rm",
}

// ErrCycle is returned by Expand when expansion would exceed
// MaxExpansionDepth; the caller surfaces this as "command not found".
var ErrCycle = fmt.Errorf("alias expansion exceeded depth %d", MaxExpansionDepth)

// Table holds the session's alias definitions.
type Table struct {
	aliases map[string]string
}

// NewTable creates an empty alias table.
func NewTable() *Table {
	return &Table{aliases: make(map[string]string)}
}

// ValidateName reports whether name matches the alias identifier grammar.
func ValidateName(name string) error {
	if !nameRe.MatchString(name) {
		return fmt.Errorf("invalid alias name %q", name)
	}
	return nil
}

// ValidateCommand reports whether command is a safe, non-empty alias body.
func ValidateCommand(command string) error {
	if strings.TrimSpace(command) == "" {
		return fmt.Errorf("alias command must not be empty")
	}
	for _, bad := range dangerousSubstrings {
		if strings.Contains(command, bad) {
			return fmt.Errorf("alias command contains disallowed text %q", bad)
		}
	}
	return nil
}

// Set defines or redefines an alias, validating name and command first.
func (t *Table) Set(name, command string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ValidateCommand(command); err != nil {
		return err
	}
	t.aliases[name] = command
	return nil
}

// Unset removes a single alias. It reports whether the alias existed.
func (t *Table) Unset(name string) bool {
	if _, ok := t.aliases[name]; !ok {
		return false
	}
	delete(t.aliases, name)
	return true
}

// UnsetAll removes every alias.
func (t *Table) UnsetAll() {
	t.aliases = make(map[string]string)
}

// Get returns the raw command template for name.
func (t *Table) Get(name string) (string, bool) {
	v, ok := t.aliases[name]
	return v, ok
}

// List returns every alias sorted by name.
func (t *Table) List() []string {
	names := make([]string, 0, len(t.aliases))
	for name := range t.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand substitutes $1..$9 placeholders in name's command template with
// args, appends any args not consumed by a placeholder, and recursively
// expands the result if its leading word is itself an alias. It returns the
// fully expanded command text and whether any expansion occurred. ErrCycle
// is returned if expansion does not terminate within MaxExpansionDepth.
func (t *Table) Expand(name string, args []string) (string, bool, error) {
	template, ok := t.aliases[name]
	if !ok {
		return "", false, nil
	}

	text, err := t.expandDepth(template, args, 1)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (t *Table) expandDepth(template string, args []string, depth int) (string, error) {
	if depth > MaxExpansionDepth {
		return "", ErrCycle
	}

	expanded, consumed := substitutePositional(template, args)
	if consumed < len(args) {
		leftover := args[consumed:]
		quoted := shellquote.Join(leftover...)
		expanded = strings.TrimRight(expanded, " ") + " " + quoted
	}

	leading, rest := splitFirstWord(expanded)
	if nextTemplate, ok := t.aliases[leading]; ok {
		restArgs, err := shellquote.Split(rest)
		if err != nil {
			// Not valid shell words (e.g. an unterminated quote introduced by
			// substitution); stop expanding and let the parser report it.
			return expanded, nil
		}
		return t.expandDepth(nextTemplate, restArgs, depth+1)
	}

	return expanded, nil
}

// substitutePositional replaces $1..$9 in template with args, returning the
// substituted text and how many leading args were consumed by placeholders
// actually present in the template.
func substitutePositional(template string, args []string) (string, int) {
	consumed := 0
	var out strings.Builder
	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '$' && i+1 < len(runes) && runes[i+1] >= '1' && runes[i+1] <= '9' {
			idx := int(runes[i+1] - '1')
			if idx < len(args) {
				out.WriteString(args[idx])
				if idx+1 > consumed {
					consumed = idx + 1
				}
			}
			i++
			continue
		}
		out.WriteRune(c)
	}
	return out.String(), consumed
}

func splitFirstWord(s string) (first, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}
