package editor

import "strings"

// ExResult is the outcome of an ex command (spec 4.J:
// "{success, shouldClose?, message, newState?}"; this implementation
// mutates State in place rather than returning a replacement, so callers
// just re-read s after a successful result instead of a separate
// newState).
type ExResult struct {
	Success     bool
	ShouldClose bool
	Message     string
}

// WriteFunc persists content under filename; the host supplies this
// (typically backed by the virtual filesystem) so this package stays
// independent of any particular storage.
type WriteFunc func(filename, content string) error

// ExCommand runs a ":"-command (without the leading colon) against s.
// Recognizes exactly the spec 4.J set: w [filename], q, q!, wq, wq!, x.
// Quitting with unsaved changes and no "!" fails rather than closing.
func ExCommand(s *State, cmd string, write WriteFunc) ExResult {
	cmd = strings.TrimSpace(cmd)

	switch {
	case cmd == "q":
		if s.IsModified {
			return ExResult{Message: "no write since last change (add ! to override)"}
		}
		return ExResult{Success: true, ShouldClose: true}

	case cmd == "q!":
		return ExResult{Success: true, ShouldClose: true}

	case cmd == "w" || strings.HasPrefix(cmd, "w "):
		filename := strings.TrimSpace(strings.TrimPrefix(cmd, "w"))
		if filename == "" {
			filename = s.Filename
		}
		if err := write(filename, s.Content); err != nil {
			return ExResult{Message: err.Error()}
		}
		s.Filename = filename
		s.OriginalContent = s.Content
		s.IsModified = false
		return ExResult{Success: true, Message: "written"}

	case cmd == "wq" || cmd == "wq!" || cmd == "x":
		if err := write(s.Filename, s.Content); err != nil {
			return ExResult{Message: err.Error()}
		}
		s.OriginalContent = s.Content
		s.IsModified = false
		return ExResult{Success: true, ShouldClose: true}

	default:
		return ExResult{Message: "unknown command: " + cmd}
	}
}
