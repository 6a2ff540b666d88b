package shellapp

import "go.uber.org/zap"

// NewLogger builds the session's structured logger. Debug toggles
// development-mode (human-readable, debug-level) output versus production
// JSON; this replaces the teacher's stray `fmt.Fprintf(os.Stderr, "DEBUG
// ...")` calls (internal/app/vfs.go) with leveled, structured logging
// (grounded on diillson-chatcli's `*zap.Logger` dependency-injection
// pattern: a logger built once at startup and passed in where it is used;
// here it is held by App, which logs session, history and save events
// itself — the executor, persistence adapter and history store take no
// logger).
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
