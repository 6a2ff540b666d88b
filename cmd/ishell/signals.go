package main

import (
	"bufio"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/mako10k/ishell/internal/editor"
	"github.com/mako10k/ishell/internal/result"
	"github.com/mako10k/ishell/internal/shellapp"
)

// emit prints res's output, first checking for and handling a control
// signal (spec §6: "CLEAR"/"RESET_FILESYSTEM[:mode]"/"OPEN_EDITOR:..." are
// host-interpreted and must never be displayed as raw text).
func emit(app *shellapp.App, res result.CommandResult) {
	text := res.Output.Flatten()

	switch {
	case text == result.SignalClear:
		fmt.Print("\x1b[2J\x1b[H")
		return

	case strings.HasPrefix(text, "RESET_FILESYSTEM"):
		mode := ""
		if rest := strings.TrimPrefix(text, "RESET_FILESYSTEM"); strings.HasPrefix(rest, ":") {
			mode = strings.TrimPrefix(rest, ":")
		}
		if err := app.ResetFilesystem(mode); err != nil {
			fmt.Fprintf(os.Stderr, "reset-fs: %v\n", err)
			return
		}
		fmt.Println("filesystem reset")
		return

	case strings.HasPrefix(text, "OPEN_EDITOR:"):
		filename, content, err := decodeOpenEditor(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "vi: %v\n", err)
			return
		}
		if err := runEditor(app, filename, content); err != nil {
			fmt.Fprintf(os.Stderr, "vi: %v\n", err)
		}
		return
	}

	fmt.Print(text)
	if !res.Success && res.Error != "" {
		fmt.Fprintln(os.Stderr, res.Error)
	}
}

func decodeOpenEditor(signal string) (filename, content string, err error) {
	rest := strings.TrimPrefix(signal, "OPEN_EDITOR:")
	sep := strings.LastIndex(rest, ":")
	if sep < 0 {
		return "", "", fmt.Errorf("malformed OPEN_EDITOR signal")
	}
	filename = rest[:sep]
	decoded, err := base64.StdEncoding.DecodeString(rest[sep+1:])
	if err != nil {
		return "", "", fmt.Errorf("decoding editor content: %w", err)
	}
	return filename, string(decoded), nil
}

// runEditor drives the modal editor state machine (component J) from line
// input. This is a line-buffered terminal, not a raw-keystroke one, so
// NORMAL-mode lines are read one rune at a time as a sequence of
// keystrokes (every NORMAL key this editor defines is a single rune, so a
// line like "llli" is four keystrokes), INSERT-mode lines are typed
// literally followed by an implicit Enter, and the literal line "<esc>"
// leaves INSERT mode -- a deliberate simplification of the fully
// keystroke-driven state machine in internal/editor, which itself has no
// such restriction and is exercised directly, keystroke by keystroke, in
// its own tests.
func runEditor(app *shellapp.App, filename, content string) error {
	state := editor.New(filename, content, app.Config.MaxVisibleLines)
	write := func(name, body string) error {
		path := app.FS.ResolvePath(name)
		return app.FS.WriteFile(path, body)
	}

	fmt.Printf("-- editing %s (NORMAL mode; ':' for ex commands, \"<esc>\" to leave INSERT) --\n", filename)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		printBuffer(state)
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := scanner.Text()

		if state.Mode == editor.ModeNormal && strings.HasPrefix(line, ":") {
			res := editor.ExCommand(state, strings.TrimPrefix(line, ":"), write)
			if res.Message != "" {
				fmt.Println(res.Message)
			}
			if res.ShouldClose {
				return nil
			}
			continue
		}

		if state.Mode == editor.ModeInsert {
			if line == "<esc>" {
				editor.HandleInsertKey(state, editor.KeyEscape)
				continue
			}
			for _, r := range line {
				editor.HandleInsertKey(state, string(r))
			}
			editor.HandleInsertKey(state, editor.KeyEnter)
			continue
		}

		for _, r := range line {
			editor.HandleNormalKey(state, string(r))
		}
	}
}

func printBuffer(state *editor.State) {
	mode := "NORMAL"
	if state.Mode == editor.ModeInsert {
		mode = "INSERT"
	}
	fmt.Printf("[%s %d:%d]\n", mode, state.Cursor.Line+1, state.Cursor.Column+1)
	for i, line := range state.Lines {
		marker := "  "
		if i == state.Cursor.Line {
			marker = "> "
		}
		fmt.Println(marker + line)
	}
}
