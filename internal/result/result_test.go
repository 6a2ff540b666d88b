package result

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestFlattenPlainText(t *testing.T) {
	out := Plain("hello")
	if out.Flatten() != "hello" {
		t.Errorf("expected hello, got %q", out.Flatten())
	}
}

func TestFlattenSegments(t *testing.T) {
	out := FromSegments([]Segment{
		{Text: "a", Type: SegTypeNormal},
		{Text: "b", Type: SegTypeBold},
	})
	if out.Flatten() != "ab" {
		t.Errorf("expected ab, got %q", out.Flatten())
	}
}

func TestOpenEditorSignalRoundTrips(t *testing.T) {
	sig := OpenEditorSignal("notes.txt", "héllo 世界")
	if !strings.HasPrefix(sig, "OPEN_EDITOR:notes.txt:") {
		t.Fatalf("unexpected signal shape: %q", sig)
	}
	encoded := strings.TrimPrefix(sig, "OPEN_EDITOR:notes.txt:")
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if string(decoded) != "héllo 世界" {
		t.Errorf("expected round-tripped unicode content, got %q", decoded)
	}
}

func TestResetFilesystemSignal(t *testing.T) {
	if ResetFilesystemSignal("") != "RESET_FILESYSTEM" {
		t.Error("expected bare RESET_FILESYSTEM with no mode")
	}
	if ResetFilesystemSignal("quota-demo") != "RESET_FILESYSTEM:quota-demo" {
		t.Error("expected mode-qualified signal")
	}
}

func TestOkAndFailExitCodes(t *testing.T) {
	ok := Ok("done")
	if !ok.Success || ok.ExitCode != ExitSuccess {
		t.Errorf("unexpected Ok result: %+v", ok)
	}
	fail := Fail(ExitUsageError, "bad flag")
	if fail.Success || fail.ExitCode != ExitUsageError || fail.Error != "bad flag" {
		t.Errorf("unexpected Fail result: %+v", fail)
	}
}
