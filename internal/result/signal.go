package result

import "encoding/base64"

// Control signals are special string outputs the host must interpret and
// not display (spec §6).
const (
	SignalClear             = "CLEAR"
	SignalResetFilesystem   = "RESET_FILESYSTEM"
	signalOpenEditorPrefix  = "OPEN_EDITOR:"
)

// OpenEditorSignal builds the "OPEN_EDITOR:<filename>:<base64(content)>"
// control signal, base64-encoding content so arbitrary Unicode survives the
// transport (spec §6).
func OpenEditorSignal(filename, content string) string {
	return signalOpenEditorPrefix + filename + ":" + base64.StdEncoding.EncodeToString([]byte(content))
}

// ResetFilesystemSignal builds "RESET_FILESYSTEM" or, when mode is
// non-empty, "RESET_FILESYSTEM:<mode>" (spec §6).
func ResetFilesystemSignal(mode string) string {
	if mode == "" {
		return SignalResetFilesystem
	}
	return SignalResetFilesystem + ":" + mode
}
