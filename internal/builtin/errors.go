package builtin

import "errors"

var (
	errMissingCountOperand = errors.New("-n requires a count")
	errInvalidCount        = errors.New("invalid count")
)
