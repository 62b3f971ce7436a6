// 12 Oct 2026

package protein

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedCommand   = errors.New("malformed command")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrEmptyInput         = errors.New("no symbols in input")
)

// CmdError says which command broke. Argn is the index of the command
// on the command line, so the first command after the label is 2.
// Err is one of the sentinels above.
type CmdError struct {
	Cmd  string
	Argn int
	Msg  string
	Err  error
}

func (e *CmdError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("argument %d \"%s\": %v", e.Argn, e.Cmd, e.Err)
	}
	return fmt.Sprintf("argument %d \"%s\": %v: %s", e.Argn, e.Cmd, e.Err, e.Msg)
}

func (e *CmdError) Unwrap() error { return e.Err }
