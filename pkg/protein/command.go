// 12 Oct 2026

package protein

import (
	"strconv"

	"github.com/andrew-torda/seq_edit/pkg/logger"
)

// Kind says whether a command deletes or replaces.
type Kind byte

const (
	Replace Kind = iota
	Delete
)

func (k Kind) String() string {
	if k == Delete {
		return "delete"
	}
	return "replace"
}

const (
	delChar     = 'd' // first character of a delete command
	FirstCmdArg = 2   // argument 1 is the label, commands start at 2
)

// Command is one edit. Old is only set for replacements and is never
// checked against the sequence. It is there for messages.
type Command struct {
	Kind Kind
	Pos  int
	Old  byte
	Sym  byte
	Argn int    // where it was on the command line
	Text string // as typed
}

// leadDigits returns the run of decimal digits at the start of s.
func leadDigits(s string) string {
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
	}
	return s[:i]
}

// parseOne turns a single argument into a command.
//  d12    delete position 12
//  K12R   replace whatever is at 12 with R. The K is not checked.
func parseOne(text string, argn int) (Command, error) {
	cmd := Command{Text: text, Argn: argn}
	mkErr := func(msg string) error {
		return &CmdError{Cmd: text, Argn: argn, Msg: msg, Err: ErrMalformedCommand}
	}
	if len(text) == 0 {
		return cmd, mkErr("empty")
	}
	rest := text[1:]
	digits := leadDigits(rest)
	if digits == "" {
		return cmd, mkErr("no position")
	}
	pos, err := strconv.Atoi(digits)
	if err != nil {
		return cmd, mkErr("position " + digits + " too big")
	}
	cmd.Pos = pos
	tail := rest[len(digits):]

	if text[0] == delChar {
		cmd.Kind = Delete
		if tail != "" {
			return cmd, mkErr("junk after position")
		}
		return cmd, nil
	}

	cmd.Kind = Replace
	cmd.Old = text[0]
	if tail == "" {
		return cmd, mkErr("no new symbol")
	}
	cmd.Sym = tail[0]
	if len(tail) > 1 {
		logger.Warn("ignoring characters after new symbol",
			"arg", argn, "cmd", text, "ignored", tail[1:])
	}
	return cmd, nil
}

// ParseCmds sorts the command line arguments into replacements and
// deletions. args are the commands only, the arguments after the label.
// Each list keeps the order the commands were given in.
// We stop at the first bad command.
func ParseCmds(args []string) (replaces, deletes []Command, err error) {
	for i, a := range args {
		cmd, err := parseOne(a, i+FirstCmdArg)
		if err != nil {
			return nil, nil, err
		}
		if cmd.Kind == Delete {
			deletes = append(deletes, cmd)
		} else {
			replaces = append(replaces, cmd)
		}
	}
	return replaces, deletes, nil
}
