// 13 Oct 2026

package protein

import (
	"fmt"

	"github.com/andrew-torda/seq_edit/pkg/logger"
)

// rangeErr builds the error for a command that points off the sequence.
func rangeErr(cmd Command, seqLen int, msg string) error {
	return &CmdError{
		Cmd:  cmd.Text,
		Argn: cmd.Argn,
		Msg:  fmt.Sprintf("%s, sequence length %d", msg, seqLen),
		Err:  ErrPositionOutOfRange,
	}
}

// ApplyReplaces runs replacements in order. Positions are plain 1-based
// positions in the sequence as it stands, since nothing has been deleted
// yet when they run.
func ApplyReplaces(s *Sequence, cmds []Command) error {
	for _, cmd := range cmds {
		if !s.set(cmd.Pos, cmd.Sym) {
			return rangeErr(cmd, s.Len(), fmt.Sprintf("cannot replace %d", cmd.Pos))
		}
		logger.Debug("replaced", "pos", cmd.Pos, "old", string(cmd.Old), "new", string(cmd.Sym))
	}
	return nil
}

// Deleter removes symbols one command at a time and remembers how many
// it has removed. Positions are in the numbering of the original
// sequence. Every deletion shifts what follows down by one, so the
// count along the list starts at 1 + ndeleted. This only lands on the
// right symbol if deletions arrive in increasing position order.
type Deleter struct {
	ndeleted int
}

// NDeleted is the number of symbols removed so far.
func (d *Deleter) NDeleted() int { return d.ndeleted }

// Delete removes the symbol that cmd.Pos refers to.
func (d *Deleter) Delete(s *Sequence, cmd Command) error {
	i := 1 + d.ndeleted
	if cmd.Pos < i {
		return rangeErr(cmd, s.Len(), fmt.Sprintf("position %d already passed after %d deletions", cmd.Pos, d.ndeleted))
	}
	prev, cur := int32(nilNdx), s.head
	for ; i < cmd.Pos && cur != nilNdx; i++ {
		prev, cur = cur, s.nodes[cur].next
	}
	if cur == nilNdx {
		return rangeErr(cmd, s.Len(), fmt.Sprintf("cannot delete %d", cmd.Pos))
	}
	logger.Debug("deleted", "pos", cmd.Pos, "sym", string(s.nodes[cur].sym), "ndeleted", d.ndeleted)
	s.unlink(prev, cur)
	d.ndeleted++
	return nil
}

// ApplyDeletes runs the deletions in order, stopping at the first error.
func (d *Deleter) ApplyDeletes(s *Sequence, cmds []Command) error {
	for _, cmd := range cmds {
		if err := d.Delete(s, cmd); err != nil {
			return err
		}
	}
	return nil
}
