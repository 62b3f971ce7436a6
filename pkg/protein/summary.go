// 14 Oct 2026

package protein

import (
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one stretch of the sequence that is different after editing.
// Pos is in the numbering of the original sequence.
type Change struct {
	Op  string // "del" or "sub" or "ins"
	Pos int
	Old string
	New string
}

const (
	colBefore = iota
	colAfter
	nCol
)

// Summary describes what the commands did to a sequence.
type Summary struct {
	OrigLen  int
	FinalLen int
	NReplace int
	NDelete  int
	Changes  []Change
	syms     []byte            // symbols seen, in order of their row in compos
	compos   *matrix.FMatrix2d // compos.Mat[row][colBefore or colAfter] counts
}

// toRunes gives one rune per byte, so bytes that are not valid UTF-8
// still count as one symbol each.
func toRunes(b []byte) []rune {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return r
}

// fromRunes undoes toRunes on the text of a diff.
func fromRunes(s string) (string, int) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		b = append(b, byte(r))
	}
	return string(b), len(b)
}

// changes walks the diff of before and after. A deletion followed by an
// insertion is treated as a substitution.
func changes(before, after []byte) []Change {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0 // same answer every time, however long the sequence
	diffs := dmp.DiffMainRunes(toRunes(before), toRunes(after), false)
	var chg []Change
	pos := 1
	for i := 0; i < len(diffs); i++ {
		d := diffs[i]
		txt, n := fromRunes(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			pos += n
		case diffmatchpatch.DiffDelete:
			c := Change{Op: "del", Pos: pos, Old: txt}
			if i+1 < len(diffs) && diffs[i+1].Type == diffmatchpatch.DiffInsert {
				c.Op = "sub"
				c.New, _ = fromRunes(diffs[i+1].Text)
				i++
			}
			chg = append(chg, c)
			pos += n
		case diffmatchpatch.DiffInsert:
			chg = append(chg, Change{Op: "ins", Pos: pos, New: txt})
		}
	}
	return chg
}

// composition counts each symbol before and after editing.
func (sm *Summary) composition(before, after []byte) {
	var row [256]int
	for i := range row {
		row[i] = -1
	}
	for _, b := range [][]byte{before, after} {
		for _, c := range b {
			if row[c] == -1 {
				row[c] = len(sm.syms)
				sm.syms = append(sm.syms, c)
			}
		}
	}
	sm.compos = matrix.NewFMatrix2d(len(sm.syms), nCol)
	for _, c := range before {
		sm.compos.Mat[row[c]][colBefore]++
	}
	for _, c := range after {
		sm.compos.Mat[row[c]][colAfter]++
	}
}

// NewSummary compares the sequence before and after editing.
func NewSummary(before, after []byte, nReplace, nDelete int) *Summary {
	sm := &Summary{
		OrigLen:  len(before),
		FinalLen: len(after),
		NReplace: nReplace,
		NDelete:  nDelete,
		Changes:  changes(before, after),
	}
	sm.composition(before, after)
	return sm
}

// Count returns how often c occurred before and after editing.
func (sm *Summary) Count(c byte) (before, after int) {
	for i, s := range sm.syms {
		if s == c {
			return int(sm.compos.Mat[i][colBefore]), int(sm.compos.Mat[i][colAfter])
		}
	}
	return 0, 0
}

// Write prints the summary in a form meant for people, not programs.
func (sm *Summary) Write(w io.Writer) error {
	const hdr = "length %d -> %d, %d replacements, %d deletions\n"
	if _, err := fmt.Fprintf(w, hdr, sm.OrigLen, sm.FinalLen, sm.NReplace, sm.NDelete); err != nil {
		return err
	}
	for _, c := range sm.Changes {
		var err error
		switch c.Op {
		case "sub":
			_, err = fmt.Fprintf(w, "%6d  %s -> %s\n", c.Pos, c.Old, c.New)
		case "del":
			_, err = fmt.Fprintf(w, "%6d  %s deleted\n", c.Pos, c.Old)
		default:
			_, err = fmt.Fprintf(w, "%6d  %s inserted\n", c.Pos, c.New)
		}
		if err != nil {
			return err
		}
	}
	for i, s := range sm.syms {
		nb, na := sm.compos.Mat[i][colBefore], sm.compos.Mat[i][colAfter]
		if nb == na {
			continue
		}
		if _, err := fmt.Fprintf(w, "%c %6.0f %6.0f\n", s, nb, na); err != nil {
			return err
		}
	}
	return nil
}
