// 13 Oct 2026

package protein

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

const (
	RowLen     = 50 // symbols per row
	GroupLen   = 10 // symbols per group within a row
	labelWidth = 10
	nGroup     = RowLen / GroupLen
)

var blankLabel = strings.Repeat(" ", labelWidth)

// labelLine is the line of numbers above a row starting after position
// start. A number is left out if there is nothing in its group.
func labelLine(start, seqLen int) string {
	var sb strings.Builder
	for k := 1; k <= nGroup; k++ {
		lbl := start + k*GroupLen
		if lbl-GroupLen >= seqLen {
			sb.WriteString(blankLabel)
		} else {
			fmt.Fprintf(&sb, "%*d", labelWidth, lbl)
		}
		if k != nGroup {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Renderer lays out a sequence in rows of RowLen, each row under a line
// of position labels.
type Renderer struct {
	seq *Sequence
}

func NewRenderer(s *Sequence) *Renderer { return &Renderer{seq: s} }

// Lines gives the output one line at a time, without newlines.
// Nothing is built until it is asked for. An empty sequence gives
// one empty line.
func (r *Renderer) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		s := r.seq
		n := s.Len()
		if n == 0 {
			yield("")
			return
		}
		row := make([]byte, 0, RowLen+nGroup)
		i := 0
		for ndx := s.head; ndx != nilNdx; ndx = s.nodes[ndx].next {
			if i%RowLen == 0 {
				if !yield(labelLine(i, n)) {
					return
				}
			}
			row = append(row, s.nodes[ndx].sym)
			i++
			if i%RowLen == 0 || i == n {
				if !yield(string(row)) {
					return
				}
				row = row[:0]
			} else if i%GroupLen == 0 {
				row = append(row, ' ')
			}
		}
	}
}

// WriteTo writes the whole layout to w.
func (r *Renderer) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var nw int64
	for line := range r.Lines() {
		n, err := bw.WriteString(line)
		nw += int64(n)
		if err != nil {
			return nw, err
		}
		if err := bw.WriteByte(nl); err != nil {
			return nw, err
		}
		nw++
	}
	return nw, bw.Flush()
}

// String returns the layout as one string. Handy in tests and for
// small sequences.
func (r *Renderer) String() string {
	var sb strings.Builder
	r.WriteTo(&sb)
	return sb.String()
}
