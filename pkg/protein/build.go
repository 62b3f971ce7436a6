// 12 Oct 2026

package protein

import (
	"bufio"
	"fmt"
	"io"
)

const nl = '\n'

const rdBufSize = 64 * 1024

// Build reads symbols from rdr until end of input. Newlines are dropped,
// except for the very first byte, which always goes into the sequence.
// listSize counts only the symbols after the first one, so it is one less
// than the length of the sequence.
func Build(rdr io.Reader) (s *Sequence, listSize int, err error) {
	brdr := bufio.NewReaderSize(rdr, rdBufSize)
	first, err := brdr.ReadByte()
	if err == io.EOF {
		return nil, 0, ErrEmptyInput
	} else if err != nil {
		return nil, 0, fmt.Errorf("reading sequence: %w", err)
	}
	s = NewSequence(rdBufSize)
	s.Append(first)

	buf := make([]byte, rdBufSize)
	for {
		n, rerr := brdr.Read(buf)
		for _, c := range buf[:n] {
			if c != nl {
				s.Append(c)
				listSize++
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, 0, fmt.Errorf("reading sequence after %d symbols: %w", s.Len(), rerr)
		}
	}
	return s, listSize, nil
}
