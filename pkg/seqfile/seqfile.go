// 15 Oct 2026

// Package seqfile opens the input for a sequence. Files are memory
// mapped. Gzipped input, from a file or a stream, is noticed and
// decompressed on the fly.
package seqfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
)

// mapped serves a memory mapped file through the io.Reader interface.
type mapped struct {
	*bytes.Reader
	mm mmap.MMap
	fp *os.File
}

func (m *mapped) Close() error {
	return errors.Join(m.mm.Unmap(), m.fp.Close())
}

// streamed is a reader we could only peek at, closed through whatever
// it came from.
type streamed struct {
	*bufio.Reader
	io.Closer
}

// fromStream peeks at the start of rdr to see if it is compressed.
// Closing the result closes c, if there is one.
func fromStream(rdr io.Reader, c io.Closer) (io.ReadCloser, error) {
	brdr := bufio.NewReader(rdr)
	head, err := brdr.Peek(len(gzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	if c == nil {
		c = io.NopCloser(rdr)
	}
	return wrapMaybe(streamed{Reader: brdr, Closer: c}, head)
}

// byMmap maps the whole file read-only. mmap refuses zero length
// files and has no use for pipes or devices, so those are streamed.
func byMmap(fname string) (io.ReadCloser, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	fi, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() || fi.Size() == 0 {
		rc, err := fromStream(fp, fp)
		if err != nil {
			fp.Close()
			return nil, fmt.Errorf("%s: %w", fname, err)
		}
		return rc, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	m := &mapped{Reader: bytes.NewReader(mm), mm: mm, fp: fp}
	rc, err := wrapMaybe(m, mm)
	if err != nil {
		m.Close()
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return rc, nil
}

// FromReader is for input that is not a file we can map, like stdin.
// Closing the result does not close rdr.
func FromReader(rdr io.Reader) (io.ReadCloser, error) {
	return fromStream(rdr, nil)
}

// Open returns a reader for the sequence in fname. An empty name or "-"
// means standard input.
func Open(fname string) (io.ReadCloser, error) {
	if fname == "" || fname == "-" {
		return FromReader(os.Stdin)
	}
	return byMmap(fname)
}
