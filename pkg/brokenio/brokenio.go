// 16 Oct 2026

// Package brokenio wraps a reader so that it breaks on purpose. It is
// for checking that read errors get through to the caller and are not
// mistaken for the end of a sequence.
// Typical use:
//
//	rdr = brokenio.NewReader(rdr, 100)
//
// Everything then works as before until 100 bytes have been read,
// after which every Read fails.
package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what Read returns once the reader has broken.
var ErrBroken = errors.New("brokenio: deliberate read failure")

// BrknRdr passes reads through to the wrapped reader until nGood bytes
// have gone by.
type BrknRdr struct {
	rdrOrig io.Reader
	nGood   int
	nByte   int
	nCalled int
}

// NewReader returns a reader which fails after nGood bytes.
// With nGood of zero, the very first read fails.
func NewReader(rIn io.Reader, nGood int) *BrknRdr {
	return &BrknRdr{rdrOrig: rIn, nGood: nGood}
}

// NByte is the number of bytes handed out so far.
func (r *BrknRdr) NByte() int { return r.nByte }

// NCalled is how often Read has been called.
func (r *BrknRdr) NCalled() int { return r.nCalled }

// Read never hands out more than the good bytes. A read that would go
// past them is cut short and returns the data with ErrBroken.
func (r *BrknRdr) Read(p []byte) (n int, err error) {
	r.nCalled++
	left := r.nGood - r.nByte
	if left <= 0 {
		return 0, ErrBroken
	}
	if len(p) > left {
		p = p[:left]
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if err == nil && r.nByte >= r.nGood {
		err = ErrBroken
	}
	return n, err
}
