// 15 Oct 2026
// Wrap a source so that upon Close, the decompressor is closed,
// followed by whatever was underneath.

package seqfile

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
)

var gzMagic = []byte{0x1f, 0x8b}

type fpGzip struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying source.
// Both are tried, even if the first fails.
func (fc *fpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the decompressed stream and
// not the raw bytes.
func (fc *fpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// isGzip looks at the first bytes of some data.
func isGzip(head []byte) bool { return bytes.HasPrefix(head, gzMagic) }

// wrapMaybe decides from the first bytes whether fp is compressed and,
// if it is, puts a gzip reader in front of it. head must be the first
// bytes of fp, which must not yet have been read.
func wrapMaybe(fp io.ReadCloser, head []byte) (io.ReadCloser, error) {
	if !isGzip(head) {
		return fp, nil
	}
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &fpGzip{fp: fp, zrdr: zrdr}, nil
}
