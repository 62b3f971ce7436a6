// 15 Oct 2026

package seqfile_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/seq_edit/pkg/seq/common"
	"github.com/andrew-torda/seq_edit/pkg/seqfile"
)

const testseq = "MFVFLVLLPLVSSQCVNLTT\nRTQLPPAYTNSFTRGVYYPD\n"

func gz(t *testing.T, s string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := io.WriteString(zw, s); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func readAll(t *testing.T, rc io.ReadCloser) string {
	t.Helper()
	b, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if err := rc.Close(); err != nil {
		t.Fatal("close:", err)
	}
	return string(b)
}

func TestOpenFiles(t *testing.T) {
	contents := [][]byte{[]byte(testseq), gz(t, testseq)}
	for i, c := range contents {
		fname, err := common.WrtTempBytes(c)
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		rc, err := seqfile.Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		if got := readAll(t, rc); got != testseq {
			t.Fatalf("file %d got %q", i, got)
		}
	}
}

func TestOpenEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	rc, err := seqfile.Open(fname)
	if err != nil {
		t.Fatal("empty file should open, got", err)
	}
	if got := readAll(t, rc); got != "" {
		t.Fatalf("got %q from empty file", got)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := seqfile.Open("/no/such/file/here"); !os.IsNotExist(err) {
		t.Fatal("wanted not exist error, got", err)
	}
}

func TestFromReader(t *testing.T) {
	for _, in := range []string{testseq, "A", ""} {
		rc, err := seqfile.FromReader(strings.NewReader(in))
		if err != nil {
			t.Fatal(err)
		}
		if got := readAll(t, rc); got != in {
			t.Fatalf("plain got %q wanted %q", got, in)
		}
	}
	rc, err := seqfile.FromReader(bytes.NewReader(gz(t, testseq)))
	if err != nil {
		t.Fatal(err)
	}
	if got := readAll(t, rc); got != testseq {
		t.Fatalf("gzip got %q", got)
	}
}

// TestBadGzip has the gzip magic number, but nothing sensible after it.
func TestBadGzip(t *testing.T) {
	if _, err := seqfile.FromReader(strings.NewReader("\x1f\x8b")); err == nil {
		t.Fatal("broken gzip header not noticed")
	}
}
