// 14 Oct 2026

package protein_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/seq_edit/pkg/protein"
	"github.com/andrew-torda/seq_edit/pkg/randseq"
)

// edit parses the commands and applies them to a fresh copy of in.
func edit(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	replaces, deletes, err := ParseCmds(args)
	require.NoError(t, err)
	s := FromBytes([]byte(in))
	err = Edit(s, replaces, deletes)
	return s.String(), err
}

func TestEditGood(t *testing.T) {
	tests := []struct {
		in   string
		args []string
		want string
	}{
		{"ABCDE", nil, "ABCDE"},
		{"ABCDE", []string{"C3X"}, "ABXDE"},
		{"ABCDE", []string{"d3"}, "ABDE"},
		{"ABCDE", []string{"d1"}, "BCDE"},
		{"ABCDE", []string{"d5"}, "ABCD"},
		{"ABCDE", []string{"A1x", "E5y"}, "xBCDy"},
		{"ABCDE", []string{"d2", "d4"}, "ACE"},
		{"ABCDE", []string{"d1", "d2", "d3", "d4", "d5"}, ""},
		{"ABCDE", []string{"d2", "C3X", "d3"}, "ADE"}, // replace runs first
		{"ABCDE", []string{"B2x", "B2y"}, "AyCDE"},    // last one wins
		{"ABCDEFGHIJ", []string{"d1", "d10"}, "BCDEFGHI"},
	}
	for _, tt := range tests {
		got, err := edit(t, tt.in, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, got, "%s %v", tt.in, tt.args)
	}
}

func TestEditOutOfRange(t *testing.T) {
	tests := [][]string{
		{"A0x"},
		{"A6x"},
		{"d0"},
		{"d6"},
		{"d5", "d6"}, // 6 is past the original end
		{"d3", "d1"}, // 1 was passed by the first deletion
	}
	for _, args := range tests {
		_, err := edit(t, "ABCDE", args...)
		require.Error(t, err, "%v", args)
		assert.True(t, errors.Is(err, ErrPositionOutOfRange), "%v: %v", args, err)
	}
}

// TestStopAtFirst checks nothing after a bad command is applied.
func TestStopAtFirst(t *testing.T) {
	replaces, deletes, err := ParseCmds([]string{"d2", "d9", "d4"})
	require.NoError(t, err)
	s := FromBytes([]byte("ABCDE"))
	var d Deleter
	err = d.ApplyDeletes(s, deletes)
	assert.True(t, errors.Is(err, ErrPositionOutOfRange))
	assert.Equal(t, 1, d.NDeleted())
	assert.Equal(t, "ACDE", s.String())
	assert.Empty(t, replaces)
}

// TestManyDeletes removes random, increasing positions and compares
// with simply skipping those positions.
func TestManyDeletes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	for _, seqLen := range []int{1, 10, 51, 500, 2000} {
		orig := randseq.New(seqLen, rnd)
		ndel := rnd.Intn(seqLen + 1)
		args, pos := randseq.Deletes(ndel, seqLen, rnd)
		got, err := edit(t, string(orig), args...)
		require.NoError(t, err)

		gone := make(map[int]bool)
		for _, p := range pos {
			gone[p] = true
		}
		var want []byte
		for i, c := range orig {
			if !gone[i+1] {
				want = append(want, c)
			}
		}
		assert.Equal(t, seqLen-ndel, len(got))
		assert.Equal(t, string(want), got)
	}
}

func TestManyReplaces(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	orig := randseq.New(300, rnd)
	args, pos := randseq.Replaces(25, orig, rnd)
	got, err := edit(t, string(orig), args...)
	require.NoError(t, err)
	require.Len(t, got, len(orig))

	changed := make(map[int]byte)
	for i, p := range pos {
		changed[p] = args[i][len(args[i])-1]
	}
	for i := range orig {
		want := orig[i]
		if c, ok := changed[i+1]; ok {
			want = c
		}
		assert.Equal(t, want, got[i], "position %d", i+1)
	}
}

func TestDeleterCounts(t *testing.T) {
	_, deletes, err := ParseCmds([]string{"d2", "d3", "d7"})
	require.NoError(t, err)
	s := FromBytes([]byte("ABCDEFGH"))
	var d Deleter
	for i, cmd := range deletes {
		assert.Equal(t, i, d.NDeleted())
		require.NoError(t, d.Delete(s, cmd))
	}
	assert.Equal(t, 3, d.NDeleted())
	assert.Equal(t, "ADEFH", s.String())
}

func BenchmarkDeletes(b *testing.B) {
	rnd := rand.New(rand.NewSource(1637))
	orig := randseq.New(20000, rnd)
	args, _ := randseq.Deletes(500, len(orig), rnd)
	_, deletes, err := ParseCmds(args)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := FromBytes(orig)
		var d Deleter
		if err := d.ApplyDeletes(s, deletes); err != nil {
			b.Fatal(err)
		}
	}
}
