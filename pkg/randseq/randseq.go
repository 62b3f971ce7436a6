// 16 Oct 2026

// Package randseq makes random protein sequences and random edit
// commands to go with them. It is for testing and benchmarking.
// We do not work with Sequence structures. We just make byte slices
// and strings.
package randseq

import (
	"math/rand"
	"sort"
	"strconv"
)

var letters = []byte{'A', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'K', 'L',
	'M', 'N', 'P', 'Q', 'R', 'S', 'T', 'V', 'W', 'Y'}

// New returns a random sequence of length n.
func New(n int, rnd *rand.Rand) []byte {
	t := make([]byte, n)
	for i := range t {
		t[i] = letters[rnd.Intn(len(letters))]
	}
	return t
}

// AddNL puts a newline after every width characters, like a sequence
// file would have.
func AddNL(s []byte, width int) []byte {
	t := make([]byte, 0, len(s)+len(s)/width+1)
	for ; len(s) > width; s = s[width:] {
		t = append(t, s[:width]...)
		t = append(t, '\n')
	}
	t = append(t, s...)
	return append(t, '\n')
}

// pickPos returns n different positions from 1 to seqLen, smallest first.
func pickPos(n, seqLen int, rnd *rand.Rand) []int {
	if n > seqLen {
		n = seqLen
	}
	perm := rnd.Perm(seqLen)[:n]
	for i := range perm {
		perm[i]++
	}
	sort.Ints(perm)
	return perm
}

// Deletes makes n delete commands for a sequence of length seqLen.
// Positions are different and increasing, so they refer to the
// original numbering.
func Deletes(n, seqLen int, rnd *rand.Rand) (cmds []string, pos []int) {
	pos = pickPos(n, seqLen, rnd)
	for _, p := range pos {
		cmds = append(cmds, "d"+strconv.Itoa(p))
	}
	return cmds, pos
}

// Replaces makes n replacement commands for s. The old residue is
// correct, the new one is random, so it may not even be a change.
func Replaces(n int, s []byte, rnd *rand.Rand) (cmds []string, pos []int) {
	pos = pickPos(n, len(s), rnd)
	for _, p := range pos {
		newc := letters[rnd.Intn(len(letters))]
		cmds = append(cmds, string(s[p-1])+strconv.Itoa(p)+string(newc))
	}
	return cmds, pos
}
