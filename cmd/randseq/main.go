// 17 Oct 2026

package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/andrew-torda/seq_edit/pkg/randseq"
	. "github.com/andrew-torda/seq_edit/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var seed int64
	var width, ndel int

	f.IntVar(&ndel, "d", 0, "number of delete commands to write to stderr")
	f.Int64Var(&seed, "r", iseed, "random number seed")
	f.IntVar(&width, "w", 60, "residues per line")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 1 || width < 1 {
		fmt.Fprintln(f.Output(), "randseq [..] length")
		f.Usage()
		os.Exit(ExitUsageError)
	}

	const emsg = "Failed converting %s to positive integer\n"
	nlen, err := strconv.ParseUint(f.Arg(0), 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Arg(0))
		os.Exit(ExitFailure)
	}
	rnd := rand.New(rand.NewSource(seed))
	s := randseq.New(int(nlen), rnd)
	if _, err := os.Stdout.Write(randseq.AddNL(s, width)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	if ndel > 0 {
		cmds, _ := randseq.Deletes(ndel, len(s), rnd)
		fmt.Fprintln(os.Stderr, strings.Join(cmds, " "))
	}
	os.Exit(ExitSuccess)
}
