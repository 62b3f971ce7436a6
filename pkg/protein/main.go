// 15 Oct 2026

package protein

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/seq_edit/pkg/logger"
	"github.com/andrew-torda/seq_edit/pkg/seqfile"
)

// CmdArgs is everything the main function needs, after the command
// line and config file have been dealt with.
type CmdArgs struct {
	Label   string    // name printed in the header
	Cmds    []string  // edit commands, os.Args[2:]
	Infile  string    // "" or "-" for standard input
	Summary bool      // describe the changes on Sumry
	In      io.Reader // used instead of os.Stdin if set
	Wrtr    io.Writer // defaults to os.Stdout
	Sumry   io.Writer // defaults to os.Stderr
}

const header = "Spike protein sequence for %s:\n"

// open decides where the sequence comes from.
func (args *CmdArgs) open() (io.ReadCloser, error) {
	if args.In != nil && (args.Infile == "" || args.Infile == "-") {
		return seqfile.FromReader(args.In)
	}
	return seqfile.Open(args.Infile)
}

// Edit applies the commands to s. Replacements all go first, then
// the deletions, each lot in the order given.
func Edit(s *Sequence, replaces, deletes []Command) error {
	if err := ApplyReplaces(s, replaces); err != nil {
		return err
	}
	var d Deleter
	return d.ApplyDeletes(s, deletes)
}

// Mymain reads the sequence, edits it and writes it out. If anything
// goes wrong, nothing is written to Wrtr. The summary goes out before
// the sequence, so failing to write it also leaves Wrtr untouched.
func Mymain(args *CmdArgs) error {
	if args.Wrtr == nil {
		args.Wrtr = os.Stdout
	}
	if args.Sumry == nil {
		args.Sumry = os.Stderr
	}
	replaces, deletes, err := ParseCmds(args.Cmds)
	if err != nil {
		return err
	}
	logger.Debug("commands", "replace", len(replaces), "delete", len(deletes))

	fp, err := args.open()
	if err != nil {
		return fmt.Errorf("opening sequence input: %w", err)
	}
	defer fp.Close()
	s, listSize, err := Build(fp)
	if err != nil {
		return err
	}
	logger.Info("read sequence", "len", s.Len(), "listSize", listSize)

	var before []byte
	if args.Summary {
		before = s.Bytes()
	}
	if err := Edit(s, replaces, deletes); err != nil {
		return err
	}

	if args.Summary {
		sm := NewSummary(before, s.Bytes(), len(replaces), len(deletes))
		if err := sm.Write(args.Sumry); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	w := bufio.NewWriter(args.Wrtr)
	fmt.Fprintf(w, header, args.Label)
	if _, err := NewRenderer(s).WriteTo(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing sequence: %w", err)
	}
	return nil
}
