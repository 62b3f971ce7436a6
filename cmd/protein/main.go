// 16 Oct 2026
// Edit a protein sequence by position and print it in numbered rows.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/seq_edit/pkg/config"
	"github.com/andrew-torda/seq_edit/pkg/logger"
	"github.com/andrew-torda/seq_edit/pkg/protein"
	. "github.com/andrew-torda/seq_edit/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] label [command ...]")
	long := `Commands are dNN to delete position NN, or oNNn to replace position NN with n.
The sequence is read from stdin unless -f is given.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func mymain() int {
	var args protein.CmdArgs
	cfgFile := flag.String("c", "", "settings file (TOML)")
	flag.StringVar(&args.Infile, "f", "", "read sequence from file, not stdin")
	summary := flag.Bool("s", false, "summary of changes on stderr")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Need at least a label")
		usage()
		return ExitUsageError
	}

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	if err := logger.Init(*verbose || cfg.Log.Debug, cfg.Log.File); err != nil {
		fmt.Fprintln(os.Stderr, "starting logger:", err)
		return ExitFailure
	}
	defer logger.Close()

	if args.Infile == "" {
		args.Infile = cfg.Input.File
	}
	args.Summary = *summary || cfg.Report.Summary
	args.Label = flag.Arg(0)
	args.Cmds = flag.Args()[1:]

	if err := protein.Mymain(&args); err != nil {
		logger.Debug("giving up", "err", err)
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
