// 17 Oct 2026

/*
Randseq writes a random protein sequence for trying out protein.
Usage:
	randseq [flags] length

The sequence goes to standard output with a newline every 60 residues,
so it looks like it came from a file.

Flags:
	-d n
		also write n delete commands, in increasing order, to standard
		error. They can be pasted onto the protein command line.
	-r seed
		random number seed
	-w width
		residues per line
*/
package main
