// 16 Oct 2026

/*
Protein reads a protein sequence, deletes and replaces residues at given
positions and prints the result in numbered rows.

Usage:
	protein [flags] label [command ...]

The sequence is read from standard input unless -f is given. It may be
gzipped. Newlines are thrown away, everything else is a residue.

The label is only used in the header, so
	protein 6VSB d3 < spike.txt
starts its output with
	Spike protein sequence for 6VSB:

There are two kinds of command.
	d12
		delete the residue at position 12
	K12R
		replace the residue at position 12 with R. The first character
		is the old residue. It is not checked, but it has to be there.

All the replacements are done first, then the deletions, each in the
order they were given. Positions are always those of the sequence as it
was read in. After a deletion, everything later has moved down by one.
The code allows for this, but only if deletions are given in increasing
order, so
	protein x d5 d9
removes the residues that were originally at 5 and 9, but
	protein x d9 d5
does not do what you want.

The output has rows of 50 residues in groups of 10. Above each row is a
line of position numbers, one per group.

The flags are:
	-c file
		Read settings from this TOML file. Without it, $PROTEIN_CONFIG
		and then ~/.config/protein/config.toml are tried.
	-f file
		Read the sequence from a file instead of standard input.
	-s
		Write a summary of the changes to standard error.
	-v
		Debug logging on standard error.

A position beyond the end of the sequence or a command that cannot be
read stops the program before anything is written. The exit status is 1
then, and 2 for a usage error.
*/
package main
