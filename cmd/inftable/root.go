package main

import (
	"io"

	"github.com/spf13/cobra"
)

// NewRootCommand returns the inftable command wired to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := NewLoadCommand(stdin, stdout, stderr)
	ccmd := &cobra.Command{
		Use:   "inftable [flags] [key...]",
		Short: "Load keys into an infinite hash table and inspect it",
		Long: `
Loads keys into a recursive character-indexed table and prints the result.

Keys come from the positional arguments (used verbatim, so keys outside 'a'..'z'
are reported as invalid) and from --file ("-" reads stdin), which is split into
words that are lowercased and stripped of non-letters. The value of every key is
the number of times it was seen.
`,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			cmd.Keys = args
			return cmd.Run()
		},
	}

	flags := ccmd.Flags()
	flags.StringSliceVarP(&cmd.Files, "file", "f", nil, "files to read words from")
	flags.StringSliceVarP(&cmd.Deletes, "delete", "d", nil, "keys to delete after loading")
	flags.StringVarP(&cmd.Prefix, "prefix", "p", "", "only print keys with this prefix")
	flags.BoolVar(&cmd.Paths, "paths", false, "print the slot path of every key")
	flags.BoolVar(&cmd.Dump, "dump", false, "print the tree")
	flags.BoolVarP(&cmd.Verbose, "verbose", "v", false, "log splits and collapses")

	return ccmd
}
