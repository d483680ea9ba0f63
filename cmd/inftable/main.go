// Command inftable loads words into an inftable.Table and prints what the table
// looks like: its sorted keys, the slot path of every key and the tree itself.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
