// seqmap maps short sequencing reads against a reference genome with a
// suffix-array index and a seed-and-extend, banded-edit-distance
// verifier, and prints a summary report of the run.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/schv/seqmap/cmd"
)

func main() {
	cfg, err := cmd.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		os.Exit(1)
	}

	if err := cmd.Run(cfg); err != nil {
		log.Fatal(err)
	}
}
