// Command huffcode compresses and decompresses 7-bit ASCII files with
// Huffman coding.
//
//	huffcode encode -in FILE -out PACKED -tree TREE.json
//	huffcode decode -in PACKED -tree TREE.json -out FILE
//	huffcode stats -in FILE
//
// The packed file does not contain the tree, so encode writes it to a
// separate JSON file that decode needs.  If a command fails, output files it
// had already started writing are left in place.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logg := logger.New(os.Stderr, cfg.Verbose)
	if err := run(cfg, logg, os.Stdout); err != nil {
		logg.Errorf("%s: %v", cfg.Command, err)
		os.Exit(1)
	}
}
