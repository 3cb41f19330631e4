// Package config parses the huffcode command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Command selects what the tool does.
type Command string

const (
	Encode Command = "encode"
	Decode Command = "decode"
	Stats  Command = "stats"
)

// VerboseEnv enables debug logging when set to a true value and -v is absent.
const VerboseEnv = "HUFFCODE_VERBOSE"

type Config struct {
	Command Command
	Input   string
	Output  string
	Tree    string
	Verbose bool
}

// ErrUsage is returned when no subcommand is given.
var ErrUsage = errors.New("usage: huffcode {encode|decode|stats} [flags]")

// Load parses args, which must not include the program name.  Flag parsing
// messages are written to stderr.
func Load(args []string, stderr io.Writer) (Config, error) {
	if len(args) == 0 {
		return Config{}, ErrUsage
	}

	cfg := Config{Command: Command(args[0])}
	switch cfg.Command {
	case Encode, Decode, Stats:
	default:
		return Config{}, fmt.Errorf("unknown command %q: %w", args[0], ErrUsage)
	}

	if v := os.Getenv(VerboseEnv); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s value %q: %w", VerboseEnv, v, err)
		}
		cfg.Verbose = verbose
	}

	fs := flag.NewFlagSet("huffcode "+args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Input, "in", "", "input file")
	fs.StringVar(&cfg.Output, "out", "", "output file")
	fs.StringVar(&cfg.Tree, "tree", "", "Huffman tree file (JSON), written by encode and read by decode")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	if err := fs.Parse(args[1:]); err != nil {
		return Config{}, err
	}
	if fs.NArg() != 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch {
	case cfg.Input == "":
		return cfg.missing("in")
	case cfg.Command == Stats:
		return nil
	case cfg.Output == "":
		return cfg.missing("out")
	case cfg.Tree == "":
		return cfg.missing("tree")
	}
	return nil
}

func (cfg Config) missing(name string) error {
	return fmt.Errorf("%s: missing required flag -%s", cfg.Command, name)
}
