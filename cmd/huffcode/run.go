package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/internal/config"
	"github.com/chronos-tachyon/huffcode/internal/logger"
)

func run(cfg config.Config, logg logger.Logger, stdout io.Writer) error {
	switch cfg.Command {
	case config.Encode:
		return runEncode(cfg, logg)
	case config.Decode:
		return runDecode(cfg, logg)
	case config.Stats:
		return runStats(cfg, logg, stdout)
	}
	return fmt.Errorf("unknown command %q", cfg.Command)
}

func runEncode(cfg config.Config, logg logger.Logger) error {
	input, err := os.ReadFile(cfg.Input)
	if err != nil {
		return &huffcode.IOError{Op: "read input", Err: err}
	}

	var e huffcode.Encoder
	if err := e.Init(input); err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	logg.Debugf("built %v", e)

	packed, err := e.Encode(input)
	if err != nil {
		return err
	}

	tree, err := json.MarshalIndent(e.Decoder(), "", "\t")
	if err != nil {
		return err
	}

	var g errgroup.Group
	g.Go(func() error {
		return writeFile("write packed output", cfg.Output, packed)
	})
	g.Go(func() error {
		return writeFile("write tree", cfg.Tree, append(tree, '\n'))
	})
	if err := g.Wait(); err != nil {
		return err
	}

	logg.Infof("encoded %s (%d bytes) to %s (%d bytes), tree in %s", cfg.Input, len(input), cfg.Output, len(packed), cfg.Tree)
	return nil
}

func runDecode(cfg config.Config, logg logger.Logger) error {
	raw, err := os.ReadFile(cfg.Tree)
	if err != nil {
		return &huffcode.IOError{Op: "read tree", Err: err}
	}

	var d huffcode.Decoder
	if err := json.Unmarshal(raw, &d); err != nil {
		return fmt.Errorf("%s: %w", cfg.Tree, err)
	}
	logg.Debugf("loaded %v", d)

	packed, err := readPackedFile(cfg.Input)
	if err != nil {
		return err
	}

	output, err := d.Decode(packed)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	if err := writeFile("write decoded output", cfg.Output, output); err != nil {
		return err
	}

	logg.Infof("decoded %s (%d bytes) to %s (%d bytes)", cfg.Input, len(packed), cfg.Output, len(output))
	return nil
}

func runStats(cfg config.Config, logg logger.Logger, stdout io.Writer) error {
	input, err := os.ReadFile(cfg.Input)
	if err != nil {
		return &huffcode.IOError{Op: "read input", Err: err}
	}

	var e huffcode.Encoder
	if err := e.Init(input); err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}

	bits, err := e.EncodeBits(input)
	if err != nil {
		return err
	}
	packedLen := len(bits)/8 + 1
	logg.Debugf("%s: %d data bits", cfg.Input, len(bits))

	table := e.Table()
	p := message.NewPrinter(language.English) // For commas between thousands
	p.Fprintf(stdout, "%-6s %12s %10s  %s\n", "symbol", "count", "prob", "code")
	for i := len(e.Frequencies()) - 1; i >= 0; i-- {
		fe := e.Frequencies()[i]
		count := int(fe.Probability*float64(len(input)) + 0.5)
		hc, _ := table.Lookup(fe.Symbol)
		p.Fprintf(stdout, "%-6v %12d %10.6f  %s\n", fe.Symbol, count, fe.Probability, string(hc))
	}
	p.Fprintf(stdout, "\n")
	p.Fprintf(stdout, "input:    %d bytes\n", len(input))
	p.Fprintf(stdout, "packed:   %d bytes (%.1f%%)\n", packedLen, 100*float64(packedLen)/float64(len(input)))
	p.Fprintf(stdout, "average:  %.3f bits/symbol\n", float64(len(bits))/float64(len(input)))
	p.Fprintf(stdout, "lengths:  %d .. %d bits\n", table.MinSize(), table.MaxSize())
	return nil
}

func readPackedFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &huffcode.IOError{Op: "read packed input", Err: err}
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, &huffcode.IOError{Op: "read packed input", Err: err}
	}
	return huffcode.ReadPacked(f, fi.Size())
}

func writeFile(op string, path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return &huffcode.IOError{Op: op, Err: err}
	}
	return nil
}
