package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder implements a Huffman encoder whose code is derived from the input
// it will encode.
type Encoder struct {
	freqs FrequencyTable
	root  Node
	table EncodingTable
}

// Init initializes this Encoder from the given input: it measures the symbol
// probabilities, builds the Huffman tree, and derives the encoding table.
//
// Init fails with ErrEmptyInput if input is empty, and with a
// *SymbolRangeError if any byte lies outside the 7-bit alphabet.
//
func (e *Encoder) Init(input []byte) error {
	freqs, err := NewFrequencyTable(input)
	if err != nil {
		return err
	}

	root, err := BuildTree(freqs)
	if err != nil {
		return err
	}

	*e = Encoder{
		freqs: freqs,
		root:  root,
		table: NewEncodingTable(root),
	}
	return nil
}

// EncodeBits maps every byte of input through the encoding table and returns
// the concatenated codes as a string of '0' and '1' characters.
func (e Encoder) EncodeBits(input []byte) (string, error) {
	var sb strings.Builder
	sb.Grow(len(input) * e.table.MinSize())
	for offset, b := range input {
		symbol := Symbol(b)
		if !symbol.Valid() {
			return "", &SymbolRangeError{Offset: offset, Value: b}
		}
		hc, ok := e.table.Lookup(symbol)
		if !ok {
			return "", &NoEncodingError{Symbol: symbol}
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}

// Encode encodes input and packs the result into bytes with PackBits.
func (e Encoder) Encode(input []byte) ([]byte, error) {
	bits, err := e.EncodeBits(input)
	if err != nil {
		return nil, err
	}
	return PackBits(bits)
}

// Frequencies returns the sorted frequency table measured by Init.
func (e Encoder) Frequencies() FrequencyTable {
	return e.freqs
}

// Root returns the root of the Huffman tree built by Init.
func (e Encoder) Root() Node {
	return e.root
}

// Table returns the encoding table derived by Init.
func (e Encoder) Table() EncodingTable {
	return e.table
}

// Decoder returns a Decoder for the same tree.
func (e Encoder) Decoder() Decoder {
	var d Decoder
	err := d.Init(e.root)
	assert.Assertf(err == nil, "Encoder.Decoder: %v", err)
	return d
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.table.MaxSize())
	for _, fe := range e.freqs {
		hc := e.table[fe.Symbol]
		if hc == "" {
			fmt.Fprintf(&buf, "\tEncode(%v) = nil\n", fe.Symbol)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", fe.Symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Encoder.
func (e Encoder) String() string {
	return fmt.Sprintf("(Huffman encoder with %d symbols, with coded lengths of %d .. %d bits)",
		e.table.Len(), e.table.MinSize(), e.table.MaxSize())
}

var _ fmt.Stringer = Encoder{}

// Encode builds a code from input, encodes input with it, and returns the
// packed bytes together with a Decoder for the same code.
func Encode(input []byte) ([]byte, Decoder, error) {
	var e Encoder
	if err := e.Init(input); err != nil {
		return nil, Decoder{}, err
	}
	packed, err := e.Encode(input)
	if err != nil {
		return nil, Decoder{}, err
	}
	return packed, e.Decoder(), nil
}

// EncodeStream reads all of r, encodes it, and writes the packed bytes to w
// in a single call.  Read and write failures are returned as *IOError.
//
// If the write fails, w may have received part of the output.
//
func EncodeStream(r io.Reader, w io.Writer) (Decoder, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return Decoder{}, &IOError{Op: "read input", Err: err}
	}

	packed, d, err := Encode(input)
	if err != nil {
		return Decoder{}, err
	}

	if _, err := w.Write(packed); err != nil {
		return Decoder{}, &IOError{Op: "write packed output", Err: err}
	}
	return d, nil
}
