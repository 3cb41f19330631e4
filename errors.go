package huffcode

import (
	"errors"
	"fmt"
	"io"
)

// ErrEmptyInput is returned when there are no symbols to build a code from.
var ErrEmptyInput = errors.New("empty input: no symbols to build a Huffman tree from")

// ErrDegenerateTree matches any *DegenerateTreeError via errors.Is.
var ErrDegenerateTree = errors.New("degenerate Huffman tree")

// ErrCorruptStream matches any *CorruptStreamError via errors.Is.
var ErrCorruptStream = errors.New("corrupt Huffman bit stream")

// DegenerateTreeError is returned when a tree cannot be built, either because
// fewer than two weighted entries were supplied or because a set of codes
// does not describe a full binary tree.
type DegenerateTreeError struct {
	Entries int
	Reason  string
}

func (err *DegenerateTreeError) Error() string {
	if err.Reason != "" {
		return fmt.Sprintf("degenerate Huffman tree: %s", err.Reason)
	}
	return fmt.Sprintf("degenerate Huffman tree: need at least 2 entries, got %d", err.Entries)
}

func (err *DegenerateTreeError) Is(target error) bool {
	return target == ErrDegenerateTree
}

// InvalidBitCharacterError is returned when a bit string contains a character
// other than '0' or '1'.  This always indicates a programming error.
type InvalidBitCharacterError struct {
	Index int
	Char  byte
}

func (err *InvalidBitCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at index %d in bit string", err.Char, err.Index)
}

// SymbolRangeError is returned when an input byte falls outside the 7-bit
// alphabet.
type SymbolRangeError struct {
	Offset int
	Value  byte
}

func (err *SymbolRangeError) Error() string {
	return fmt.Sprintf("byte 0x%02x at offset %d is outside the %d-symbol alphabet", err.Value, err.Offset, NumSymbols)
}

// NoEncodingError is returned when asked to encode a symbol that did not
// occur in the input the code was built from.
type NoEncodingError struct {
	Symbol Symbol
}

func (err *NoEncodingError) Error() string {
	return fmt.Sprintf("symbol %v has no encoding", err.Symbol)
}

// CorruptStreamError is returned when the bit stream ends in the middle of a
// code.  Offset is the bit index where the unfinished code starts, and
// Pending is the number of bits it consumed before running out.
type CorruptStreamError struct {
	Offset  int
	Pending int
}

func (err *CorruptStreamError) Error() string {
	return fmt.Sprintf("corrupt Huffman bit stream: %d trailing bits at offset %d do not form a complete code", err.Pending, err.Offset)
}

func (err *CorruptStreamError) Is(target error) bool {
	return target == ErrCorruptStream
}

// IOError wraps a failure of the underlying reader or writer.
type IOError struct {
	Op  string
	Err error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("%s: %v", err.Op, err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// TruncatedError is returned when a packed stream is shorter than expected.
// It matches io.ErrUnexpectedEOF via errors.Is.
type TruncatedError struct {
	Want int64
	Got  int64
}

func (err *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input: expected %d bytes, got %d", err.Want, err.Got)
}

func (err *TruncatedError) Is(target error) bool {
	return target == io.ErrUnexpectedEOF
}

var (
	_ error = (*DegenerateTreeError)(nil)
	_ error = (*InvalidBitCharacterError)(nil)
	_ error = (*SymbolRangeError)(nil)
	_ error = (*NoEncodingError)(nil)
	_ error = (*CorruptStreamError)(nil)
	_ error = (*IOError)(nil)
	_ error = (*TruncatedError)(nil)
)
