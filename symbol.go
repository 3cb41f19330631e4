package huffcode

import (
	"fmt"
	"strconv"
)

// Symbol represents a symbol in the 7-bit alphabet.  Negative symbols are not
// valid.
type Symbol int32

// NumSymbols is the size of the alphabet.
const NumSymbols = 128

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Merged frequency entries also carry it.
const InvalidSymbol = Symbol(-1)

// Valid returns true iff the symbol lies within the alphabet.
func (s Symbol) Valid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns a quoted character for printable symbols and a hex escape
// for everything else.
func (s Symbol) String() string {
	switch {
	case s == InvalidSymbol:
		return "nil"
	case s >= 0x20 && s < 0x7f:
		return strconv.QuoteRune(rune(s))
	default:
		return fmt.Sprintf("0x%02x", int32(s))
	}
}

var _ fmt.Stringer = Symbol(0)
