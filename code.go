package huffcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, written as a string of '0' and '1'
// characters.  The first character is the first bit, i.e. the branch taken at
// the root of the tree.
//
// Codes are strings rather than fixed-width integers because a skewed
// 128-symbol tree can be up to 127 levels deep.
type Code string

// Size returns the number of bits in the Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the i'th bit of the Code.
func (hc Code) Bit(i int) bool {
	return hc[i] == '1'
}

// HasPrefix returns true iff prefix is a (possibly equal) prefix of hc.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Validate returns an *InvalidBitCharacterError if the Code contains anything
// other than '0' and '1'.
func (hc Code) Validate() error {
	return validateBits(string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")

func validateBits(bits string) error {
	for index := 0; index < len(bits); index++ {
		if ch := bits[index]; ch != '0' && ch != '1' {
			return &InvalidBitCharacterError{Index: index, Char: ch}
		}
	}
	return nil
}
