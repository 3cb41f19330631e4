package huffcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// EncodingTable maps each Symbol to its Code.  Symbols that did not occur in
// the input map to the empty Code.
type EncodingTable [NumSymbols]Code

// NewEncodingTable walks the tree rooted at root and assigns each leaf the
// path that leads to it: '0' for every left branch and '1' for every right
// branch.
func NewEncodingTable(root Node) EncodingTable {
	var table EncodingTable
	path := make([]byte, 0, 2*log2uint32(NumSymbols))

	var walk func(node Node)
	walk = func(node Node) {
		switch x := node.(type) {
		case *Leaf:
			assert.Assertf(x.Symbol.Valid(), "NewEncodingTable: leaf with invalid symbol %d", int32(x.Symbol))
			table[x.Symbol] = Code(path)
		case *Internal:
			path = append(path, '0')
			walk(x.Left)
			path[len(path)-1] = '1'
			walk(x.Right)
			path = path[:len(path)-1]
		default:
			assert.Assertf(false, "NewEncodingTable: unexpected node type %T", node)
		}
	}
	walk(root)

	return table
}

// Lookup returns the Code for a Symbol, or false if the Symbol has none.
func (table *EncodingTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.Valid() {
		return "", false
	}
	hc := table[symbol]
	return hc, hc != ""
}

// Len returns the number of symbols that have a Code.
func (table *EncodingTable) Len() int {
	var n int
	for _, hc := range table {
		if hc != "" {
			n++
		}
	}
	return n
}

// MinSize is the bit length of the shortest legal code.
func (table *EncodingTable) MinSize() int {
	var minSize int
	for _, hc := range table {
		if size := hc.Size(); size != 0 && (minSize == 0 || size < minSize) {
			minSize = size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest legal code.
func (table *EncodingTable) MaxSize() int {
	var maxSize int
	for _, hc := range table {
		if size := hc.Size(); size > maxSize {
			maxSize = size
		}
	}
	return maxSize
}

// SizeBySymbol returns an array containing the bit length for each Symbol in
// the alphabet, 0 for symbols with no Code.
func (table *EncodingTable) SizeBySymbol() []byte {
	out := make([]byte, NumSymbols)
	for symbol, hc := range table {
		out[symbol] = byte(hc.Size())
	}
	return out
}

// IsPrefixFree returns true iff no Code in the table is a prefix of another.
func (table *EncodingTable) IsPrefixFree() bool {
	for i, a := range table {
		if a == "" {
			continue
		}
		for j, b := range table {
			if i != j && b != "" && b.HasPrefix(a) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Symbols with no Code are omitted.
func (table *EncodingTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("EncodingTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", table.MaxSize())
	for symbol, hc := range table {
		if hc != "" {
			fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", Symbol(symbol), hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
