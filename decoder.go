package huffcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Decoder implements a decoder for the Huffman codes produced by Encoder.
type Decoder struct {
	root  Node
	table EncodingTable
}

// Init initializes this Decoder from the root of a Huffman tree.  The root
// must be an *Internal node; a tree with fewer than two leaves cannot encode
// anything.
func (d *Decoder) Init(root Node) error {
	if _, ok := root.(*Internal); !ok {
		var entries int
		if root != nil {
			entries = Leaves(root)
		}
		return &DegenerateTreeError{Entries: entries}
	}

	*d = Decoder{
		root:  root,
		table: NewEncodingTable(root),
	}
	return nil
}

// InitFromTable initializes this Decoder by rebuilding the Huffman tree from
// an EncodingTable.
//
// The codes must be prefix-free and complete, i.e. every internal node of the
// rebuilt tree must have two children, and there must be at least two of
// them.  Otherwise a *DegenerateTreeError is returned.
//
// The table holds no probabilities, so each rebuilt leaf is given the weight
// 2^-size, which sums to exactly 1.0 for a complete code.
//
func (d *Decoder) InitFromTable(table EncodingTable) error {
	type buildNode struct {
		symbol Symbol
		left   *buildNode
		right  *buildNode
	}

	var numCodes int
	root := &buildNode{symbol: InvalidSymbol}
	for index, hc := range table {
		if hc == "" {
			continue
		}
		if err := hc.Validate(); err != nil {
			return err
		}

		symbol := Symbol(index)
		node := root
		for i := 0; i < hc.Size(); i++ {
			if node.symbol != InvalidSymbol {
				return &DegenerateTreeError{Reason: fmt.Sprintf("code %s for %v extends the code for %v", hc, symbol, node.symbol)}
			}
			next := &node.left
			if hc.Bit(i) {
				next = &node.right
			}
			if *next == nil {
				*next = &buildNode{symbol: InvalidSymbol}
			}
			node = *next
		}
		if node.symbol != InvalidSymbol || node.left != nil || node.right != nil {
			return &DegenerateTreeError{Reason: fmt.Sprintf("code %s for %v is not prefix-free", hc, symbol)}
		}
		node.symbol = symbol
		numCodes++
	}

	if numCodes < 2 {
		return &DegenerateTreeError{Entries: numCodes}
	}

	var freeze func(node *buildNode, depth int) (Node, error)
	freeze = func(node *buildNode, depth int) (Node, error) {
		if node.symbol != InvalidSymbol {
			return &Leaf{Symbol: node.symbol, Prob: math.Ldexp(1, -depth)}, nil
		}
		if node.left == nil || node.right == nil {
			return nil, &DegenerateTreeError{Reason: fmt.Sprintf("code set is incomplete at depth %d", depth)}
		}
		left, err := freeze(node.left, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := freeze(node.right, depth+1)
		if err != nil {
			return nil, err
		}
		return &Internal{Left: left, Right: right, Prob: left.Probability() + right.Probability()}, nil
	}

	frozen, err := freeze(root, 0)
	if err != nil {
		return err
	}
	assert.Assertf(approxEqual(frozen.Probability(), 1.0), "InitFromTable: root probability is %g, expected 1.0", frozen.Probability())
	return d.Init(frozen)
}

// DecodeBits decodes a string of '0' and '1' characters by walking the tree
// from the root once per output symbol.
//
// If the bits run out partway down the tree, a *CorruptStreamError is
// returned and no output is produced.
//
func (d Decoder) DecodeBits(bits string) ([]byte, error) {
	root, ok := d.root.(*Internal)
	assert.Assertf(ok, "Decoder.DecodeBits: Decoder has not been initialized")

	out := make([]byte, 0, len(bits)/d.table.MinSize())
	pos := 0
	for pos < len(bits) {
		start := pos
		var node Node = root
		for {
			in, isInternal := node.(*Internal)
			if !isInternal {
				break
			}
			if pos >= len(bits) {
				return nil, &CorruptStreamError{Offset: start, Pending: pos - start}
			}
			switch bits[pos] {
			case '0':
				node = in.Left
			case '1':
				node = in.Right
			default:
				return nil, &InvalidBitCharacterError{Index: pos, Char: bits[pos]}
			}
			pos++
		}
		out = append(out, byte(node.(*Leaf).Symbol))
	}
	return out, nil
}

// Decode unpacks bytes produced by Encoder.Encode and decodes them.
func (d Decoder) Decode(packed []byte) ([]byte, error) {
	bits, err := UnpackBits(packed)
	if err != nil {
		return nil, err
	}
	return d.DecodeBits(bits)
}

// Root returns the root of the Huffman tree.
func (d Decoder) Root() Node {
	return d.root
}

// Table returns the encoding table for the tree.
func (d Decoder) Table() EncodingTable {
	return d.table
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.table.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.table.MaxSize())
	keys := make(byCode, 0, NumSymbols)
	for symbol, hc := range d.table {
		if hc != "" {
			keys = append(keys, codeAndSymbol{hc, Symbol(symbol)})
		}
	}
	keys.Sort()
	for _, key := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = %v\n", key.code, key.symbol)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns the output of Dump as a string.
func (d Decoder) DebugString() string {
	var sb strings.Builder
	_, _ = d.Dump(&sb)
	return sb.String()
}

// String returns a brief description of this Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)",
		d.table.Len(), d.table.MinSize(), d.table.MaxSize())
}

// MarshalJSON encodes the Decoder's tree as a JSON object mapping each
// symbol, as a decimal string, to its code.
func (d Decoder) MarshalJSON() ([]byte, error) {
	codes := make(map[string]string, NumSymbols)
	for symbol, hc := range d.table {
		if hc != "" {
			codes[strconv.Itoa(symbol)] = string(hc)
		}
	}
	return json.Marshal(codes)
}

// UnmarshalJSON decodes the format written by MarshalJSON and rebuilds the
// tree with InitFromTable.
func (d *Decoder) UnmarshalJSON(raw []byte) error {
	var codes map[string]string
	if err := json.Unmarshal(raw, &codes); err != nil {
		return err
	}

	var table EncodingTable
	for key, value := range codes {
		n, err := strconv.ParseUint(key, 10, 8)
		if err != nil || !Symbol(n).Valid() {
			return fmt.Errorf("invalid symbol %q in Huffman decoder JSON", key)
		}
		table[n] = Code(value)
	}
	return d.InitFromTable(table)
}

var (
	_ fmt.Stringer     = Decoder{}
	_ json.Marshaler   = Decoder{}
	_ json.Unmarshaler = (*Decoder)(nil)
)

// Decode decodes packed bytes with the given Decoder.
func Decode(packed []byte, d Decoder) ([]byte, error) {
	return d.Decode(packed)
}

// DecodeStream reads all of r, decodes it with d, and writes the result to w
// in a single call.  Read and write failures are returned as *IOError.
//
// If the write fails, w may have received part of the output.
//
func DecodeStream(r io.Reader, w io.Writer, d Decoder) error {
	packed, err := ReadPacked(r, -1)
	if err != nil {
		return err
	}

	out, err := d.Decode(packed)
	if err != nil {
		return err
	}

	if _, err := w.Write(out); err != nil {
		return &IOError{Op: "write decoded output", Err: err}
	}
	return nil
}

// type codeAndSymbol + type byCode {{{

type codeAndSymbol struct {
	code   Code
	symbol Symbol
}

type byCode []codeAndSymbol

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i].code, list[j].code
	if a.Size() != b.Size() {
		return a.Size() < b.Size()
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
