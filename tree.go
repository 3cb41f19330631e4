package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Epsilon is the tolerance used when comparing probability sums against 1.0.
const Epsilon = 1e-9

// Node is a node in a Huffman tree.  It is either a *Leaf or an *Internal.
type Node interface {
	// Probability returns the total probability of the leaves under this
	// node.
	Probability() float64

	isNode()
}

// Leaf is a tree node holding exactly one symbol.
type Leaf struct {
	Symbol Symbol
	Prob   float64
}

// Internal is a tree node with exactly two children and no symbol of its own.
type Internal struct {
	Left  Node
	Right Node
	Prob  float64
}

func (leaf *Leaf) Probability() float64   { return leaf.Prob }
func (in *Internal) Probability() float64 { return in.Prob }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree builds a Huffman tree from a sorted FrequencyTable and returns its
// root.
//
// The construction uses two FIFO queues: "source" holds the leaves in table
// order and "merged" holds the internal nodes in creation order.  Since each
// merged node weighs at least as much as the one before it, both queues stay
// sorted, and the two lightest nodes are always found at their fronts.  Each
// pick takes from source if its front is no heavier than merged's front (ties
// favor leaves), and the first pick of a pair becomes the left child.
//
// The exact tie-breaking rules determine the shape of the tree, and therefore
// the bits that Encoder produces.  Do not change them.
//
func BuildTree(ft FrequencyTable) (Node, error) {
	if len(ft) < 2 {
		return nil, &DegenerateTreeError{Entries: len(ft)}
	}

	source := newNodeQueue(len(ft))
	for _, fe := range ft {
		assert.Assertf(!fe.Merged(), "BuildTree: unexpected merged entry in FrequencyTable")
		source.Push(&Leaf{Symbol: fe.Symbol, Prob: fe.Probability})
	}

	merged := newNodeQueue(len(ft) - 1)
	for source.Len()+merged.Len() > 1 {
		left := pickLightest(source, merged)
		right := pickLightest(source, merged)
		merged.Push(&Internal{
			Left:  left,
			Right: right,
			Prob:  left.Probability() + right.Probability(),
		})
	}

	root := merged.Pop()
	assert.Assertf(approxEqual(root.Probability(), 1.0), "BuildTree: root probability is %g, expected 1.0", root.Probability())
	return root, nil
}

func pickLightest(source, merged *nodeQueue) Node {
	switch {
	case merged.Len() == 0:
		return source.Pop()
	case source.Len() == 0:
		return merged.Pop()
	case source.Peek().Probability() <= merged.Peek().Probability():
		return source.Pop()
	default:
		return merged.Pop()
	}
}

// Leaves returns the number of leaves under the given node.
func Leaves(node Node) int {
	switch x := node.(type) {
	case *Leaf:
		return 1
	case *Internal:
		return Leaves(x.Left) + Leaves(x.Right)
	default:
		return 0
	}
}

// DumpTree writes a programmer-readable debugging dump of the tree rooted at
// node to the given writer.  Each line is indented by depth; the left child is
// printed before the right.
func DumpTree(w io.Writer, node Node) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	dumpNode(&buf, node, 1)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, node Node, depth int) {
	indent := strings.Repeat("\t", depth)
	switch x := node.(type) {
	case *Leaf:
		fmt.Fprintf(buf, "%sLeaf(%v, %g)\n", indent, x.Symbol, x.Prob)
	case *Internal:
		fmt.Fprintf(buf, "%sInternal(%g)\n", indent, x.Prob)
		dumpNode(buf, x.Left, depth+1)
		dumpNode(buf, x.Right, depth+1)
	}
}

// type nodeQueue {{{

type nodeQueue struct {
	list []Node
	head int
}

func newNodeQueue(capacity int) *nodeQueue {
	return &nodeQueue{list: make([]Node, 0, capacity)}
}

func (q *nodeQueue) Len() int {
	return len(q.list) - q.head
}

func (q *nodeQueue) Push(node Node) {
	q.list = append(q.list, node)
}

func (q *nodeQueue) Peek() Node {
	return q.list[q.head]
}

func (q *nodeQueue) Pop() Node {
	node := q.list[q.head]
	q.list[q.head] = nil
	q.head++
	return node
}

// }}}
