package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// FrequencyEntry pairs a Symbol with its probability of occurrence.  Entries
// for merged subtrees carry InvalidSymbol.
type FrequencyEntry struct {
	Symbol      Symbol
	Probability float64
}

// Merged returns true iff this entry stands for a merged subtree rather than
// an input symbol.
func (fe FrequencyEntry) Merged() bool {
	return fe.Symbol == InvalidSymbol
}

// Less reports whether fe sorts before other: by probability ascending, then
// by symbol ascending.  Merged entries sort before real symbols of equal
// probability.
func (fe FrequencyEntry) Less(other FrequencyEntry) bool {
	if fe.Probability != other.Probability {
		return fe.Probability < other.Probability
	}
	return fe.Symbol < other.Symbol
}

// FrequencyTable is the list of symbols observed in an input, sorted by
// ascending probability.
type FrequencyTable []FrequencyEntry

// NewFrequencyTable scans input and returns one entry per distinct symbol,
// with probability count/len(input), in the order defined by
// FrequencyEntry.Less.
//
// If only one distinct symbol occurs, a second entry with probability 0 is
// added for the next symbol up (wrapping from MaxSymbol to 0), so that the
// tree always has at least two leaves and every real symbol gets a code of at
// least one bit.
//
func NewFrequencyTable(input []byte) (FrequencyTable, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	var counts [NumSymbols]uint64
	for offset, b := range input {
		if Symbol(b) > MaxSymbol {
			return nil, &SymbolRangeError{Offset: offset, Value: b}
		}
		counts[b]++
	}

	total := float64(len(input))
	ft := make(FrequencyTable, 0, NumSymbols)
	for symbol := Symbol(0); symbol < NumSymbols; symbol++ {
		if count := counts[symbol]; count != 0 {
			ft = append(ft, FrequencyEntry{symbol, float64(count) / total})
		}
	}

	if len(ft) == 1 {
		ft = append(ft, FrequencyEntry{nextUnusedSymbol(&counts, ft[0].Symbol), 0.0})
	}

	ft.Sort()
	return ft, nil
}

// Len returns the number of entries.
func (ft FrequencyTable) Len() int {
	return len(ft)
}

// Swap exchanges two entries.
func (ft FrequencyTable) Swap(i, j int) {
	ft[i], ft[j] = ft[j], ft[i]
}

// Less compares two entries using FrequencyEntry.Less.
func (ft FrequencyTable) Less(i, j int) bool {
	return ft[i].Less(ft[j])
}

// Sort sorts the table in place.
func (ft FrequencyTable) Sort() {
	sort.Stable(ft)
}

// Sum returns the total probability of all entries.  For any table returned
// by NewFrequencyTable this is 1.0, within Epsilon.
func (ft FrequencyTable) Sum() float64 {
	var sum float64
	for _, fe := range ft {
		sum += fe.Probability
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	for _, fe := range ft {
		fmt.Fprintf(&buf, "\t%v = %g\n", fe.Symbol, fe.Probability)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ sort.Interface = FrequencyTable(nil)

func nextUnusedSymbol(counts *[NumSymbols]uint64, symbol Symbol) Symbol {
	for i := Symbol(1); i < NumSymbols; i++ {
		candidate := symbol + i
		if candidate > MaxSymbol {
			return 0
		}
		if counts[candidate] == 0 {
			return candidate
		}
	}
	return 0
}
