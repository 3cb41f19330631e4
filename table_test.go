package huffcode

import (
	"bytes"
	"strings"
	"testing"
)

func mustTable(t *testing.T, input string) EncodingTable {
	t.Helper()
	root, err := BuildTree(mustFrequencyTable(t, input))
	if err != nil {
		t.Fatalf("BuildTree(%q) failed: %v", input, err)
	}
	return NewEncodingTable(root)
}

func TestNewEncodingTable(t *testing.T) {
	table := mustTable(t, "abracadabra")

	expectDump := strings.Join([]string{
		"EncodingTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 3\n",
		"\tEncode('a') = \"0\"\n",
		"\tEncode('b') = \"110\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('r') = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()
	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if n := table.Len(); n != 5 {
		t.Errorf("expected 5 codes, got %d", n)
	}

	expectSizes := make([]byte, NumSymbols)
	expectSizes['a'] = 1
	expectSizes['b'] = 3
	expectSizes['c'] = 3
	expectSizes['d'] = 3
	expectSizes['r'] = 3
	actualSizes := table.SizeBySymbol()
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestEncodingTable_Lookup(t *testing.T) {
	table := mustTable(t, "AAAAB")

	type testRow struct {
		symbol Symbol
		code   Code
		ok     bool
	}

	testData := [...]testRow{
		{symbol: 'A', code: "1", ok: true},
		{symbol: 'B', code: "0", ok: true},
		{symbol: 'C', code: "", ok: false},
		{symbol: InvalidSymbol, code: "", ok: false},
		{symbol: NumSymbols, code: "", ok: false},
	}
	for _, row := range testData {
		t.Run(row.symbol.String(), func(t *testing.T) {
			code, ok := table.Lookup(row.symbol)
			if code != row.code || ok != row.ok {
				t.Errorf("expected (%s, %v), got (%s, %v)", row.code, row.ok, code, ok)
			}
		})
	}
}

func TestEncodingTable_Singleton(t *testing.T) {
	table := mustTable(t, "aaaaaaaaaa")
	if code, _ := table.Lookup('a'); code != "1" {
		t.Errorf("expected 'a' to map to \"1\", got %s", code)
	}
	if code, _ := table.Lookup('b'); code != "0" {
		t.Errorf("expected 'b' to map to \"0\", got %s", code)
	}
}

func TestEncodingTable_PrefixFree(t *testing.T) {
	inputs := []string{
		"AAAAB",
		"abracadabra",
		"hello, world",
		"Mississippi River\r\n\tsteamboat",
		allSymbols(),
		fibonacciInput(10),
	}
	for _, input := range inputs {
		table := mustTable(t, input)
		if !table.IsPrefixFree() {
			t.Errorf("%q: table is not prefix-free", input)
		}
		for i := 0; i < len(input); i++ {
			if _, ok := table.Lookup(Symbol(input[i])); !ok {
				t.Errorf("%q: symbol %v has no code", input, Symbol(input[i]))
			}
		}
		if table.MinSize() < 1 {
			t.Errorf("%q: found an empty code", input)
		}
	}
}

func TestEncodingTable_Skewed(t *testing.T) {
	table := mustTable(t, fibonacciInput(10))
	if n := table.MaxSize(); n != 9 {
		t.Errorf("expected MaxSize 9, got %d", n)
	}
	if code, _ := table.Lookup('9'); code != "0" {
		t.Errorf("expected '9' to map to \"0\", got %s", code)
	}
	if code, _ := table.Lookup('0'); code != "111111110" {
		t.Errorf("expected '0' to map to \"111111110\", got %s", code)
	}
}

func TestEncodingTable_NotPrefixFree(t *testing.T) {
	var table EncodingTable
	table['a'] = "0"
	table['b'] = "01"
	if table.IsPrefixFree() {
		t.Errorf("expected IsPrefixFree to report false")
	}
}

// fibonacciInput returns n distinct symbols starting at '0' whose counts
// follow the Fibonacci sequence, which yields the deepest possible tree.
func fibonacciInput(n int) string {
	var sb strings.Builder
	a, b := 1, 1
	for i := 0; i < n; i++ {
		sb.WriteString(strings.Repeat(string(rune('0'+i)), a))
		a, b = b, a+b
	}
	return sb.String()
}
