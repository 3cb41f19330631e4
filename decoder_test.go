package huffcode

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
)

func makeTestDecoder() Decoder {
	var e Encoder
	err := e.Init([]byte("aaaabbcd"))
	if err != nil {
		panic(err)
	}
	return e.Decoder()
}

var testDecoderDebug = strings.Join([]string{
	"Decoder{\n",
	"\tMinSize() = 1\n",
	"\tMaxSize() = 3\n",
	"\tDecode(\"0\") = 'a'\n",
	"\tDecode(\"10\") = 'b'\n",
	"\tDecode(\"110\") = 'c'\n",
	"\tDecode(\"111\") = 'd'\n",
	"}\n",
}, "")

func TestDecoder_DecodeBits(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{bits: "", expect: ""},
		{bits: "0", expect: "a"},
		{bits: "10", expect: "b"},
		{bits: "110111", expect: "cd"},
		{bits: "00001010110111", expect: "aaaabbcd"},
		{bits: "1111111101000", expect: "ddcbaa"},
	}
	for _, row := range testData {
		t.Run(Code(row.bits).String(), func(t *testing.T) {
			out, err := d.DecodeBits(row.bits)
			if err != nil {
				t.Fatalf("DecodeBits failed: %v", err)
			}
			if row.expect != string(out) {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, out)
			}
		})
	}
}

func TestDecoder_Corrupt(t *testing.T) {
	d := makeTestDecoder()

	type testRow struct {
		bits    string
		offset  int
		pending int
	}

	testData := [...]testRow{
		{bits: "1", offset: 0, pending: 1},
		{bits: "01", offset: 1, pending: 1},
		{bits: "011", offset: 1, pending: 2},
		{bits: "011111", offset: 4, pending: 2},
	}
	for _, row := range testData {
		t.Run(Code(row.bits).String(), func(t *testing.T) {
			out, err := d.DecodeBits(row.bits)
			if !errors.Is(err, ErrCorruptStream) {
				t.Fatalf("expected ErrCorruptStream, got %q, %v", out, err)
			}
			var corrupt *CorruptStreamError
			if errors.As(err, &corrupt) && (corrupt.Offset != row.offset || corrupt.Pending != row.pending) {
				t.Errorf("expected offset %d pending %d, got offset %d pending %d", row.offset, row.pending, corrupt.Offset, corrupt.Pending)
			}
		})
	}
}

func TestDecoder_InvalidBit(t *testing.T) {
	d := makeTestDecoder()
	var bitErr *InvalidBitCharacterError
	if _, err := d.DecodeBits("0x"); !errors.As(err, &bitErr) {
		t.Errorf("expected *InvalidBitCharacterError, got %v", err)
	}
}

func TestDecoder_Decode(t *testing.T) {
	d := makeTestDecoder()
	out, err := d.Decode([]byte{0x42, 0xb7})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "aaaabbcd" {
		t.Errorf("wrong output: %q", out)
	}

	if _, err := d.Decode(nil); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected truncation error, got %v", err)
	}
}

func TestDecoder_DebugString(t *testing.T) {
	d := makeTestDecoder()

	actualDebug := d.DebugString()
	if testDecoderDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", testDecoderDebug, actualDebug)
	}
}

func TestDecoder_String(t *testing.T) {
	d := makeTestDecoder()

	expectString := "(Huffman decoder with 4 symbols, with coded lengths of 1 .. 3 bits)"
	actualString := d.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestDecoder_MarshalJSON(t *testing.T) {
	d := makeTestDecoder()

	raw, err := json.Marshal(d)
	if err != nil {
		t.Errorf("json.Marshal failed: %v", err)
	}
	expectJSON := `{"100":"111","97":"0","98":"10","99":"110"}`
	actualJSON := string(raw)
	if expectJSON != actualJSON {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectJSON, actualJSON)
	}
}

func TestDecoder_UnmarshalJSON(t *testing.T) {
	raw := []byte(`{"97":"0","98":"10","99":"110","100":"111"}`)

	var d Decoder
	err := json.Unmarshal(raw, &d)
	if err != nil {
		t.Fatalf("json.Unmarshal failed: %v", err)
	}

	actualDebug := d.DebugString()
	if testDecoderDebug != actualDebug {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", testDecoderDebug, actualDebug)
	}

	out, err := d.Decode([]byte{0x42, 0xb7})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if string(out) != "aaaabbcd" {
		t.Errorf("wrong output: %q", out)
	}
}

func TestDecoder_UnmarshalJSON_Invalid(t *testing.T) {
	inputs := []string{
		`[1,2,3]`,
		`{"x":"0","98":"1"}`,
		`{"128":"0","98":"1"}`,
		`{"97":"0","98":"2"}`,
		`{"97":"0"}`,
	}
	for _, input := range inputs {
		var d Decoder
		if err := json.Unmarshal([]byte(input), &d); err == nil {
			t.Errorf("%s: expected an error", input)
		}
	}
}

func TestDecoder_InitFromTable(t *testing.T) {
	type testRow struct {
		name  string
		codes map[Symbol]Code
		ok    bool
	}

	testData := [...]testRow{
		{name: "Complete", codes: map[Symbol]Code{'a': "0", 'b': "10", 'c': "11"}, ok: true},
		{name: "Prefix", codes: map[Symbol]Code{'a': "0", 'b': "01", 'c': "1"}},
		{name: "Extends", codes: map[Symbol]Code{'a': "01", 'b': "0", 'c': "1"}},
		{name: "Duplicate", codes: map[Symbol]Code{'a': "0", 'b': "0", 'c': "1"}},
		{name: "Incomplete", codes: map[Symbol]Code{'a': "0", 'b': "10"}},
		{name: "Single", codes: map[Symbol]Code{'a': "0"}},
		{name: "Empty", codes: map[Symbol]Code{}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var table EncodingTable
			for symbol, hc := range row.codes {
				table[symbol] = hc
			}

			var d Decoder
			err := d.InitFromTable(table)
			if row.ok {
				if err != nil {
					t.Fatalf("InitFromTable failed: %v", err)
				}
				if d.Table() != table {
					t.Errorf("rebuilt table differs from the original")
				}
				return
			}
			if !errors.Is(err, ErrDegenerateTree) {
				t.Errorf("expected ErrDegenerateTree, got %v", err)
			}
		})
	}
}

func TestDecoder_InitFromTable_MatchesEncoder(t *testing.T) {
	for _, input := range []string{"abracadabra", allSymbols(), fibonacciInput(20)} {
		var e Encoder
		if err := e.Init([]byte(input)); err != nil {
			t.Fatalf("Encoder.Init failed: %v", err)
		}

		var d Decoder
		if err := d.InitFromTable(e.Table()); err != nil {
			t.Fatalf("InitFromTable failed: %v", err)
		}

		packed, err := e.Encode([]byte(input))
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		out, err := d.Decode(packed)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if input != string(out) {
			t.Errorf("wrong round trip:\n\texpect: %q\n\tactual: %q", input, out)
		}
	}
}

func TestDecoder_InitDegenerate(t *testing.T) {
	var d Decoder
	if err := d.Init(nil); !errors.Is(err, ErrDegenerateTree) {
		t.Errorf("expected ErrDegenerateTree for nil root, got %v", err)
	}
	if err := d.Init(&Leaf{Symbol: 'a', Prob: 1}); !errors.Is(err, ErrDegenerateTree) {
		t.Errorf("expected ErrDegenerateTree for leaf root, got %v", err)
	}
}
