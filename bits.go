package huffcode

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// PackBits packs a string of '0' and '1' characters into bytes, most
// significant bit first.
//
// The data bits are preceded by 1 to 8 padding bits, chosen so that the total
// is a multiple of 8: padLen-1 zero bits followed by a single one bit (the
// sentinel).  A bit string whose length is already a multiple of 8 therefore
// gains a whole byte of padding, 0x01.
//
func PackBits(bits string) ([]byte, error) {
	if err := validateBits(bits); err != nil {
		return nil, err
	}

	padLen := 8 - len(bits)%8

	var buf bytes.Buffer
	buf.Grow((padLen + len(bits)) / 8)
	w := bitio.NewWriter(&buf)

	if err := w.WriteBits(1, uint8(padLen)); err != nil {
		return nil, err
	}
	for index := 0; index < len(bits); index++ {
		if err := w.WriteBool(bits[index] == '1'); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits reverses PackBits: it expands data into a string of '0' and '1'
// characters and strips the padding up to and including the sentinel bit.
//
// The sentinel must appear within the first 8 bits.  If the first byte is
// zero the input was not produced by PackBits; in that case the first 8 bits
// are dropped and the rest is returned as-is, which is unlikely to decode to
// anything meaningful.
//
func UnpackBits(data []byte) (string, error) {
	if len(data) == 0 {
		return "", &TruncatedError{Want: 1, Got: 0}
	}

	var sb strings.Builder
	sb.Grow(8 * len(data))
	r := bitio.NewReader(bytes.NewReader(data))
	for {
		bit, err := r.ReadBool()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", &IOError{Op: "unpack bits", Err: err}
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	bits := sb.String()
	for index := 0; index < 8; index++ {
		if bits[index] == '1' {
			return bits[index+1:], nil
		}
	}
	return bits[8:], nil
}

// ReadPacked reads a packed stream from r.  If size is non-negative, exactly
// size bytes are expected and a short read yields a *TruncatedError;
// otherwise r is read until EOF.  Other read failures yield an *IOError.
func ReadPacked(r io.Reader, size int64) ([]byte, error) {
	if size < 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, &IOError{Op: "read packed input", Err: err}
		}
		return data, nil
	}

	data := make([]byte, size)
	n, err := io.ReadFull(r, data)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		return nil, &TruncatedError{Want: size, Got: int64(n)}
	default:
		return nil, &IOError{Op: "read packed input", Err: err}
	}
}
