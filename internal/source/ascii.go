package source

import (
	"bufio"
	"fmt"
	"io"
)

// ReadASCIIBits reads an ASCII bit stream from r: any number of '0' and
// '1' bytes, with whitespace ignored. Any other byte is a hard parse
// error. It returns one byte (0 or 1) per bit, in the order read.
func ReadASCIIBits(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	var bits []byte

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("source: reading ASCII bit stream: %w", err)
		}

		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		default:
			return nil, fmt.Errorf("source: invalid byte %q in ASCII bit stream", b)
		}
	}
	return bits, nil
}
