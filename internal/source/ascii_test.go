package source

import (
	"strings"
	"testing"
)

func TestReadASCIIBitsSkipsWhitespace(t *testing.T) {
	bits, err := ReadASCIIBits(strings.NewReader("10 1\n1\t0"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{1, 0, 1, 1, 0}
	if !bitsEqual(bits, want) {
		t.Fatalf("ReadASCIIBits() = %v, want %v", bits, want)
	}
}

func TestReadASCIIBitsRejectsInvalidByte(t *testing.T) {
	if _, err := ReadASCIIBits(strings.NewReader("102")); err == nil {
		t.Fatal("expected error for invalid byte in ASCII bit stream")
	}
}
