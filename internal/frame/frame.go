// Package frame implements the optional byte-payload envelope the CLI
// tools wrap around raw data before exploding it into the bit slice a
// BitsSource walks: CLI glue layered strictly above the core modulation
// pipeline, which never imports this package.
package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/nwillc/gomodem/internal/fec"
)

// Frame types.
const (
	TypeData    byte = 0x01
	TypeControl byte = 0x02
)

// Frame size limits.
const (
	HeaderSize = 4
	CRCSize    = 4
)

// Frame is the wire envelope: [Type(1B)][SeqNum(1B)][PayloadLen(2B)][Payload][CRC32(4B)].
type Frame struct {
	Type       byte
	SeqNum     byte
	PayloadLen uint16
	Payload    []byte
}

// NewDataFrame builds a DATA frame carrying payload at sequence number
// seqNum.
func NewDataFrame(seqNum byte, payload []byte) *Frame {
	return &Frame{Type: TypeData, SeqNum: seqNum, PayloadLen: uint16(len(payload)), Payload: payload}
}

// Encode serializes the frame to bytes with a trailing CRC-32.
func (f *Frame) Encode() []byte {
	totalLen := HeaderSize + int(f.PayloadLen) + CRCSize
	buf := make([]byte, totalLen)

	buf[0] = f.Type
	buf[1] = f.SeqNum
	binary.BigEndian.PutUint16(buf[2:4], f.PayloadLen)
	if f.PayloadLen > 0 {
		copy(buf[HeaderSize:], f.Payload[:f.PayloadLen])
	}

	checksum := fec.CRC32(buf[:HeaderSize+int(f.PayloadLen)])
	binary.BigEndian.PutUint32(buf[totalLen-CRCSize:], checksum)
	return buf
}

// Decode deserializes bytes into a Frame, verifying the trailing CRC-32.
func Decode(data []byte) (*Frame, error) {
	if len(data) < HeaderSize+CRCSize {
		return nil, fmt.Errorf("frame: too short: %d bytes", len(data))
	}

	f := &Frame{
		Type:       data[0],
		SeqNum:     data[1],
		PayloadLen: binary.BigEndian.Uint16(data[2:4]),
	}

	expectedLen := HeaderSize + int(f.PayloadLen) + CRCSize
	if len(data) < expectedLen {
		return nil, fmt.Errorf("frame: truncated: have %d bytes, need %d", len(data), expectedLen)
	}

	dataForCRC := data[:HeaderSize+int(f.PayloadLen)]
	expectedCRC := binary.BigEndian.Uint32(data[expectedLen-CRCSize : expectedLen])
	if actual := fec.CRC32(dataForCRC); actual != expectedCRC {
		return nil, fmt.Errorf("frame: CRC mismatch: expected 0x%08x, got 0x%08x", expectedCRC, actual)
	}

	if f.PayloadLen > 0 {
		f.Payload = make([]byte, f.PayloadLen)
		copy(f.Payload, data[HeaderSize:HeaderSize+int(f.PayloadLen)])
	}
	return f, nil
}

// ToBits explodes bytes into an MSB-first slice of 0/1 values, one byte
// per bit, matching the convention internal/source and internal/phasor
// use throughout the core.
func ToBits(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for k := 7; k >= 0; k-- {
			bits = append(bits, (b>>uint(k))&1)
		}
	}
	return bits
}

// FromBits packs an MSB-first slice of 0/1 values back into bytes. Any
// trailing partial byte is dropped.
func FromBits(bits []byte) []byte {
	n := len(bits) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var b byte
		for k := 0; k < 8; k++ {
			b = (b << 1) | (bits[i*8+k] & 1)
		}
		out[i] = b
	}
	return out
}
