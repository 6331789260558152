package types

import (
	"io"
)

// base-128 varint: 7 value bits per byte, high bit set on every byte
// except the last. Groups are accumulated least significant first.
// All length prefixes and compact counts use this encoding.

const maxVarintLen = 10

// WriteVarUint writes v in base-128 varint form.
func WriteVarUint(w io.Writer, v uint64) error {
	var buf [maxVarintLen]byte
	n := 0
	for v >= 0x80 {
		buf[n] = byte(v) | 0x80
		v >>= 7
		n++
	}
	buf[n] = byte(v)
	_, err := w.Write(buf[:n+1])
	return err
}

// ReadVarUint reads a base-128 varint. It fails with ErrTruncatedInput if
// the stream ends before a terminating byte and with ErrOverflow if the
// value does not fit in 64 bits.
func ReadVarUint(r Reader) (uint64, error) {
	var v uint64
	for shift := uint(0); ; shift += 7 {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncatedInput
		}
		if shift == 63 && b > 1 {
			// the 10th byte may only contribute the final bit
			return 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// ReadVarUint32 reads a varint that must fit the 32-bit width used by
// counts and discriminants.
func ReadVarUint32(r Reader) (uint32, error) {
	v, err := ReadVarUint(r)
	if err != nil {
		return 0, err
	}
	if v > 0xffffffff {
		return 0, ErrOverflow
	}
	return uint32(v), nil
}

// WriteBuffer writes varint(len(b)) followed by the raw bytes.
func WriteBuffer(w io.Writer, b []byte) error {
	if err := WriteVarUint(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadBuffer reads a varint length prefix and exactly that many bytes.
func ReadBuffer(r Reader) ([]byte, error) {
	length, err := ReadVarUint(r)
	if err != nil {
		return nil, err
	}
	if length > uint64(r.Len()) {
		return nil, ErrTruncatedInput
	}
	b := make([]byte, length)
	if err := readFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}
