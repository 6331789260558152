package types

import (
	"encoding/binary"
	"io"
	"time"
)

// Fixed width integers encode little-endian at their exact declared width.
// Signed quantities use two's complement of the same width.
type (
	UInt8  uint8
	UInt16 uint16
	UInt32 uint32
	UInt64 uint64
	Int16  int16
	Int64  int64
	Bool   bool
	String string
	Buffer []byte
)

func (v UInt8) Marshal(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func (v *UInt8) Unmarshal(r Reader) error {
	b, err := r.ReadByte()
	if err != nil {
		return ErrTruncatedInput
	}
	*v = UInt8(b)
	return nil
}

func (v UInt16) Marshal(w io.Writer) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

func (v *UInt16) Unmarshal(r Reader) error {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*v = UInt16(binary.LittleEndian.Uint16(buf[:]))
	return nil
}

func (v UInt32) Marshal(w io.Writer) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func (v *UInt32) Unmarshal(r Reader) error {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*v = UInt32(binary.LittleEndian.Uint32(buf[:]))
	return nil
}

func (v UInt64) Marshal(w io.Writer) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func (v *UInt64) Unmarshal(r Reader) error {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return err
	}
	*v = UInt64(binary.LittleEndian.Uint64(buf[:]))
	return nil
}

func (v Int16) Marshal(w io.Writer) error {
	return UInt16(v).Marshal(w)
}

func (v *Int16) Unmarshal(r Reader) error {
	var u UInt16
	if err := u.Unmarshal(r); err != nil {
		return err
	}
	*v = Int16(u)
	return nil
}

func (v Int64) Marshal(w io.Writer) error {
	return UInt64(v).Marshal(w)
}

func (v *Int64) Unmarshal(r Reader) error {
	var u UInt64
	if err := u.Unmarshal(r); err != nil {
		return err
	}
	*v = Int64(u)
	return nil
}

func (v Bool) Marshal(w io.Writer) error {
	b := byte(0)
	if v {
		b = 1
	}
	_, err := w.Write([]byte{b})
	return err
}

func (v *Bool) Unmarshal(r Reader) error {
	b, err := r.ReadByte()
	if err != nil {
		return ErrTruncatedInput
	}
	switch b {
	case 0:
		*v = false
	case 1:
		*v = true
	default:
		return ErrInvalidBool
	}
	return nil
}

// String encodes as varint(len) followed by the raw UTF-8 bytes.
func (v String) Marshal(w io.Writer) error {
	return WriteBuffer(w, []byte(v))
}

func (v *String) Unmarshal(r Reader) error {
	b, err := ReadBuffer(r)
	if err != nil {
		return err
	}
	*v = String(b)
	return nil
}

// Buffer encodes as varint(len) followed by the raw bytes.
func (v Buffer) Marshal(w io.Writer) error {
	return WriteBuffer(w, v)
}

func (v *Buffer) Unmarshal(r Reader) error {
	b, err := ReadBuffer(r)
	if err != nil {
		return err
	}
	*v = b
	return nil
}

// timeFormat is the graphene point-in-time text form (always UTC, no zone).
const timeFormat = "2006-01-02T15:04:05"

// Time is a point in time encoded as a 32-bit count of seconds since the
// unix epoch.
type Time uint32

// NewTime converts a time.Time to its wire representation.
func NewTime(t time.Time) Time {
	return Time(t.UTC().Unix())
}

// ParseTime parses the graphene text form, e.g. "2020-01-01T00:00:00".
func ParseTime(s string) (Time, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return 0, err
	}
	return NewTime(t), nil
}

func (v Time) String() string {
	return time.Unix(int64(v), 0).UTC().Format(timeFormat)
}

func (v Time) Marshal(w io.Writer) error {
	return UInt32(v).Marshal(w)
}

func (v *Time) Unmarshal(r Reader) error {
	var u UInt32
	if err := u.Unmarshal(r); err != nil {
		return err
	}
	*v = Time(u)
	return nil
}
