package types

import (
	"bytes"
	"io"
)

// Wire is implemented by every value kind that can appear in an operation
// or transaction. Marshal writes the canonical network encoding; Unmarshal
// consumes exactly the bytes Marshal produced. Encodings are pure functions
// of the logical value: same value, same bytes, on every platform.
type Wire interface {
	Marshal(w io.Writer) error
	Unmarshal(r Reader) error
}

// Reader is the input stream for Unmarshal implementations.
// *bytes.Reader satisfies it.
type Reader interface {
	io.ByteReader
	io.Reader
	Len() int
}

// Serialize renders any wire value to its canonical bytes.
func Serialize(v Wire) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Marshal(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize decodes canonical bytes into the given wire value and
// rejects trailing garbage.
func Deserialize(data []byte, v Wire) error {
	r := bytes.NewReader(data)
	if err := v.Unmarshal(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return ErrTrailingBytes
	}
	return nil
}

func readFull(r Reader, dst []byte) error {
	if _, err := io.ReadFull(r, dst); err != nil {
		return ErrTruncatedInput
	}
	return nil
}
