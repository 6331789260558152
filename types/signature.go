package types

import (
	"encoding/hex"
	"fmt"
	"io"
)

// SignatureLen is one recovery byte plus 32-byte r and 32-byte s.
const SignatureLen = 65

// Signature is a canonical recoverable secp256k1 signature:
// [recovery byte][r (32)][s (32)], with s in the lower half of the curve
// order. The text form is the lowercase hex of the 65 bytes.
type Signature [SignatureLen]byte

// ParseSignature decodes the 130-char hex text form.
func ParseSignature(text string) (Signature, error) {
	var sig Signature
	b, err := hex.DecodeString(text)
	if err != nil {
		return sig, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if len(b) != SignatureLen {
		return sig, fmt.Errorf("%w: %v bytes, want %v", ErrInvalidSignature, len(b), SignatureLen)
	}
	copy(sig[:], b)
	return sig, nil
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

func (s Signature) Marshal(w io.Writer) error {
	_, err := w.Write(s[:])
	return err
}

func (s *Signature) Unmarshal(r Reader) error {
	return readFull(r, s[:])
}
