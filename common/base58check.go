package common

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// base58check errors
var (
	ErrChecksumMismatch = errors.New("base58 checksum mismatch")
	ErrInvalidAlphabet  = errors.New("invalid base58 character")
)

const checksumLen = 4

// CheckEncode encodes payload as base58 with a trailing 4-byte
// double-SHA256 checksum (the generic Bitcoin-style convention).
func CheckEncode(payload []byte) string {
	return checkEncode(payload, DoubleSha256)
}

// CheckDecode decodes a generic base58check string and verifies its
// double-SHA256 checksum.
func CheckDecode(encoded string) ([]byte, error) {
	return checkDecode(encoded, DoubleSha256)
}

// GphCheckEncode encodes payload as base58 with a trailing 4-byte
// RIPEMD160 checksum. The graphene family standardized on this variant
// for public key text, distinct from the generic convention.
func GphCheckEncode(payload []byte) string {
	return checkEncode(payload, Ripemd160Sum)
}

// GphCheckDecode decodes a graphene base58check string and verifies its
// RIPEMD160 checksum.
func GphCheckDecode(encoded string) ([]byte, error) {
	return checkDecode(encoded, Ripemd160Sum)
}

func checkEncode(payload []byte, checksum func([]byte) []byte) string {
	buf := make([]byte, 0, len(payload)+checksumLen)
	buf = append(buf, payload...)
	buf = append(buf, checksum(payload)[:checksumLen]...)
	return base58.Encode(buf)
}

func checkDecode(encoded string, checksum func([]byte) []byte) ([]byte, error) {
	decoded, err := base58.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAlphabet, err)
	}
	if len(decoded) < checksumLen+1 {
		return nil, fmt.Errorf("%w: decoded %d bytes, too short", ErrChecksumMismatch, len(decoded))
	}
	payload := decoded[:len(decoded)-checksumLen]
	if !bytes.Equal(checksum(payload)[:checksumLen], decoded[len(decoded)-checksumLen:]) {
		return nil, ErrChecksumMismatch
	}
	return payload, nil
}
