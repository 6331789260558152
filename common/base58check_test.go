package common

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// WIF of private scalar 1: 0x80 || scalar, double-SHA256 checksum
	wifOne        = "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAnchuDf"
	wifOnePayload = "800000000000000000000000000000000000000000000000000000000000000001"

	// compressed generator point, RIPEMD160 checksum (the key-text variant)
	generatorGph = "5p78kHbL33Rn3JWkTWRE2B9uz6gy4r1KbfAKLNQGE3ovMBS5bu"
	generatorHex = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func TestCheckEncode(t *testing.T) {
	payload, err := hex.DecodeString(wifOnePayload)
	require.NoError(t, err)
	assert.Equal(t, wifOne, CheckEncode(payload))
}

func TestCheckDecode(t *testing.T) {
	payload, err := CheckDecode(wifOne)
	require.NoError(t, err)
	assert.Equal(t, wifOnePayload, hex.EncodeToString(payload))
}

func TestGphCheckEncode(t *testing.T) {
	payload, err := hex.DecodeString(generatorHex)
	require.NoError(t, err)
	assert.Equal(t, generatorGph, GphCheckEncode(payload))

	decoded, err := GphCheckDecode(generatorGph)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestChecksumVariantsDiffer(t *testing.T) {
	// the two conventions must never validate each other's output
	payload := []byte{0x01, 0x02, 0x03}
	_, err := CheckDecode(GphCheckEncode(payload))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
	_, err = GphCheckDecode(CheckEncode(payload))
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestCheckDecodeCorruption(t *testing.T) {
	corrupted := "6" + wifOne[1:]
	_, err := CheckDecode(corrupted)
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	_, err = CheckDecode("3xyz")
	assert.ErrorIs(t, err, ErrChecksumMismatch) // too short after decode
}

func TestCheckDecodeInvalidAlphabet(t *testing.T) {
	for _, c := range []string{"0", "O", "l", "I", "+"} {
		_, err := CheckDecode(wifOne[:20] + c + wifOne[21:])
		assert.ErrorIs(t, err, ErrInvalidAlphabet, "char %q", c)
	}
}

func TestCheckEncodeLeadingZeros(t *testing.T) {
	payload := []byte{0, 0, 0, 0xab, 0xcd}
	decoded, err := CheckDecode(CheckEncode(payload))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(payload, decoded), "leading zero bytes must survive")
}
