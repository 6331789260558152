package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// generator point and a derived account key, with their text forms
	generatorHex  = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	generatorText = "GLS5p78kHbL33Rn3JWkTWRE2B9uz6gy4r1KbfAKLNQGE3ovMBS5bu"
	postingHex    = "03bcaa8b013bde2eea981ff969f9bdcda96d3d8407d69bf8b7ffc42aeba5039b84"
	postingText   = "GLS8GKkiNQ1B2xoHTWgYgUWCNexKMxbYeMJK1rJK2JepFDTCxHp3n"
)

func TestPublicKeyText(t *testing.T) {
	key, err := NewPublicKey(mustHex(t, generatorHex))
	require.NoError(t, err)
	assert.Equal(t, generatorText, key.String())

	key, err = NewPublicKey(mustHex(t, postingHex))
	require.NoError(t, err)
	assert.Equal(t, postingText, key.String())
}

func TestParsePublicKey(t *testing.T) {
	key, err := ParsePublicKey(postingText)
	require.NoError(t, err)
	assert.Equal(t, postingHex, serializeHex(t, &key))

	_, err = ParsePublicKeyWithPrefix(postingText, "STM")
	assert.ErrorIs(t, err, ErrInvalidKeyPrefix)

	// flip one character: the ripemd160 checksum must catch it
	corrupted := postingText[:10] + "x" + postingText[11:]
	_, err = ParsePublicKey(corrupted)
	assert.Error(t, err)
}

func TestNewPublicKeyRejectsGarbage(t *testing.T) {
	_, err := NewPublicKey(mustHex(t, "0011"))
	assert.ErrorIs(t, err, ErrInvalidPoint)

	// right length, bad format byte
	garbage := make([]byte, PublicKeyLen)
	garbage[0] = 0x05
	_, err = NewPublicKey(garbage)
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestPublicKeyWireRoundTrip(t *testing.T) {
	key, err := NewPublicKey(mustHex(t, generatorHex))
	require.NoError(t, err)

	var got PublicKey
	require.NoError(t, Deserialize(mustHex(t, serializeHex(t, &key)), &got))
	assert.Equal(t, key, got)
}
