package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthority(t *testing.T) Authority {
	t.Helper()
	key, err := NewPublicKey(mustHex(t, generatorHex))
	require.NoError(t, err)
	return Authority{
		WeightThreshold: 1,
		AccountAuths:    []AccountWeight{{Account: "recovery", Weight: 1}},
		KeyAuths:        []KeyWeight{{Key: key, Weight: 1}},
	}
}

func TestAuthorityRoundTrip(t *testing.T) {
	in := testAuthority(t)
	b, err := Serialize(&in)
	require.NoError(t, err)

	var got Authority
	require.NoError(t, Deserialize(b, &got))
	assert.Equal(t, in, got)
}

func TestAuthorityEncoding(t *testing.T) {
	in := Authority{WeightThreshold: 1}
	// threshold LE32, then two empty maps
	assert.Equal(t, "010000000000", serializeHex(t, &in))
}

func TestOptionalAuthority(t *testing.T) {
	absent := OptionalAuthority{}
	assert.Equal(t, "00", serializeHex(t, &absent))

	auth := testAuthority(t)
	present := OptionalAuthority{Authority: &auth}
	b, err := Serialize(&present)
	require.NoError(t, err)
	assert.Equal(t, byte(1), b[0])

	var got OptionalAuthority
	require.NoError(t, Deserialize(b, &got))
	require.NotNil(t, got.Authority)
	assert.Equal(t, auth, *got.Authority)

	require.NoError(t, Deserialize(mustHex(t, "00"), &got))
	assert.Nil(t, got.Authority)
}
