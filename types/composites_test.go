package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectID(t *testing.T) {
	id, err := ParseObjectID("1.2.345")
	require.NoError(t, err)
	assert.Equal(t, ObjectID{Space: 1, Type: 2, Instance: 345}, id)
	assert.Equal(t, "1.2.345", id.String())

	// space 1, type 2, instance 345 packed little-endian
	assert.Equal(t, "5901000000000201", serializeHex(t, &id))

	var got ObjectID
	require.NoError(t, Deserialize(mustHex(t, "5901000000000201"), &got))
	assert.Equal(t, id, got)
}

func TestParseObjectIDErrors(t *testing.T) {
	for _, in := range []string{"1.2", "1.2.3.4", "a.2.3", "1.b.3", "1.2.c", "256.0.0", "1.2.281474976710656"} {
		_, err := ParseObjectID(in)
		assert.ErrorIs(t, err, ErrInvalidObjectID, "input %q", in)
	}
}

func TestVoteID(t *testing.T) {
	id, err := ParseVoteID("1:120")
	require.NoError(t, err)
	assert.Equal(t, "1:120", id.String())
	// (120 << 8) | 1 = 30721 little-endian
	assert.Equal(t, "01780000", serializeHex(t, &id))

	var got VoteID
	require.NoError(t, Deserialize(mustHex(t, "01780000"), &got))
	assert.Equal(t, id, got)

	for _, in := range []string{"1", "1:2:3", "x:1", "1:x", "256:1", "1:16777216"} {
		_, err := ParseVoteID(in)
		assert.ErrorIs(t, err, ErrInvalidVoteID, "input %q", in)
	}
}

func TestEmptySet(t *testing.T) {
	var empty Set
	assert.Equal(t, "00", serializeHex(t, &empty))

	var got Set
	require.NoError(t, Deserialize(mustHex(t, "00"), &got))
	assert.Empty(t, got)

	// untyped sets cannot decode elements
	assert.ErrorIs(t, Deserialize(mustHex(t, "01ff"), &got), ErrUnknownVariantTag)
}

func TestStringArray(t *testing.T) {
	in := StringArray{"alice", "bob"}
	b, err := Serialize(&in)
	require.NoError(t, err)

	var got StringArray
	require.NoError(t, Deserialize(b, &got))
	assert.Equal(t, in, got)
}

func TestFixedBytes(t *testing.T) {
	// no length prefix on the wire
	assert.Equal(t, "deadbeef", serializeHex(t, FixedBytes{0xde, 0xad, 0xbe, 0xef}))

	got := make(FixedBytes, 4)
	require.NoError(t, Deserialize(mustHex(t, "deadbeef"), got))
	assert.Equal(t, FixedBytes{0xde, 0xad, 0xbe, 0xef}, got)

	short := make(FixedBytes, 8)
	assert.ErrorIs(t, Deserialize(mustHex(t, "dead"), short), ErrTruncatedInput)
}
