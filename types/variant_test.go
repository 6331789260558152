package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentOptionsExtensionRoundTrip(t *testing.T) {
	in := CommentOptionsExtensions{
		{
			Tag: TagCommentPayoutBeneficiaries,
			Payload: &CommentPayoutBeneficiaries{
				Beneficiaries: []BeneficiaryRoute{
					{Account: "golosio", Weight: 1000},
					{Account: "curator", Weight: 500},
				},
			},
		},
	}
	b, err := Serialize(&in)
	require.NoError(t, err)

	var got CommentOptionsExtensions
	require.NoError(t, Deserialize(b, &got))
	require.Len(t, got, 1)
	assert.Equal(t, TagCommentPayoutBeneficiaries, got[0].Tag)

	routes, ok := got[0].Payload.(*CommentPayoutBeneficiaries)
	require.True(t, ok)
	assert.Equal(t, in[0].Payload.(*CommentPayoutBeneficiaries).Beneficiaries, routes.Beneficiaries)
}

func TestUnmarshalStaticVariantUnknownTag(t *testing.T) {
	payload := Bool(true)
	var buf bytes.Buffer
	require.NoError(t, MarshalStaticVariant(&buf, 7, &payload))

	_, _, err := UnmarshalStaticVariant(bytes.NewReader(buf.Bytes()), commentOptionsVariants)
	assert.ErrorIs(t, err, ErrUnknownVariantTag)
}

func TestBeneficiaryRouteEncoding(t *testing.T) {
	route := BeneficiaryRoute{Account: "bob", Weight: 10000}
	assert.Equal(t, "03626f621027", serializeHex(t, &route))
}

func TestCurationRewardsPercentRoundTrip(t *testing.T) {
	in := CommentOptionsExtensions{
		{
			Tag:     TagCurationRewardsPercent,
			Payload: &CommentCurationRewardsPercent{Percent: 5000},
		},
	}
	// varint count 1, tag 2, uint16 5000 LE
	assert.Equal(t, "01028813", serializeHex(t, &in))

	var got CommentOptionsExtensions
	require.NoError(t, Deserialize(mustHex(t, "01028813"), &got))
	require.Len(t, got, 1)
	assert.Equal(t, TagCurationRewardsPercent, got[0].Tag)

	percent, ok := got[0].Payload.(*CommentCurationRewardsPercent)
	require.True(t, ok)
	assert.Equal(t, UInt16(5000), percent.Percent)
}
