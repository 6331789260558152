package operations

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golosnetwork/graphene-signer/types"
)

const (
	transferOpHex = "020a736f6d656775793132330b7265636569766572677579" +
		"640000000000000003474f4c4f530000067468616e6b73"
	voteOpHex = "000a736f6d6567757931323306617574686f7209736f6d652d706f73741027"
)

func testTransfer(t *testing.T) *Transfer {
	t.Helper()
	amount, err := types.ParseAsset("0.100 GOLOS")
	require.NoError(t, err)
	return &Transfer{
		From:   "someguy123",
		To:     "receiverguy",
		Amount: *amount,
		Memo:   "thanks",
	}
}

func marshalOpHex(t *testing.T, op Operation) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, MarshalOperation(&buf, op))
	return hex.EncodeToString(buf.Bytes())
}

func TestTransferEncoding(t *testing.T) {
	assert.Equal(t, transferOpHex, marshalOpHex(t, testTransfer(t)))
}

func TestVoteEncoding(t *testing.T) {
	vote := &Vote{
		Voter:    "someguy123",
		Author:   "author",
		Permlink: "some-post",
		Weight:   10000,
	}
	assert.Equal(t, voteOpHex, marshalOpHex(t, vote))
}

func TestUnmarshalOperation(t *testing.T) {
	b, err := hex.DecodeString(transferOpHex)
	require.NoError(t, err)

	op, err := UnmarshalOperation(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, TypeTransfer, op.Type())
	assert.Equal(t, testTransfer(t), op)
}

func TestUnmarshalOperationUnknown(t *testing.T) {
	// pow2 (30) has no registered schema
	_, err := UnmarshalOperation(bytes.NewReader([]byte{30}))
	assert.ErrorIs(t, err, types.ErrUnknownVariantTag)
}

func TestOperationDiscriminants(t *testing.T) {
	assert.Equal(t, OpType(0), TypeVote)
	assert.Equal(t, OpType(2), TypeTransfer)
	assert.Equal(t, OpType(11), TypeAccountMetadata)
	assert.Equal(t, OpType(19), TypeCustomJSON)
	assert.Equal(t, OpType(20), TypeCommentOptions)
	assert.Equal(t, OpType(27), TypeChangeRecoveryAccount)
	assert.Equal(t, OpType(40), TypeDelegateVestingShares)
	assert.Equal(t, OpType(41), TypeAccountCreateWithDelegation)
	assert.Equal(t, OpType(44), TypeDelegateVestingSharesWithInterest)

	assert.Equal(t, "transfer", TypeTransfer.String())
	assert.Equal(t, "unknown_operation_99", OpType(99).String())
}

func TestOperationRoundTrips(t *testing.T) {
	amount, err := types.ParseAsset("1.000 GOLOS")
	require.NoError(t, err)
	vests, err := types.ParseAsset("1.000000 GESTS")
	require.NoError(t, err)
	pub, err := types.ParsePublicKey("GLS5p78kHbL33Rn3JWkTWRE2B9uz6gy4r1KbfAKLNQGE3ovMBS5bu")
	require.NoError(t, err)
	auth := types.Authority{
		WeightThreshold: 1,
		AccountAuths:    []types.AccountWeight{},
		KeyAuths:        []types.KeyWeight{{Key: pub, Weight: 1}},
	}

	ops := []Operation{
		&Comment{
			ParentPermlink: "golos",
			Author:         "someguy123",
			Permlink:       "some-post",
			Title:          "A post",
			Body:           "body text",
			JSONMetadata:   `{"tags":["golos"]}`,
		},
		&CommentOptions{
			Author:               "someguy123",
			Permlink:             "some-post",
			MaxAcceptedPayout:    *amount,
			PercentSteemDollars:  10000,
			AllowVotes:           true,
			AllowCurationRewards: true,
			Extensions: types.CommentOptionsExtensions{
				{
					Tag: types.TagCommentPayoutBeneficiaries,
					Payload: &types.CommentPayoutBeneficiaries{
						Beneficiaries: []types.BeneficiaryRoute{{Account: "golosio", Weight: 1000}},
					},
				},
			},
		},
		&CustomJSON{
			RequiredAuths:        types.StringArray{},
			RequiredPostingAuths: types.StringArray{"someguy123"},
			ID:                   "follow",
			JSON:                 `["follow",{"follower":"someguy123"}]`,
		},
		&TransferToVesting{From: "someguy123", To: "someguy123", Amount: *amount},
		&WithdrawVesting{Account: "someguy123", VestingShares: *vests},
		&DelegateVestingShares{Delegator: "someguy123", Delegatee: "receiverguy", VestingShares: *vests},
		&DelegateVestingSharesWithInterest{
			Delegator:     "someguy123",
			Delegatee:     "receiverguy",
			VestingShares: *vests,
			InterestRate:  500,
		},
		&AccountCreate{
			Fee:            *amount,
			Creator:        "someguy123",
			NewAccountName: "newguy",
			Owner:          auth,
			Active:         auth,
			Posting:        auth,
			MemoKey:        pub,
			JSONMetadata:   "{}",
		},
		&AccountCreateWithDelegation{
			Fee:            *amount,
			Delegation:     *vests,
			Creator:        "someguy123",
			NewAccountName: "newguy",
			Owner:          auth,
			Active:         auth,
			Posting:        auth,
			MemoKey:        pub,
			JSONMetadata:   "{}",
		},
		&AccountUpdate{
			Account: "someguy123",
			Active:  types.OptionalAuthority{Authority: &auth},
			MemoKey: pub,
		},
		&AccountMetadata{Account: "someguy123", JSONMetadata: `{"profile":{}}`},
		&ChangeRecoveryAccount{AccountToRecover: "someguy123", NewRecoveryAccount: "recovery"},
	}

	for _, op := range ops {
		var buf bytes.Buffer
		require.NoError(t, MarshalOperation(&buf, op), "%v", op.Type())

		got, err := UnmarshalOperation(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err, "%v", op.Type())
		assert.Equal(t, op, got, "%v round trip", op.Type())
	}
}
