package operations

import (
	"io"

	"github.com/golosnetwork/graphene-signer/types"
)

// Vote casts a weighted vote on a comment. Weight is in hundredths of a
// percent, negative for downvotes.
type Vote struct {
	Voter    types.String
	Author   types.String
	Permlink types.String
	Weight   types.Int16
}

func (op *Vote) Type() OpType { return TypeVote }

func (op *Vote) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Voter, &op.Author, &op.Permlink, &op.Weight)
}

func (op *Vote) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Voter, &op.Author, &op.Permlink, &op.Weight)
}

// Comment creates or edits a post (empty parent author) or a reply.
type Comment struct {
	ParentAuthor   types.String
	ParentPermlink types.String
	Author         types.String
	Permlink       types.String
	Title          types.String
	Body           types.String
	JSONMetadata   types.String
}

func (op *Comment) Type() OpType { return TypeComment }

func (op *Comment) Marshal(w io.Writer) error {
	return marshalFields(w, &op.ParentAuthor, &op.ParentPermlink, &op.Author,
		&op.Permlink, &op.Title, &op.Body, &op.JSONMetadata)
}

func (op *Comment) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.ParentAuthor, &op.ParentPermlink, &op.Author,
		&op.Permlink, &op.Title, &op.Body, &op.JSONMetadata)
}

// CommentOptions tunes payout rules of an existing comment.
type CommentOptions struct {
	Author               types.String
	Permlink             types.String
	MaxAcceptedPayout    types.Asset
	PercentSteemDollars  types.UInt16
	AllowVotes           types.Bool
	AllowCurationRewards types.Bool
	Extensions           types.CommentOptionsExtensions
}

func (op *CommentOptions) Type() OpType { return TypeCommentOptions }

func (op *CommentOptions) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Author, &op.Permlink, &op.MaxAcceptedPayout,
		&op.PercentSteemDollars, &op.AllowVotes, &op.AllowCurationRewards, &op.Extensions)
}

func (op *CommentOptions) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Author, &op.Permlink, &op.MaxAcceptedPayout,
		&op.PercentSteemDollars, &op.AllowVotes, &op.AllowCurationRewards, &op.Extensions)
}

// CustomJSON carries arbitrary follow/market plugin payloads authorized
// by the listed accounts.
type CustomJSON struct {
	RequiredAuths        types.StringArray
	RequiredPostingAuths types.StringArray
	ID                   types.String
	JSON                 types.String
}

func (op *CustomJSON) Type() OpType { return TypeCustomJSON }

func (op *CustomJSON) Marshal(w io.Writer) error {
	return marshalFields(w, &op.RequiredAuths, &op.RequiredPostingAuths, &op.ID, &op.JSON)
}

func (op *CustomJSON) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.RequiredAuths, &op.RequiredPostingAuths, &op.ID, &op.JSON)
}
