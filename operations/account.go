package operations

import (
	"io"

	"github.com/golosnetwork/graphene-signer/types"
)

// AccountCreate registers a new account, paying the creation fee and
// installing its three authorities and memo key.
type AccountCreate struct {
	Fee            types.Asset
	Creator        types.String
	NewAccountName types.String
	Owner          types.Authority
	Active         types.Authority
	Posting        types.Authority
	MemoKey        types.PublicKey
	JSONMetadata   types.String
}

func (op *AccountCreate) Type() OpType { return TypeAccountCreate }

func (op *AccountCreate) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Fee, &op.Creator, &op.NewAccountName,
		&op.Owner, &op.Active, &op.Posting, &op.MemoKey, &op.JSONMetadata)
}

func (op *AccountCreate) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Fee, &op.Creator, &op.NewAccountName,
		&op.Owner, &op.Active, &op.Posting, &op.MemoKey, &op.JSONMetadata)
}

// AccountUpdate replaces any of an account's authorities; absent optional
// authorities leave the existing ones untouched.
type AccountUpdate struct {
	Account      types.String
	Owner        types.OptionalAuthority
	Active       types.OptionalAuthority
	Posting      types.OptionalAuthority
	MemoKey      types.PublicKey
	JSONMetadata types.String
}

func (op *AccountUpdate) Type() OpType { return TypeAccountUpdate }

func (op *AccountUpdate) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Account, &op.Owner, &op.Active, &op.Posting,
		&op.MemoKey, &op.JSONMetadata)
}

func (op *AccountUpdate) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Account, &op.Owner, &op.Active, &op.Posting,
		&op.MemoKey, &op.JSONMetadata)
}

// AccountMetadata updates the account's json metadata blob.
type AccountMetadata struct {
	Account      types.String
	JSONMetadata types.String
}

func (op *AccountMetadata) Type() OpType { return TypeAccountMetadata }

func (op *AccountMetadata) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Account, &op.JSONMetadata)
}

func (op *AccountMetadata) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Account, &op.JSONMetadata)
}

// AccountCreateWithDelegation registers a new account backed by a vesting
// delegation from the creator.
type AccountCreateWithDelegation struct {
	Fee            types.Asset
	Delegation     types.Asset
	Creator        types.String
	NewAccountName types.String
	Owner          types.Authority
	Active         types.Authority
	Posting        types.Authority
	MemoKey        types.PublicKey
	JSONMetadata   types.String
	Extensions     types.Set
}

func (op *AccountCreateWithDelegation) Type() OpType { return TypeAccountCreateWithDelegation }

func (op *AccountCreateWithDelegation) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Fee, &op.Delegation, &op.Creator, &op.NewAccountName,
		&op.Owner, &op.Active, &op.Posting, &op.MemoKey, &op.JSONMetadata, &op.Extensions)
}

func (op *AccountCreateWithDelegation) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Fee, &op.Delegation, &op.Creator, &op.NewAccountName,
		&op.Owner, &op.Active, &op.Posting, &op.MemoKey, &op.JSONMetadata, &op.Extensions)
}

// ChangeRecoveryAccount points account recovery at a new trusted account.
type ChangeRecoveryAccount struct {
	AccountToRecover   types.String
	NewRecoveryAccount types.String
	Extensions         types.Set
}

func (op *ChangeRecoveryAccount) Type() OpType { return TypeChangeRecoveryAccount }

func (op *ChangeRecoveryAccount) Marshal(w io.Writer) error {
	return marshalFields(w, &op.AccountToRecover, &op.NewRecoveryAccount, &op.Extensions)
}

func (op *ChangeRecoveryAccount) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.AccountToRecover, &op.NewRecoveryAccount, &op.Extensions)
}
