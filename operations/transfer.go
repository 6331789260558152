package operations

import (
	"io"

	"github.com/golosnetwork/graphene-signer/types"
)

// Transfer moves an asset amount between two accounts.
type Transfer struct {
	From   types.String
	To     types.String
	Amount types.Asset
	Memo   types.String
}

func (op *Transfer) Type() OpType { return TypeTransfer }

func (op *Transfer) Marshal(w io.Writer) error {
	return marshalFields(w, &op.From, &op.To, &op.Amount, &op.Memo)
}

func (op *Transfer) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.From, &op.To, &op.Amount, &op.Memo)
}

// TransferToVesting powers up liquid funds into vesting shares.
type TransferToVesting struct {
	From   types.String
	To     types.String
	Amount types.Asset
}

func (op *TransferToVesting) Type() OpType { return TypeTransferToVesting }

func (op *TransferToVesting) Marshal(w io.Writer) error {
	return marshalFields(w, &op.From, &op.To, &op.Amount)
}

func (op *TransferToVesting) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.From, &op.To, &op.Amount)
}

// WithdrawVesting starts powering down vesting shares.
type WithdrawVesting struct {
	Account       types.String
	VestingShares types.Asset
}

func (op *WithdrawVesting) Type() OpType { return TypeWithdrawVesting }

func (op *WithdrawVesting) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Account, &op.VestingShares)
}

func (op *WithdrawVesting) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Account, &op.VestingShares)
}

// DelegateVestingShares lends vesting shares to another account.
type DelegateVestingShares struct {
	Delegator     types.String
	Delegatee     types.String
	VestingShares types.Asset
}

func (op *DelegateVestingShares) Type() OpType { return TypeDelegateVestingShares }

func (op *DelegateVestingShares) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Delegator, &op.Delegatee, &op.VestingShares)
}

func (op *DelegateVestingShares) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Delegator, &op.Delegatee, &op.VestingShares)
}

// DelegateVestingSharesWithInterest lends vesting shares for an interest
// rate in hundredths of a percent.
type DelegateVestingSharesWithInterest struct {
	Delegator     types.String
	Delegatee     types.String
	VestingShares types.Asset
	InterestRate  types.UInt16
	Extensions    types.Set
}

func (op *DelegateVestingSharesWithInterest) Type() OpType {
	return TypeDelegateVestingSharesWithInterest
}

func (op *DelegateVestingSharesWithInterest) Marshal(w io.Writer) error {
	return marshalFields(w, &op.Delegator, &op.Delegatee, &op.VestingShares, &op.InterestRate, &op.Extensions)
}

func (op *DelegateVestingSharesWithInterest) Unmarshal(r types.Reader) error {
	return unmarshalFields(r, &op.Delegator, &op.Delegatee, &op.VestingShares, &op.InterestRate, &op.Extensions)
}
