// Package operations defines the ledger operations a transaction can
// carry and their canonical wire encodings. Every operation serializes as
// varint(discriminant) followed by its fields in schema order; field order
// is fixed by the protocol and reordering it changes every signature.
package operations

import (
	"fmt"
	"io"

	"github.com/golosnetwork/graphene-signer/types"
)

// Operation is one ledger action. Implementations marshal only their
// fields; the discriminant prefix is written by MarshalOperation.
type Operation interface {
	types.Wire
	Type() OpType
}

// operation decode errors
var (
	errUnknownOperation = fmt.Errorf("%w: unsupported operation", types.ErrUnknownVariantTag)
)

// opFactory allocates empty operations by discriminant for decoding.
var opFactory = map[OpType]func() Operation{
	TypeVote:                              func() Operation { return new(Vote) },
	TypeComment:                           func() Operation { return new(Comment) },
	TypeTransfer:                          func() Operation { return new(Transfer) },
	TypeTransferToVesting:                 func() Operation { return new(TransferToVesting) },
	TypeWithdrawVesting:                   func() Operation { return new(WithdrawVesting) },
	TypeAccountCreate:                     func() Operation { return new(AccountCreate) },
	TypeAccountUpdate:                     func() Operation { return new(AccountUpdate) },
	TypeAccountMetadata:                   func() Operation { return new(AccountMetadata) },
	TypeCustomJSON:                        func() Operation { return new(CustomJSON) },
	TypeCommentOptions:                    func() Operation { return new(CommentOptions) },
	TypeChangeRecoveryAccount:             func() Operation { return new(ChangeRecoveryAccount) },
	TypeDelegateVestingShares:             func() Operation { return new(DelegateVestingShares) },
	TypeAccountCreateWithDelegation:       func() Operation { return new(AccountCreateWithDelegation) },
	TypeDelegateVestingSharesWithInterest: func() Operation { return new(DelegateVestingSharesWithInterest) },
}

// MarshalOperation writes varint(discriminant) followed by the operation
// fields.
func MarshalOperation(w io.Writer, op Operation) error {
	if err := types.WriteVarUint(w, uint64(op.Type())); err != nil {
		return err
	}
	return op.Marshal(w)
}

// UnmarshalOperation reads varint(discriminant), allocates the matching
// operation and decodes its fields. Discriminants without a registered
// schema fail with the unknown-variant error.
func UnmarshalOperation(r types.Reader) (Operation, error) {
	tag, err := types.ReadVarUint32(r)
	if err != nil {
		return nil, err
	}
	factory, exist := opFactory[OpType(tag)]
	if !exist {
		return nil, fmt.Errorf("%w %v", errUnknownOperation, OpType(tag))
	}
	op := factory()
	if err := op.Unmarshal(r); err != nil {
		return nil, fmt.Errorf("decode %v operation: %w", op.Type(), err)
	}
	return op, nil
}

func marshalFields(w io.Writer, fields ...types.Wire) error {
	for _, field := range fields {
		if err := field.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalFields(r types.Reader, fields ...types.Wire) error {
	for _, field := range fields {
		if err := field.Unmarshal(r); err != nil {
			return err
		}
	}
	return nil
}
