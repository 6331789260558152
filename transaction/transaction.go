// Package transaction assembles graphene transactions, computes their
// signing digest and produces recoverable canonical signatures.
package transaction

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/golosnetwork/graphene-signer/common"
	"github.com/golosnetwork/graphene-signer/operations"
	"github.com/golosnetwork/graphene-signer/params"
	"github.com/golosnetwork/graphene-signer/types"
)

// idLen is the number of hex characters of the short transaction id.
const idLen = 40

// Transaction is an unsigned transaction referencing a recent block for
// TaPoS and carrying one or more operations in submission order.
type Transaction struct {
	RefBlockNum    types.UInt16
	RefBlockPrefix types.UInt32
	Expiration     types.Time
	Operations     []operations.Operation
	Extensions     types.Set
}

// AppendOperation adds an operation at the end of the transaction.
// Operation order is part of the signed bytes.
func (tx *Transaction) AppendOperation(op operations.Operation) {
	tx.Operations = append(tx.Operations, op)
}

func (tx *Transaction) Marshal(w io.Writer) error {
	if err := tx.RefBlockNum.Marshal(w); err != nil {
		return err
	}
	if err := tx.RefBlockPrefix.Marshal(w); err != nil {
		return err
	}
	if err := tx.Expiration.Marshal(w); err != nil {
		return err
	}
	if err := types.WriteVarUint(w, uint64(len(tx.Operations))); err != nil {
		return err
	}
	for _, op := range tx.Operations {
		if err := operations.MarshalOperation(w, op); err != nil {
			return fmt.Errorf("encode %v operation: %w", op.Type(), err)
		}
	}
	return tx.Extensions.Marshal(w)
}

func (tx *Transaction) Unmarshal(r types.Reader) error {
	if err := tx.RefBlockNum.Unmarshal(r); err != nil {
		return err
	}
	if err := tx.RefBlockPrefix.Unmarshal(r); err != nil {
		return err
	}
	if err := tx.Expiration.Unmarshal(r); err != nil {
		return err
	}
	count, err := types.ReadVarUint32(r)
	if err != nil {
		return err
	}
	tx.Operations = nil
	for i := uint32(0); i < count; i++ {
		op, err := operations.UnmarshalOperation(r)
		if err != nil {
			return err
		}
		tx.Operations = append(tx.Operations, op)
	}
	return tx.Extensions.Unmarshal(r)
}

// Serialize returns the canonical signing bytes of the transaction
// (signatures are never part of them).
func (tx *Transaction) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := tx.Marshal(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Digest computes the signing digest SHA256(chain_id || tx_bytes). The
// chain id binds every signature to one network.
func (tx *Transaction) Digest(chainID []byte) ([]byte, error) {
	if len(chainID) != params.ChainIDLen {
		return nil, fmt.Errorf("%w: length %v, want %v",
			params.ErrInvalidChainID, len(chainID), params.ChainIDLen)
	}
	ser, err := tx.Serialize()
	if err != nil {
		return nil, err
	}
	return common.Sha256Sum(chainID, ser), nil
}

// ID returns the short transaction id: the first 40 hex characters of
// SHA256 over the serialized transaction without signatures.
func (tx *Transaction) ID() (string, error) {
	ser, err := tx.Serialize()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(common.Sha256Sum(ser))[:idLen], nil
}
