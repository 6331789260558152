package transaction

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec"

	"github.com/golosnetwork/graphene-signer/keys"
	"github.com/golosnetwork/graphene-signer/log"
	"github.com/golosnetwork/graphene-signer/types"
)

// signing errors
var (
	ErrNoSigners                = errors.New("no signing keys given")
	ErrSigningInvariantViolated = errors.New("no recovery id reproduces the signing key")
)

// compactHeaderBase is the recovery header of a compressed-key compact
// signature before the recovery id is added (27 + 4).
const compactHeaderBase = 31

// SignTransaction serializes the transaction, computes its digest against
// chainID and signs it with every given key. Signing is deterministic
// (RFC 6979 nonces, low-S form), so equal inputs produce equal
// signatures. It returns the serialized transaction bytes and one
// recoverable signature per signer, in signer order.
func SignTransaction(tx *Transaction, chainID []byte, signers ...*keys.KeyPair) ([]byte, []types.Signature, error) {
	if len(signers) == 0 {
		return nil, nil, ErrNoSigners
	}
	ser, err := tx.Serialize()
	if err != nil {
		return nil, nil, err
	}
	digest, err := tx.Digest(chainID)
	if err != nil {
		return nil, nil, err
	}
	sigs := make([]types.Signature, 0, len(signers))
	for i, signer := range signers {
		sig, err := signRecoverable(signer.PrivateKey(), digest)
		if err != nil {
			return nil, nil, fmt.Errorf("signer %v: %w", i, err)
		}
		sigs = append(sigs, sig)
	}
	if txid, err := tx.ID(); err == nil {
		log.Debug("signed transaction",
			"txid", txid,
			"operations", len(tx.Operations),
			"signatures", len(sigs))
	}
	return ser, sigs, nil
}

// signRecoverable produces a 65-byte recoverable signature over digest:
// one deterministic ECDSA signature, then a search over the four recovery
// ids for the one that recovers the signing public key.
func signRecoverable(priv *btcec.PrivateKey, digest []byte) (types.Signature, error) {
	ecsig, err := priv.Sign(digest)
	if err != nil {
		return types.Signature{}, err
	}
	var sig types.Signature
	rb := ecsig.R.Bytes()
	sb := ecsig.S.Bytes()
	copy(sig[1+32-len(rb):], rb)
	copy(sig[33+32-len(sb):], sb)
	want := priv.PubKey()
	for recid := byte(0); recid < 4; recid++ {
		sig[0] = compactHeaderBase + recid
		pub, compressed, err := btcec.RecoverCompact(btcec.S256(), sig[:], digest)
		if err != nil {
			continue
		}
		if compressed && pub.IsEqual(want) {
			return sig, nil
		}
	}
	return types.Signature{}, ErrSigningInvariantViolated
}

// VerifyRecoverable checks that a recoverable signature over digest
// recovers the given public key text form.
func VerifyRecoverable(sig types.Signature, digest []byte, publicKey string) bool {
	pub, compressed, err := btcec.RecoverCompact(btcec.S256(), sig[:], digest)
	if err != nil || !compressed {
		return false
	}
	var key types.PublicKey
	copy(key[:], pub.SerializeCompressed())
	return key.String() == publicKey
}
