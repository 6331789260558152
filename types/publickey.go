package types

import (
	"fmt"
	"io"
	"strings"

	"github.com/btcsuite/btcd/btcec"

	"github.com/golosnetwork/graphene-signer/common"
	"github.com/golosnetwork/graphene-signer/params"
)

// PublicKeyLen is the length of a compressed secp256k1 point.
const PublicKeyLen = 33

// PublicKey is a compressed secp256k1 curve point. It encodes as its 33
// raw bytes on the wire; the text form is the network prefix followed by
// base58 of the point bytes with a RIPEMD160-derived checksum.
type PublicKey [PublicKeyLen]byte

// NewPublicKey wraps point bytes after validating they parse as a
// compressed point on the curve.
func NewPublicKey(b []byte) (PublicKey, error) {
	var key PublicKey
	if len(b) != PublicKeyLen {
		return key, fmt.Errorf("%w: %v bytes, want %v", ErrInvalidPoint, len(b), PublicKeyLen)
	}
	if _, err := btcec.ParsePubKey(b, btcec.S256()); err != nil {
		return key, fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	copy(key[:], b)
	return key, nil
}

// ParsePublicKey decodes the prefixed text form using the active chain's
// address prefix.
func ParsePublicKey(text string) (PublicKey, error) {
	return ParsePublicKeyWithPrefix(text, params.GetChainConfig().AddressPrefix)
}

// ParsePublicKeyWithPrefix decodes the prefixed text form, failing with
// ErrInvalidKeyPrefix when the network prefix does not match.
func ParsePublicKeyWithPrefix(text, prefix string) (PublicKey, error) {
	if !strings.HasPrefix(text, prefix) {
		return PublicKey{}, fmt.Errorf("%w: %q does not start with %q", ErrInvalidKeyPrefix, text, prefix)
	}
	payload, err := common.GphCheckDecode(text[len(prefix):])
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKey(payload)
}

// String renders the text form with the active chain's address prefix.
func (k PublicKey) String() string {
	return k.StringWithPrefix(params.GetChainConfig().AddressPrefix)
}

// StringWithPrefix renders the text form with an explicit network prefix.
func (k PublicKey) StringWithPrefix(prefix string) string {
	return prefix + common.GphCheckEncode(k[:])
}

func (k PublicKey) Marshal(w io.Writer) error {
	_, err := w.Write(k[:])
	return err
}

func (k *PublicKey) Unmarshal(r Reader) error {
	return readFull(r, k[:])
}
