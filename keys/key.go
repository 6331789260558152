// Package keys derives role-scoped secp256k1 key pairs from an account
// passphrase and validates externally supplied WIF private keys.
package keys

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"

	"github.com/golosnetwork/graphene-signer/common"
	"github.com/golosnetwork/graphene-signer/types"
)

// key errors
var (
	ErrInvalidPrivateKey = errors.New("private key scalar outside [1, n-1]")
	ErrInvalidWIF        = errors.New("invalid WIF private key")
)

// Role labels one of the derivation scopes of an account. It is only an
// input to derivation; the resulting key pair does not carry it.
type Role string

// canonical account roles
const (
	RolePosting Role = "posting"
	RoleActive  Role = "active"
	RoleMemo    Role = "memo"
	RoleOwner   Role = "owner"
)

// Roles lists the canonical roles in derivation order.
var Roles = []Role{RolePosting, RoleActive, RoleMemo, RoleOwner}

// KeyPair couples a private scalar with its derived public point. The
// scalar is validated to lie strictly between 0 and the curve order.
type KeyPair struct {
	priv *btcec.PrivateKey
}

// Derive produces the key pair of one account role from a passphrase:
// the scalar is SHA256(account || role || passphrase), the historical
// graphene brain-key derivation.
func Derive(passphrase, account string, role Role) (*KeyPair, error) {
	seed := account + string(role) + passphrase
	return FromScalar(common.Sha256Sum([]byte(seed)))
}

// DeriveRoles derives the key pairs of all canonical roles at once.
func DeriveRoles(passphrase, account string) (map[Role]*KeyPair, error) {
	pairs := make(map[Role]*KeyPair, len(Roles))
	for _, role := range Roles {
		pair, err := Derive(passphrase, account, role)
		if err != nil {
			return nil, fmt.Errorf("derive %v key: %w", role, err)
		}
		pairs[role] = pair
	}
	return pairs, nil
}

// FromScalar builds a key pair from a raw 32-byte big-endian scalar,
// rejecting values outside [1, n-1].
func FromScalar(b []byte) (*KeyPair, error) {
	d := new(big.Int).SetBytes(b)
	if d.Sign() == 0 || d.Cmp(btcec.S256().N) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), b)
	return &KeyPair{priv: priv}, nil
}

// FromWIF validates and decodes a WIF private key string, checking the
// base58 checksum, the version byte and the uncompressed key form the
// graphene family uses.
func FromWIF(wif string) (*KeyPair, error) {
	decoded, err := btcutil.DecodeWIF(wif)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWIF, err)
	}
	if !decoded.IsForNet(&chaincfg.MainNetParams) {
		return nil, fmt.Errorf("%w: wrong version byte", ErrInvalidWIF)
	}
	if decoded.CompressPubKey {
		return nil, fmt.Errorf("%w: compressed form not used by this chain", ErrInvalidWIF)
	}
	return &KeyPair{priv: decoded.PrivKey}, nil
}

// PrivateKey exposes the signing key. Callers must treat it as read-only.
func (k *KeyPair) PrivateKey() *btcec.PrivateKey {
	return k.priv
}

// PublicKey returns the compressed public point as a wire value.
func (k *KeyPair) PublicKey() types.PublicKey {
	var key types.PublicKey
	copy(key[:], k.priv.PubKey().SerializeCompressed())
	return key
}

// PublicKeyString renders the prefixed public key text for the active
// chain, e.g. "GLS7LjcmXF4...".
func (k *KeyPair) PublicKeyString() string {
	return k.PublicKey().String()
}

// WIF renders the private key in WIF text form (version byte 0x80,
// double-SHA256 checksum).
func (k *KeyPair) WIF() string {
	wif, err := btcutil.NewWIF(k.priv, &chaincfg.MainNetParams, false)
	if err != nil {
		// NewWIF only fails on a nil net, which is hardcoded above
		panic(err)
	}
	return wif.String()
}

// MatchKey reports whether a WIF private key corresponds to the given
// public key text.
func MatchKey(wif, publicKey string) bool {
	pair, err := FromWIF(wif)
	if err != nil {
		return false
	}
	return pair.PublicKeyString() == publicKey
}
