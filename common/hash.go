package common

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Write operations in a hash.Hash never return an error

// Sha256Sum returns the SHA256 of the concatenation of the input slices.
func Sha256Sum(data ...[]byte) []byte {
	hasher := sha256.New()
	for _, b := range data {
		hasher.Write(b)
	}
	return hasher.Sum(nil)
}

// DoubleSha256 returns SHA256(SHA256(b)).
func DoubleSha256(b []byte) []byte {
	hasher := sha256.New()
	hasher.Write(b)
	sum := hasher.Sum(nil)
	hasher.Reset()
	hasher.Write(sum)
	return hasher.Sum(nil)
}

// Ripemd160Sum returns the RIPEMD-160 of the input bytes.
func Ripemd160Sum(b []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(b)
	return hasher.Sum(nil)
}
