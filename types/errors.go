package types

import (
	"errors"
)

// codec errors
var (
	ErrTruncatedInput    = errors.New("truncated input")
	ErrOverflow          = errors.New("varint overflows target integer width")
	ErrTrailingBytes     = errors.New("trailing bytes after decoded value")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidBool       = errors.New("invalid bool byte")
	ErrInvalidKeyPrefix  = errors.New("invalid public key prefix")
	ErrInvalidPoint      = errors.New("invalid curve point")
	ErrUnknownVariantTag = errors.New("unknown static variant tag")
	ErrInvalidObjectID   = errors.New("invalid object id")
	ErrInvalidVoteID     = errors.New("invalid vote id")
	ErrInvalidSignature  = errors.New("invalid signature encoding")
)
