package types

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FixedBytes is a fixed-size byte array: elements only, no length prefix.
// The length is implied by the schema, so Unmarshal fills the preallocated
// slice it is called on.
type FixedBytes []byte

func (v FixedBytes) Marshal(w io.Writer) error {
	_, err := w.Write(v)
	return err
}

func (v FixedBytes) Unmarshal(r Reader) error {
	return readFull(r, v)
}

// StringArray is a length-prefixed sequence of strings in caller order.
type StringArray []String

func (v StringArray) Marshal(w io.Writer) error {
	if err := WriteVarUint(w, uint64(len(v))); err != nil {
		return err
	}
	for _, s := range v {
		if err := s.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *StringArray) Unmarshal(r Reader) error {
	count, err := ReadVarUint32(r)
	if err != nil {
		return err
	}
	out := make(StringArray, count)
	for i := range out {
		if err := out[i].Unmarshal(r); err != nil {
			return err
		}
	}
	*v = out
	return nil
}

// Set is the structurally-present-but-empty extensions list carried by
// several operations and by the transaction itself.
type Set []Wire

func (v Set) Marshal(w io.Writer) error {
	if err := WriteVarUint(w, uint64(len(v))); err != nil {
		return err
	}
	for _, e := range v {
		if err := e.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *Set) Unmarshal(r Reader) error {
	count, err := ReadVarUint32(r)
	if err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("%w: cannot decode %v untyped set elements", ErrUnknownVariantTag, count)
	}
	*v = nil
	return nil
}

// ObjectID identifies a chain object as a space/type/instance triple,
// formatted "1.2.345" and packed into 8 little-endian bytes on the wire
// (space in the top byte, type in the next, instance in the low 48 bits).
type ObjectID struct {
	Space    uint8
	Type     uint8
	Instance uint64
}

const maxObjectInstance = 1<<48 - 1

// ParseObjectID parses the "space.type.instance" text form.
func ParseObjectID(s string) (ObjectID, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return ObjectID{}, fmt.Errorf("%w: %q", ErrInvalidObjectID, s)
	}
	space, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: bad space in %q", ErrInvalidObjectID, s)
	}
	typ, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: bad type in %q", ErrInvalidObjectID, s)
	}
	instance, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil || instance > maxObjectInstance {
		return ObjectID{}, fmt.Errorf("%w: bad instance in %q", ErrInvalidObjectID, s)
	}
	return ObjectID{Space: uint8(space), Type: uint8(typ), Instance: instance}, nil
}

func (v ObjectID) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Space, v.Type, v.Instance)
}

func (v ObjectID) Marshal(w io.Writer) error {
	packed := uint64(v.Space)<<56 | uint64(v.Type)<<48 | v.Instance&maxObjectInstance
	return UInt64(packed).Marshal(w)
}

func (v *ObjectID) Unmarshal(r Reader) error {
	var u UInt64
	if err := u.Unmarshal(r); err != nil {
		return err
	}
	v.Space = uint8(u >> 56)
	v.Type = uint8(u >> 48)
	v.Instance = uint64(u) & maxObjectInstance
	return nil
}

// VoteID is a vote identifier packing a 8-bit type and 24-bit instance,
// formatted "type:instance" and encoded as 4 little-endian bytes.
type VoteID uint32

const maxVoteInstance = 1<<24 - 1

// ParseVoteID parses the "type:instance" text form.
func ParseVoteID(s string) (VoteID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidVoteID, s)
	}
	typ, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: bad type in %q", ErrInvalidVoteID, s)
	}
	instance, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil || instance > maxVoteInstance {
		return 0, fmt.Errorf("%w: bad instance in %q", ErrInvalidVoteID, s)
	}
	return VoteID(instance<<8 | typ), nil
}

func (v VoteID) String() string {
	return fmt.Sprintf("%d:%d", uint32(v)&0xff, uint32(v)>>8)
}

func (v VoteID) Marshal(w io.Writer) error {
	return UInt32(v).Marshal(w)
}

func (v *VoteID) Unmarshal(r Reader) error {
	var u UInt32
	if err := u.Unmarshal(r); err != nil {
		return err
	}
	*v = VoteID(u)
	return nil
}
