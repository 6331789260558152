package types

import (
	"fmt"
	"io"
)

// VariantFactory allocates an empty payload for one static variant tag.
type VariantFactory func() Wire

// MarshalStaticVariant writes varint(tag) followed by the payload encoding.
func MarshalStaticVariant(w io.Writer, tag uint64, payload Wire) error {
	if err := WriteVarUint(w, tag); err != nil {
		return err
	}
	return payload.Marshal(w)
}

// UnmarshalStaticVariant reads varint(tag), allocates the payload from the
// discriminant table and decodes it. Unknown tags fail with
// ErrUnknownVariantTag.
func UnmarshalStaticVariant(r Reader, table map[uint64]VariantFactory) (uint64, Wire, error) {
	tag, err := ReadVarUint(r)
	if err != nil {
		return 0, nil, err
	}
	factory, exist := table[tag]
	if !exist {
		return 0, nil, fmt.Errorf("%w: tag %v", ErrUnknownVariantTag, tag)
	}
	payload := factory()
	if err := payload.Unmarshal(r); err != nil {
		return 0, nil, err
	}
	return tag, payload, nil
}

// BeneficiaryRoute assigns a share of a comment payout to an account,
// weighted in hundredths of a percent.
type BeneficiaryRoute struct {
	Account String
	Weight  UInt16
}

func (v BeneficiaryRoute) Marshal(w io.Writer) error {
	if err := v.Account.Marshal(w); err != nil {
		return err
	}
	return v.Weight.Marshal(w)
}

func (v *BeneficiaryRoute) Unmarshal(r Reader) error {
	if err := v.Account.Unmarshal(r); err != nil {
		return err
	}
	return v.Weight.Unmarshal(r)
}

// CommentPayoutBeneficiaries is the payload of comment options extension
// tag 0: an ordered list of payout routes.
type CommentPayoutBeneficiaries struct {
	Beneficiaries []BeneficiaryRoute
}

func (v CommentPayoutBeneficiaries) Marshal(w io.Writer) error {
	if err := WriteVarUint(w, uint64(len(v.Beneficiaries))); err != nil {
		return err
	}
	for _, route := range v.Beneficiaries {
		if err := route.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *CommentPayoutBeneficiaries) Unmarshal(r Reader) error {
	count, err := ReadVarUint32(r)
	if err != nil {
		return err
	}
	routes := make([]BeneficiaryRoute, count)
	for i := range routes {
		if err := routes[i].Unmarshal(r); err != nil {
			return err
		}
	}
	v.Beneficiaries = routes
	return nil
}

// CommentCurationRewardsPercent is the payload of comment options
// extension tag 2: the share of the payout routed to curators, in
// hundredths of a percent.
type CommentCurationRewardsPercent struct {
	Percent UInt16
}

func (v CommentCurationRewardsPercent) Marshal(w io.Writer) error {
	return v.Percent.Marshal(w)
}

func (v *CommentCurationRewardsPercent) Unmarshal(r Reader) error {
	return v.Percent.Unmarshal(r)
}

// comment options extension tags
const (
	TagCommentPayoutBeneficiaries uint64 = 0
	TagCurationRewardsPercent     uint64 = 2
)

var commentOptionsVariants = map[uint64]VariantFactory{
	TagCommentPayoutBeneficiaries: func() Wire { return new(CommentPayoutBeneficiaries) },
	TagCurationRewardsPercent:     func() Wire { return new(CommentCurationRewardsPercent) },
}

// CommentOptionsExtension is the static variant carried in the
// comment_options extensions list.
type CommentOptionsExtension struct {
	Tag     uint64
	Payload Wire
}

func (v CommentOptionsExtension) Marshal(w io.Writer) error {
	return MarshalStaticVariant(w, v.Tag, v.Payload)
}

func (v *CommentOptionsExtension) Unmarshal(r Reader) error {
	tag, payload, err := UnmarshalStaticVariant(r, commentOptionsVariants)
	if err != nil {
		return err
	}
	v.Tag, v.Payload = tag, payload
	return nil
}

// CommentOptionsExtensions is the length-prefixed extension list.
type CommentOptionsExtensions []CommentOptionsExtension

func (v CommentOptionsExtensions) Marshal(w io.Writer) error {
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

func (v *CommentOptionsExtensions) Unmarshal(r Reader) error {
	count, err := ReadVarUint32(r)
	if err != nil {
		return err
	}
	out := make(CommentOptionsExtensions, count)
	for i := range out {
		if err := out[i].Unmarshal(r); err != nil {
			return err
		}
	}
	*v = out
	return nil
}
