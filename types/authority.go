package types

import (
	"io"
)

// AccountWeight is one entry of an authority's account->weight map.
type AccountWeight struct {
	Account String
	Weight  UInt16
}

// KeyWeight is one entry of an authority's key->weight map.
type KeyWeight struct {
	Key    PublicKey
	Weight UInt16
}

// Authority is a graphene permission: signatures reaching WeightThreshold
// across the listed accounts and keys authorize the guarded action. Both
// maps encode as varint(count) followed by the pairs in caller order.
type Authority struct {
	WeightThreshold UInt32
	AccountAuths    []AccountWeight
	KeyAuths        []KeyWeight
}

func (a Authority) Marshal(w io.Writer) error {
	if err := a.WeightThreshold.Marshal(w); err != nil {
		return err
	}
	if err := WriteVarUint(w, uint64(len(a.AccountAuths))); err != nil {
		return err
	}
	for _, entry := range a.AccountAuths {
		if err := entry.Account.Marshal(w); err != nil {
			return err
		}
		if err := entry.Weight.Marshal(w); err != nil {
			return err
		}
	}
	if err := WriteVarUint(w, uint64(len(a.KeyAuths))); err != nil {
		return err
	}
	for _, entry := range a.KeyAuths {
		if err := entry.Key.Marshal(w); err != nil {
			return err
		}
		if err := entry.Weight.Marshal(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *Authority) Unmarshal(r Reader) error {
	if err := a.WeightThreshold.Unmarshal(r); err != nil {
		return err
	}
	accountCount, err := ReadVarUint32(r)
	if err != nil {
		return err
	}
	a.AccountAuths = make([]AccountWeight, accountCount)
	for i := range a.AccountAuths {
		if err := a.AccountAuths[i].Account.Unmarshal(r); err != nil {
			return err
		}
		if err := a.AccountAuths[i].Weight.Unmarshal(r); err != nil {
			return err
		}
	}
	keyCount, err := ReadVarUint32(r)
	if err != nil {
		return err
	}
	a.KeyAuths = make([]KeyWeight, keyCount)
	for i := range a.KeyAuths {
		if err := a.KeyAuths[i].Key.Unmarshal(r); err != nil {
			return err
		}
		if err := a.KeyAuths[i].Weight.Unmarshal(r); err != nil {
			return err
		}
	}
	return nil
}

// OptionalAuthority encodes a presence byte followed by the authority
// only when present. A nil Authority marshals as absent.
type OptionalAuthority struct {
	Authority *Authority
}

func (o OptionalAuthority) Marshal(w io.Writer) error {
	if err := Bool(o.Authority != nil).Marshal(w); err != nil {
		return err
	}
	if o.Authority == nil {
		return nil
	}
	return o.Authority.Marshal(w)
}

func (o *OptionalAuthority) Unmarshal(r Reader) error {
	var present Bool
	if err := present.Unmarshal(r); err != nil {
		return err
	}
	if !present {
		o.Authority = nil
		return nil
	}
	o.Authority = new(Authority)
	return o.Authority.Unmarshal(r)
}
