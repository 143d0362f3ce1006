// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/chainkit/txauth/fault"
	"github.com/chainkit/txauth/protocol"
)

// AuthorityUpdate replaces an account's active or owner authority.
// Changing an account's own authority always requires the account's
// owner authority, never merely its active one.
type AuthorityUpdate struct {
	Account   protocol.AccountID
	NewActive *protocol.Authority
	NewOwner  *protocol.Authority
}

// Tag returns the on-wire variant discriminator.
func (u *AuthorityUpdate) Tag() uint64 { return TagAuthorityUpdate }

// Payload is the canonical encoding of the operation's own fields.
func (u *AuthorityUpdate) Payload() []byte {
	buffer := make([]byte, 0, 64)
	buffer = appendBytes(buffer, u.Account[:])
	buffer = appendAuthorityFlag(buffer, u.NewActive)
	buffer = appendAuthorityFlag(buffer, u.NewOwner)
	return buffer
}

func appendAuthorityFlag(buffer []byte, au *protocol.Authority) []byte {
	if nil == au {
		return append(buffer, 0)
	}
	buffer = append(buffer, 1)
	buffer = appendUint64(buffer, uint64(au.WeightThreshold))
	buffer = appendUint64(buffer, uint64(len(au.KeyAuths)))
	for _, kw := range au.KeyAuths {
		buffer = appendBytes(buffer, kw.Key.Bytes())
		buffer = appendUint64(buffer, uint64(kw.Weight))
	}
	buffer = appendUint64(buffer, uint64(len(au.AccountAuths)))
	for _, aw := range au.AccountAuths {
		buffer = appendBytes(buffer, aw.Account[:])
		buffer = appendUint64(buffer, uint64(aw.Weight))
	}
	return buffer
}

// Validate checks the structural invariants of an authority update: at
// least one of NewActive or NewOwner must be present, and whichever
// authority records are present must themselves be structurally valid.
func (u *AuthorityUpdate) Validate() error {
	if nil == u.NewActive && nil == u.NewOwner {
		return fault.ErrInvalidOperation
	}
	if nil != u.NewActive {
		if err := u.NewActive.Validate(); nil != err {
			return err
		}
	}
	if nil != u.NewOwner {
		if err := u.NewOwner.Validate(); nil != err {
			return err
		}
	}
	return nil
}

// RequiredAuthorities requires the account's owner authority: the
// stronger authority is required to change authority itself.
func (u *AuthorityUpdate) RequiredAuthorities(active *[]protocol.AccountID, owner *[]protocol.AccountID, other *[]protocol.Authority) {
	*owner = append(*owner, u.Account)
}

// ImpactedAccounts reports the updated account for downstream indexing.
func (u *AuthorityUpdate) ImpactedAccounts(impacted *[]protocol.AccountID) {
	*impacted = append(*impacted, u.Account)
}
