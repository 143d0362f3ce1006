// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/chainkit/txauth/protocol"
)

// AdHocAuthorityCheck carries an authority record inline, not tied to
// any account. It exercises the "other" authority category.
type AdHocAuthorityCheck struct {
	Authority protocol.Authority
}

// Tag returns the on-wire variant discriminator.
func (a *AdHocAuthorityCheck) Tag() uint64 { return TagAdHocAuthorityCheck }

// Payload is the canonical encoding of the operation's own fields.
func (a *AdHocAuthorityCheck) Payload() []byte {
	au := a.Authority
	buffer := make([]byte, 0, 32)
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

// Validate delegates to the inline authority's own structural check.
func (a *AdHocAuthorityCheck) Validate() error {
	return a.Authority.Validate()
}

// RequiredAuthorities contributes the inline authority to the "other"
// category.
func (a *AdHocAuthorityCheck) RequiredAuthorities(active *[]protocol.AccountID, owner *[]protocol.AccountID, other *[]protocol.Authority) {
	*other = append(*other, a.Authority)
}

// ImpactedAccounts reports nothing: an ad-hoc authority is not tied to
// any account.
func (a *AdHocAuthorityCheck) ImpactedAccounts(impacted *[]protocol.AccountID) {}
