// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"github.com/chainkit/txauth/fault"
	"github.com/chainkit/txauth/keypair"
)

// AccountIDLength - length of an opaque account identifier
const AccountIDLength = 20

// AccountID - opaque account identifier
type AccountID [AccountIDLength]byte

// KeyWeight - a public key and the weight it contributes toward a
// threshold when its signature is present or recoverable
type KeyWeight struct {
	Key    keypair.PublicKey
	Weight uint32
}

// AccountWeight - an account and the weight it contributes toward a
// threshold when its own active authority is transitively satisfied
type AccountWeight struct {
	Account AccountID
	Weight  uint32
}

// Authority - a weighted-threshold predicate over keys and accounts.
// Satisfied iff the sum of weights of contributing keys and accounts
// reaches WeightThreshold. A zero threshold is trivially satisfied.
type Authority struct {
	WeightThreshold uint32
	KeyAuths        []KeyWeight
	AccountAuths    []AccountWeight
}

// Validate checks the structural invariants of an authority: every
// declared weight must be strictly positive, and no key or account may
// appear more than once. A zero WeightThreshold is valid.
func (a *Authority) Validate() error {
	seenKeys := make(map[keypair.PublicKey]bool, len(a.KeyAuths))
	for _, kw := range a.KeyAuths {
		if kw.Weight == 0 {
			return fault.ErrInvalidWeight
		}
		if seenKeys[kw.Key] {
			return fault.ErrDuplicateEntry
		}
		seenKeys[kw.Key] = true
	}

	seenAccounts := make(map[AccountID]bool, len(a.AccountAuths))
	for _, aw := range a.AccountAuths {
		if aw.Weight == 0 {
			return fault.ErrInvalidWeight
		}
		if seenAccounts[aw.Account] {
			return fault.ErrDuplicateEntry
		}
		seenAccounts[aw.Account] = true
	}
	return nil
}

// GetActive resolves the active authority of an account. A nil result
// means the account has no active authority on record; the sign-state
// engine treats that as an unsatisfiable authority.
type GetActive func(id AccountID) *Authority

// GetOwner resolves the owner authority of an account.
type GetOwner func(id AccountID) *Authority
