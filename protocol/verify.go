// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"github.com/chainkit/txauth/fault"
	"github.com/chainkit/txauth/keypair"
)

// RequiredAuthorities accumulates the active, owner, and ad-hoc
// authority requirements of every operation in the transaction.
func (tx *Transaction) RequiredAuthorities() (active []AccountID, owner []AccountID, other []Authority) {
	for _, op := range tx.Operations {
		op.RequiredAuthorities(&active, &owner, &other)
	}
	return
}

// VerifyOptions carries the caller-supplied inputs to VerifyAuthority
// that are not derived from the transaction or the account database.
type VerifyOptions struct {
	AllowCommittee  bool
	OwnerApprovals  []AccountID
	ActiveApprovals []AccountID
}

// VerifyAuthority decides whether recoveredKeys satisfy every authority
// requirement of tx's operations, given the two account-lookup
// callbacks. It fails on the first unsatisfied requirement and reports
// unnecessary signatures only after every requirement is otherwise met.
func VerifyAuthority(tx *Transaction, recoveredKeys []keypair.PublicKey, getActive GetActive, getOwner GetOwner, params Params, opts VerifyOptions) error {
	active, owner, other := tx.RequiredAuthorities()

	if !opts.AllowCommittee {
		for _, id := range active {
			if id == params.CommitteeAccount {
				return fault.ErrInvalidCommitteeApproval
			}
		}
	}

	preApproved := append(append([]AccountID{}, opts.ActiveApprovals...), opts.OwnerApprovals...)
	s := newSignState(recoveredKeys, nil, getActive, params, preApproved)

	for i := range other {
		if !s.checkAuthority(&other[i], 0) {
			return fault.ErrTxMissingOtherAuth
		}
	}

	for _, id := range active {
		if s.checkAuthorityByAccount(id) {
			continue
		}
		if s.checkAuthority(getOwner(id), 0) {
			continue
		}
		return fault.ErrTxMissingActiveAuth
	}

	ownerApproved := make(map[AccountID]bool, len(opts.OwnerApprovals))
	for _, id := range opts.OwnerApprovals {
		ownerApproved[id] = true
	}
	for _, id := range owner {
		if ownerApproved[id] {
			continue
		}
		if s.checkAuthority(getOwner(id), 0) {
			continue
		}
		return fault.ErrTxMissingOwnerAuth
	}

	if s.removeUnusedSignatures() {
		return fault.ErrUnnecessarySignatures
	}
	return nil
}

// GetRequiredSignatures is the non-throwing variant used by wallets. It
// recovers signer keys from any existing signatures, unions them with
// availableKeys, probes every authority requirement once, and returns
// the intersection of the keys marked used with availableKeys. The
// result is superset-free but not guaranteed minimal — see Minimize.
func GetRequiredSignatures(s *SignedTransaction, availableKeys []keypair.PublicKey, getActive GetActive, getOwner GetOwner, params Params) ([]keypair.PublicKey, error) {
	recoveredKeys, err := s.GetSignatureKeys()
	if nil != err {
		return nil, err
	}

	active, owner, other := s.RequiredAuthorities()
	state := newSignState(recoveredKeys, availableKeys, getActive, params, nil)

	for i := range other {
		state.checkAuthority(&other[i], 0)
	}
	for _, id := range owner {
		state.checkAuthority(getOwner(id), 0)
	}
	for _, id := range active {
		state.checkAuthorityByAccount(id)
	}

	state.removeUnusedSignatures()

	available := make(map[keypair.PublicKey]bool, len(availableKeys))
	for _, k := range availableKeys {
		available[k] = true
	}

	result := make([]keypair.PublicKey, 0, len(state.providedSignatures))
	for k := range state.providedSignatures {
		if available[k] {
			result = append(result, k)
		}
	}
	return result, nil
}
