// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import "github.com/chainkit/txauth/keypair"

// signState is transient state for a single verification call: seeded
// recovered keys, an optional pool of candidate keys for the minimizer
// path, and the set of accounts already shown approved. It is not
// thread-safe and must not be reused across calls.
type signState struct {
	getActive          GetActive
	availableKeys      map[keypair.PublicKey]bool
	providedSignatures map[keypair.PublicKey]bool
	approvedBy         map[AccountID]bool
	maxRecursion       int
}

// newSignState seeds providedSignatures with every recovered key marked
// unused, and pre-approves the temporary account plus any caller-supplied
// pre-approvals.
func newSignState(recovered []keypair.PublicKey, availableKeys []keypair.PublicKey, getActive GetActive, params Params, preApproved []AccountID) *signState {
	s := &signState{
		getActive:          getActive,
		availableKeys:      make(map[keypair.PublicKey]bool, len(availableKeys)),
		providedSignatures: make(map[keypair.PublicKey]bool, len(recovered)),
		approvedBy:         make(map[AccountID]bool),
		maxRecursion:       params.MaxRecursion,
	}
	for _, k := range availableKeys {
		s.availableKeys[k] = true
	}
	for _, k := range recovered {
		s.providedSignatures[k] = false
	}
	s.approvedBy[params.TemporaryAccount] = true
	for _, id := range preApproved {
		s.approvedBy[id] = true
	}
	return s
}

// signedBy returns true if k appears in providedSignatures or in
// availableKeys. Any true return marks k used in providedSignatures;
// this is the sole path by which a key becomes used.
func (s *signState) signedBy(k keypair.PublicKey) bool {
	if _, ok := s.providedSignatures[k]; ok {
		s.providedSignatures[k] = true
		return true
	}
	if s.availableKeys[k] {
		s.providedSignatures[k] = true
		return true
	}
	return false
}

// checkAuthority reports whether au is satisfied, recursing into
// account authorities up to maxRecursion deep. Key entries are
// consulted before account entries; within each group, iteration
// follows the authority's declared order.
func (s *signState) checkAuthority(au *Authority, depth int) bool {
	if nil == au {
		return false
	}

	var totalWeight uint32
	for _, kw := range au.KeyAuths {
		if s.signedBy(kw.Key) {
			totalWeight += kw.Weight
			if totalWeight >= au.WeightThreshold {
				return true
			}
		}
	}

	for _, aw := range au.AccountAuths {
		if s.approvedBy[aw.Account] {
			totalWeight += aw.Weight
			if totalWeight >= au.WeightThreshold {
				return true
			}
			continue
		}
		if depth == s.maxRecursion {
			continue
		}
		if s.checkAuthority(s.getActive(aw.Account), depth+1) {
			s.approvedBy[aw.Account] = true
			totalWeight += aw.Weight
			if totalWeight >= au.WeightThreshold {
				return true
			}
		}
	}

	return totalWeight >= au.WeightThreshold
}

// checkAuthorityByAccount returns true if id is already approved;
// otherwise it delegates to checkAuthority(getActive(id)).
func (s *signState) checkAuthorityByAccount(id AccountID) bool {
	if s.approvedBy[id] {
		return true
	}
	return s.checkAuthority(s.getActive(id), 0)
}

// removeUnusedSignatures erases every provided signature still marked
// unused; it reports whether any were removed.
func (s *signState) removeUnusedSignatures() bool {
	removed := false
	for k, used := range s.providedSignatures {
		if !used {
			delete(s.providedSignatures, k)
			removed = true
		}
	}
	return removed
}
