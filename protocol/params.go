// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

// Params groups the process-wide constants of the authorization core.
// Callers configure a Params value rather than relying on mutable
// globals; DefaultParams supplies the values a fresh deployment starts
// with.
type Params struct {
	// MaxRecursion bounds account-authority chasing depth.
	MaxRecursion int

	// CommitteeAccount is treated specially: it may only be required
	// as an active authority when AllowCommittee is set on a given
	// verification call.
	CommitteeAccount AccountID

	// TemporaryAccount is always treated as approved; it is pre-seeded
	// into every sign-state's approved-by set.
	TemporaryAccount AccountID
}

// DefaultParams returns the constants a fresh deployment starts with.
func DefaultParams() Params {
	return Params{
		MaxRecursion:     2,
		CommitteeAccount: AccountID{},
		TemporaryAccount: AccountID{0x01},
	}
}
