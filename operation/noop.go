// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import "github.com/chainkit/txauth/protocol"

// Noop impacts no accounts and requires no authority. It is used as a
// structural filler operation and as the empty-transaction case.
type Noop struct{}

// Tag returns the on-wire variant discriminator.
func (n *Noop) Tag() uint64 { return TagNoop }

// Payload is empty: a no-op carries no fields.
func (n *Noop) Payload() []byte { return nil }

// Validate always succeeds.
func (n *Noop) Validate() error { return nil }

// RequiredAuthorities contributes nothing.
func (n *Noop) RequiredAuthorities(active *[]protocol.AccountID, owner *[]protocol.AccountID, other *[]protocol.Authority) {
}

// ImpactedAccounts contributes nothing.
func (n *Noop) ImpactedAccounts(impacted *[]protocol.AccountID) {}
