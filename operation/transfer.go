// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation

import (
	"github.com/chainkit/txauth/fault"
	"github.com/chainkit/txauth/protocol"
)

// Transfer moves Amount of value from From to To. It requires the
// sender's active authority.
type Transfer struct {
	From   protocol.AccountID
	To     protocol.AccountID
	Amount uint64
	Memo   string
}

// Tag returns the on-wire variant discriminator.
func (t *Transfer) Tag() uint64 { return TagTransfer }

// Payload is the canonical encoding of the operation's own fields.
func (t *Transfer) Payload() []byte {
	buffer := make([]byte, 0, 64)
	buffer = appendBytes(buffer, t.From[:])
	buffer = appendBytes(buffer, t.To[:])
	buffer = appendUint64(buffer, t.Amount)
	buffer = appendBytes(buffer, []byte(t.Memo))
	return buffer
}

// Validate checks the structural invariants of a transfer.
func (t *Transfer) Validate() error {
	if t.From == t.To {
		return fault.ErrInvalidOperation
	}
	if t.Amount == 0 {
		return fault.ErrInvalidOperation
	}
	return nil
}

// RequiredAuthorities requires the sender's active authority.
func (t *Transfer) RequiredAuthorities(active *[]protocol.AccountID, owner *[]protocol.AccountID, other *[]protocol.Authority) {
	*active = append(*active, t.From)
}

// ImpactedAccounts reports both parties for downstream indexing.
func (t *Transfer) ImpactedAccounts(impacted *[]protocol.AccountID) {
	*impacted = append(*impacted, t.From, t.To)
}
