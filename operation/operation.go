// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package operation defines the closed set of operation kinds the
// authorization core is exercised against. The core itself treats an
// operation opaquely, dispatching only through the protocol.Operation
// interface's tag and hooks; this package supplies concrete variants.
package operation

// Tag values for the on-wire variant discriminator. The tag is
// authoritative; there is no open inheritance hierarchy.
const (
	TagTransfer            uint64 = 0
	TagAuthorityUpdate     uint64 = 1
	TagAdHocAuthorityCheck uint64 = 2
	TagNoop                uint64 = 3
)
