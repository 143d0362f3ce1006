// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"encoding/binary"

	"github.com/chainkit/txauth/util"
)

// Packed - the canonical, deterministic byte encoding of a transaction.
// This is the exact byte sequence that gets hashed to produce a digest.
type Packed []byte

func appendUint16(buffer Packed, value uint16) Packed {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint32(buffer Packed, value uint32) Packed {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendVarint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

func appendBytes(buffer Packed, data []byte) Packed {
	buffer = appendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// Encode produces the canonical signing preimage of a transaction: the
// header fields, then the operations list, then the extensions list, in
// that fixed order. Encoding never fails for a well-typed value; callers
// are responsible for structural validation before reaching this path.
func (tx *Transaction) Encode() Packed {
	buffer := make(Packed, 0, 128)

	buffer = appendUint16(buffer, tx.RefBlockNum)
	buffer = appendUint32(buffer, tx.RefBlockPrefix)
	buffer = appendUint32(buffer, uint32(tx.Expiration.Unix()))

	buffer = appendVarint64(buffer, uint64(len(tx.Operations)))
	for _, op := range tx.Operations {
		buffer = appendVarint64(buffer, uint64(op.Tag()))
		buffer = appendBytes(buffer, op.Payload())
	}

	buffer = appendVarint64(buffer, uint64(len(tx.Extensions)))
	for _, ext := range tx.Extensions {
		buffer = appendVarint64(buffer, uint64(ext.Tag))
		buffer = appendBytes(buffer, ext.Value)
	}

	return buffer
}
