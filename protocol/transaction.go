// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"encoding/binary"
	"time"

	"github.com/chainkit/txauth/fault"
	"github.com/chainkit/txauth/keypair"
	"github.com/chainkit/txauth/merkle"
)

// BlockIDLength - length of an opaque block identifier
const BlockIDLength = 32

// BlockID - opaque block identifier
type BlockID [BlockIDLength]byte

// TransactionIDLength - length of a transaction identifier: the leading
// 160 bits of its digest
const TransactionIDLength = 20

// TransactionID - the first 160 bits of a transaction's digest
type TransactionID [TransactionIDLength]byte

// Transaction - the canonical, unsigned transaction body
type Transaction struct {
	RefBlockNum    uint16
	RefBlockPrefix uint32
	Expiration     time.Time
	Operations     []Operation
	Extensions     []Extension
}

// SignedTransaction - a transaction plus its ordered signatures. No two
// signatures may recover to the same public key.
type SignedTransaction struct {
	Transaction
	Signatures []keypair.Signature
}

// OperationResult - the result of applying a single operation
type OperationResult struct {
	Tag    uint64
	Result []byte
}

// ProcessedTransaction - a signed transaction plus its operation-level
// results. Its digest hashes the whole record, results included; the
// plain transaction digest hashes only the signing preimage.
type ProcessedTransaction struct {
	SignedTransaction
	Results []OperationResult
}

// Digest returns the 256-bit hash of the transaction's canonical
// signing preimage.
func (tx *Transaction) Digest() merkle.Digest {
	return merkle.NewDigest(tx.Encode())
}

// ID returns the transaction identifier: the leading 160 bits of the
// digest. Trailing digest bytes are discarded.
func (tx *Transaction) ID() TransactionID {
	digest := tx.Digest()
	var id TransactionID
	copy(id[:], digest[:TransactionIDLength])
	return id
}

// Digest of a processed transaction hashes the whole record including
// operation results, not just the signing preimage.
func (p *ProcessedTransaction) Digest() merkle.Digest {
	buffer := p.Transaction.Encode()
	buffer = appendVarint64(buffer, uint64(len(p.Signatures)))
	for _, sig := range p.Signatures {
		buffer = appendBytes(buffer, sig[:])
	}
	buffer = appendVarint64(buffer, uint64(len(p.Results)))
	for _, r := range p.Results {
		buffer = appendVarint64(buffer, r.Tag)
		buffer = appendBytes(buffer, r.Result)
	}
	return merkle.NewDigest(buffer)
}

// SetReferenceBlock derives RefBlockNum and RefBlockPrefix from a block
// identifier. RefBlockNum is the byte-swapped low 32 bits of the first
// digest word, truncated to 16 bits; RefBlockPrefix is the second 32-bit
// word of the identifier as-is, forced to zero exactly when RefBlockNum
// is zero.
func (tx *Transaction) SetReferenceBlock(id BlockID) {
	word0 := binary.LittleEndian.Uint32(id[0:4])
	word1 := binary.LittleEndian.Uint32(id[4:8])

	tx.RefBlockNum = uint16(bswap32(word0))
	if tx.RefBlockNum == 0 {
		tx.RefBlockPrefix = 0
	} else {
		tx.RefBlockPrefix = word1
	}
}

func bswap32(v uint32) uint32 {
	return (v&0xff)<<24 | (v&0xff00)<<8 | (v&0xff0000)>>8 | v>>24
}

// Sign appends a compact recoverable signature of the transaction
// digest under privateKey. The digest is the same for every signature;
// signatures are order-insensitive for authorization but their
// serialized order is preserved for wire reproducibility.
func (s *SignedTransaction) Sign(privateKey []byte) error {
	digest := s.Transaction.Digest()
	signature, err := keypair.Sign(privateKey, digest)
	if nil != err {
		return err
	}
	s.Signatures = append(s.Signatures, signature)
	return nil
}

// GetSignatureKeys recovers the public key behind every signature.
// Recovery of two signatures to the same key is a validation error.
func (s *SignedTransaction) GetSignatureKeys() ([]keypair.PublicKey, error) {
	digest := s.Transaction.Digest()
	seen := make(map[keypair.PublicKey]bool, len(s.Signatures))
	keys := make([]keypair.PublicKey, 0, len(s.Signatures))

	for _, sig := range s.Signatures {
		key, err := keypair.Recover(sig, digest)
		if nil != err {
			return nil, err
		}
		if seen[key] {
			return nil, fault.ErrDuplicateSignature
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys, nil
}

// Validate runs every operation's Validate hook in order, failing on
// the first invalid operation.
func (tx *Transaction) Validate() error {
	for _, op := range tx.Operations {
		if err := op.Validate(); nil != err {
			return fault.ErrInvalidOperation
		}
	}
	return nil
}
