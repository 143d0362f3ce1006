// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair supplies the concrete implementation of the
// authorization core's abstract cryptographic interface: key
// generation, signing, and public-key recovery from a compact
// signature and a digest alone.
package keypair

import (
	"crypto/rand"
	"encoding/hex"

	btc "github.com/btcsuite/btcd/btcec"

	"github.com/chainkit/txauth/fault"
	"github.com/chainkit/txauth/merkle"
)

// PublicKeyLength - length of a compressed secp256k1 public key
const PublicKeyLength = 33

// SignatureLength - length of a compact recoverable signature
// (1 byte recovery header + 32 byte r + 32 byte s)
const SignatureLength = 65

// PublicKey - a compressed secp256k1 public key
type PublicKey [PublicKeyLength]byte

// Signature - a compact recoverable secp256k1 signature
type Signature [SignatureLength]byte

// KeyPair - a private key and its derived compressed public key
type KeyPair struct {
	PrivateKey []byte
	PublicKey  PublicKey
}

// Generate - create a new key pair from secure random data
func Generate() (*KeyPair, error) {
	seed := make([]byte, btc.PrivKeyBytesLen)
	n, err := rand.Read(seed)
	if nil != err {
		return nil, err
	}
	if btc.PrivKeyBytesLen != n {
		panic("too few random bytes")
	}
	return FromSeed(seed)
}

// FromSeed - derive a key pair from an existing 32 byte seed
func FromSeed(seed []byte) (*KeyPair, error) {
	if btc.PrivKeyBytesLen != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	priv, pub := btc.PrivKeyFromBytes(btc.S256(), seed)

	var publicKey PublicKey
	copy(publicKey[:], pub.SerializeCompressed())

	return &KeyPair{
		PrivateKey: priv.Serialize(),
		PublicKey:  publicKey,
	}, nil
}

// Sign - produce a compact recoverable signature over a digest
func Sign(privateKey []byte, digest merkle.Digest) (Signature, error) {
	var signature Signature
	if btc.PrivKeyBytesLen != len(privateKey) {
		return signature, fault.ErrInvalidKeyLength
	}
	priv, _ := btc.PrivKeyFromBytes(btc.S256(), privateKey)

	compact, err := btc.SignCompact(btc.S256(), priv, digest[:], true)
	if nil != err {
		return signature, err
	}
	if SignatureLength != len(compact) {
		return signature, fault.ErrInvalidSignature
	}
	copy(signature[:], compact)
	return signature, nil
}

// Recover - recover the public key that produced a signature over a
// digest. This is the sole authentication primitive the sign-state
// engine relies on: it never receives a public key alongside a
// signature, only the signature and the digest it covers.
func Recover(signature Signature, digest merkle.Digest) (PublicKey, error) {
	var publicKey PublicKey
	pub, _, err := btc.RecoverCompact(btc.S256(), signature[:], digest[:])
	if nil != err {
		return publicKey, fault.ErrRecoveryFailed
	}
	copy(publicKey[:], pub.SerializeCompressed())
	return publicKey, nil
}

// Bytes - the raw bytes of a public key
func (p PublicKey) Bytes() []byte {
	return p[:]
}

// String - hex representation of a public key
func (p PublicKey) String() string {
	return hex.EncodeToString(p[:])
}
