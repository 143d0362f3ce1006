// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainkit/txauth/keypair"
)

func keyFromSeedByte(t *testing.T, b byte) keypair.PublicKey {
	t.Helper()
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = b
	}
	kp, err := keypair.FromSeed(seed)
	require.NoError(t, err, "from seed error")
	return kp.PublicKey
}

func TestSignedByMarksUsed(t *testing.T) {
	k1 := keyFromSeedByte(t, 1)
	s := newSignState([]keypair.PublicKey{k1}, nil, nil, DefaultParams(), nil)

	assert.False(t, s.providedSignatures[k1], "key should start unused")
	require.True(t, s.signedBy(k1), "expected signedBy to find provided key")
	assert.True(t, s.providedSignatures[k1], "expected key to be marked used after signedBy")
}

func TestSignedByFallsBackToAvailableKeys(t *testing.T) {
	k1 := keyFromSeedByte(t, 1)
	s := newSignState(nil, []keypair.PublicKey{k1}, nil, DefaultParams(), nil)

	require.True(t, s.signedBy(k1), "expected signedBy to find available key")
	assert.True(t, s.providedSignatures[k1], "expected available key use to be recorded in providedSignatures")
}

func TestCheckAuthorityNilIsUnsatisfiable(t *testing.T) {
	s := newSignState(nil, nil, nil, DefaultParams(), nil)
	assert.False(t, s.checkAuthority(nil, 0), "nil authority must never be satisfied")
}

func TestCheckAuthorityZeroThresholdTrivial(t *testing.T) {
	s := newSignState(nil, nil, nil, DefaultParams(), nil)
	au := &Authority{WeightThreshold: 0}
	assert.True(t, s.checkAuthority(au, 0), "zero threshold authority must be trivially satisfied")
}

func TestRemoveUnusedSignatures(t *testing.T) {
	k1 := keyFromSeedByte(t, 1)
	k2 := keyFromSeedByte(t, 2)
	s := newSignState([]keypair.PublicKey{k1, k2}, nil, nil, DefaultParams(), nil)

	s.signedBy(k1)

	require.True(t, s.removeUnusedSignatures(), "expected an unused signature to be removed")

	_, k2Present := s.providedSignatures[k2]
	assert.False(t, k2Present, "k2 should have been removed")

	_, k1Present := s.providedSignatures[k1]
	assert.True(t, k1Present, "k1 should remain, it was used")

	assert.False(t, s.removeUnusedSignatures(), "second call should report nothing removed")
}
