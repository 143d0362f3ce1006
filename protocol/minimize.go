// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package protocol

import (
	"github.com/chainkit/txauth/fault"
	"github.com/chainkit/txauth/keypair"
)

// Minimize greedily reduces a starting signature-key set to a minimal
// subset that still satisfies tx's authority requirements. It is
// order-dependent and greedy: the result is minimal (no single further
// key can be removed) but not guaranteed to be the smallest possible
// set. Only the three missing-auth error kinds are caught while
// probing; any other failure propagates to the caller.
func Minimize(tx *Transaction, starting []keypair.PublicKey, getActive GetActive, getOwner GetOwner, params Params) ([]keypair.PublicKey, error) {
	result := append([]keypair.PublicKey{}, starting...)

	for _, candidate := range starting {
		without := removeKey(result, candidate)

		err := VerifyAuthority(tx, without, getActive, getOwner, params, VerifyOptions{})
		if nil == err {
			result = without
			continue
		}
		if !fault.IsMissingAuth(err) {
			return nil, err
		}
		// candidate stays in result; reinsertion is implicit since
		// `without` was never committed.
	}

	return result, nil
}

func removeKey(keys []keypair.PublicKey, target keypair.PublicKey) []keypair.PublicKey {
	result := make([]keypair.PublicKey, 0, len(keys))
	removed := false
	for _, k := range keys {
		if !removed && k == target {
			removed = true
			continue
		}
		result = append(result, k)
	}
	return result
}
