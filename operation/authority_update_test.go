// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package operation_test

import (
	"testing"

	"github.com/chainkit/txauth/keypair"
	"github.com/chainkit/txauth/operation"
	"github.com/chainkit/txauth/protocol"
)

func TestAuthorityUpdateValidateRequiresAtLeastOneAuthority(t *testing.T) {
	u := operation.AuthorityUpdate{Account: protocol.AccountID{0x01}}
	if err := u.Validate(); nil == err {
		t.Errorf("expected error when neither NewActive nor NewOwner is set")
	}
}

func TestAuthorityUpdateValidatePropagatesAuthorityErrors(t *testing.T) {
	kp, err := keypair.Generate()
	if nil != err {
		t.Fatalf("generate error: %v", err)
	}
	bad := &protocol.Authority{
		WeightThreshold: 1,
		KeyAuths:        []protocol.KeyWeight{{Key: kp.PublicKey, Weight: 0}},
	}
	u := operation.AuthorityUpdate{Account: protocol.AccountID{0x01}, NewActive: bad}
	if err := u.Validate(); nil == err {
		t.Errorf("expected the malformed inline authority's error to propagate")
	}
}

func TestAuthorityUpdateRequiresOwner(t *testing.T) {
	kp, err := keypair.Generate()
	if nil != err {
		t.Fatalf("generate error: %v", err)
	}
	account := protocol.AccountID{0x01}
	u := operation.AuthorityUpdate{
		Account:   account,
		NewActive: &protocol.Authority{WeightThreshold: 1, KeyAuths: []protocol.KeyWeight{{Key: kp.PublicKey, Weight: 1}}},
	}

	var active, owner []protocol.AccountID
	var other []protocol.Authority
	u.RequiredAuthorities(&active, &owner, &other)

	if len(active) != 0 {
		t.Errorf("authority update must not require active authority, got %v", active)
	}
	if len(owner) != 1 || owner[0] != account {
		t.Errorf("expected owner = [account], got %v", owner)
	}
}
