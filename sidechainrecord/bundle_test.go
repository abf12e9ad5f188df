// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord_test

import (
	"reflect"
	"testing"

	"github.com/sjmackenzie/sidechains/sidechainrecord"
)

// test packing and unpacking of a withdrawal bundle record
func TestPackWithdrawalBundle(t *testing.T) {

	r := sidechainrecord.WithdrawalBundle{
		SidechainId: 5,
		BundleTx:    testTransaction(),
		Height:      381250,
		Status:      sidechainrecord.BundleCreated,
	}

	packed, err := r.Pack()
	if nil != err {
		t.Fatalf("pack error: %v", err)
	}

	if sidechainrecord.WithdrawalBundleTag != packed.Type() {
		t.Errorf("record type: %d  expected: %d", packed.Type(), sidechainrecord.WithdrawalBundleTag)
	}

	unpacked, n, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %v", err)
	}
	if len(packed) != n {
		t.Errorf("unpack consumed: %d  expected: %d", n, len(packed))
	}

	back, ok := unpacked.(*sidechainrecord.WithdrawalBundle)
	if !ok {
		t.Fatalf("unpack produced: %T  expected: *WithdrawalBundle", unpacked)
	}
	if !reflect.DeepEqual(r, *back) {
		t.Errorf("unpack: %v  expected: %v", *back, r)
	}
}

// boundary field values must survive the round trip
func TestWithdrawalBundleBoundaries(t *testing.T) {

	tests := []sidechainrecord.WithdrawalBundle{
		{}, // empty bundle transaction
		{
			SidechainId: 255,
			BundleTx:    testTransaction(),
			Height:      0xffffffff,
			Status:      sidechainrecord.BundleSpent,
		},
		{
			SidechainId: 0,
			BundleTx:    testTransaction(),
			Height:      0,
			Status:      sidechainrecord.BundleFailed,
		},
	}

	for i, r := range tests {
		packed, err := r.Pack()
		if nil != err {
			t.Fatalf("%d: pack error: %v", i, err)
		}

		unpacked, _, err := packed.Unpack()
		if nil != err {
			t.Fatalf("%d: unpack error: %v", i, err)
		}
		back, ok := unpacked.(*sidechainrecord.WithdrawalBundle)
		if !ok {
			t.Fatalf("%d: unpack produced: %T", i, unpacked)
		}
		if !reflect.DeepEqual(r, *back) {
			t.Errorf("%d: unpack: %v  expected: %v", i, *back, r)
		}
	}
}

// status names must be total over the whole byte range
func TestBundleStatusString(t *testing.T) {
	tests := []struct {
		status   sidechainrecord.BundleStatus
		expected string
	}{
		{sidechainrecord.BundleCreated, "Created"},
		{sidechainrecord.BundleFailed, "Failed"},
		{sidechainrecord.BundleSpent, "Spent"},
		{sidechainrecord.BundleStatus(3), "Unknown"},
		{sidechainrecord.BundleStatus(255), "Unknown"},
	}

	for i, item := range tests {
		if item.status.String() != item.expected {
			t.Errorf("%d: status: %q  expected: %q", i, item.status.String(), item.expected)
		}
	}
}
