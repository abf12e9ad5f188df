// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord_test

import (
	"testing"

	"github.com/sjmackenzie/sidechains/digest"
	"github.com/sjmackenzie/sidechains/mainchain"
	"github.com/sjmackenzie/sidechains/sidechainrecord"
)

// a small mainchain transaction used by bundle and deposit tests
func testTransaction() mainchain.Transaction {
	return mainchain.Transaction{
		Version: 2,
		Vin: []mainchain.TxIn{
			{
				PreviousOut: mainchain.OutPoint{
					TxId:  digest.NewDigest([]byte("previous tx")),
					Index: 1,
				},
				SignatureScript: mainchain.Script{0x00, 0x01},
				Sequence:        0xffffffff,
			},
		},
		Vout: []mainchain.TxOut{
			{
				Value:    250000000,
				PkScript: mainchain.Script{0x51},
			},
		},
		LockTime: 0,
	}
}

// record names resolve for all variants and fail for anything else
func TestRecordName(t *testing.T) {
	tests := []struct {
		record   interface{}
		name     string
		resolved bool
	}{
		{&sidechainrecord.WithdrawalRequest{}, "WithdrawalRequest", true},
		{sidechainrecord.WithdrawalRequest{}, "WithdrawalRequest", true},
		{&sidechainrecord.WithdrawalBundle{}, "WithdrawalBundle", true},
		{&sidechainrecord.Deposit{}, "Deposit", true},
		{nil, "*unknown*", false},
		{"text", "*unknown*", false},
	}

	for i, item := range tests {
		name, ok := sidechainrecord.RecordName(item.record)
		if name != item.name || ok != item.resolved {
			t.Errorf("%d: name: %q, %v  expected: %q, %v", i, name, ok, item.name, item.resolved)
		}
	}
}

// type code extraction from packed bytes
func TestPackedType(t *testing.T) {
	tests := []struct {
		packed sidechainrecord.Packed
		opType sidechainrecord.OpType
	}{
		{sidechainrecord.Packed{0x01}, sidechainrecord.WithdrawalRequestTag},
		{sidechainrecord.Packed{0x02}, sidechainrecord.WithdrawalBundleTag},
		{sidechainrecord.Packed{0x03}, sidechainrecord.DepositTag},
		{sidechainrecord.Packed{0x09}, sidechainrecord.OpType(9)},
		{sidechainrecord.Packed{}, sidechainrecord.NullTag},
	}

	for i, item := range tests {
		if item.packed.Type() != item.opType {
			t.Errorf("%d: type: %d  expected: %d", i, item.packed.Type(), item.opType)
		}
	}
}
