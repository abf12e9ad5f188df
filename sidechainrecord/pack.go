// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"github.com/sjmackenzie/sidechains/fault"
	"github.com/sjmackenzie/sidechains/util"
)

// pack WithdrawalRequest
//
// Pack Varint64(tag) followed by fields in order as struct above
//
// the byte sequence is bit-for-bit deterministic; hashing and script
// embedding both rely on this
func (withdrawal *WithdrawalRequest) Pack() (Packed, error) {
	if len(withdrawal.Destination) > maxDestinationLength {
		return nil, fault.ErrDestinationTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(WithdrawalRequestTag))
	message = appendUint64(message, uint64(withdrawal.SidechainId))
	message = appendString(message, withdrawal.Destination)
	message = appendUint64(message, withdrawal.Amount)
	message = appendUint64(message, withdrawal.MainchainFee)
	message = appendBytes(message, withdrawal.BlindHash[:])
	message = appendUint64(message, uint64(withdrawal.Status))

	return message, nil
}

// pack WithdrawalBundle
//
// Pack Varint64(tag) followed by fields in order as struct above;
// the bundle transaction is embedded as a length-prefixed block of
// its own packed form
func (bundle *WithdrawalBundle) Pack() (Packed, error) {
	packedTx, err := bundle.BundleTx.Pack()
	if nil != err {
		return nil, err
	}
	if len(packedTx) > maxPackedTransaction {
		return nil, fault.ErrScriptTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(WithdrawalBundleTag))
	message = appendUint64(message, uint64(bundle.SidechainId))
	message = appendBytes(message, packedTx)
	message = appendUint64(message, uint64(bundle.Height))
	message = appendUint64(message, uint64(bundle.Status))

	return message, nil
}

// pack Deposit
//
// Pack Varint64(tag) followed by fields in order as struct above
func (deposit *Deposit) Pack() (Packed, error) {
	if len(deposit.Destination) > maxDestinationLength {
		return nil, fault.ErrDestinationTooLong
	}

	packedTx, err := deposit.DepositTx.Pack()
	if nil != err {
		return nil, err
	}
	if len(packedTx) > maxPackedTransaction {
		return nil, fault.ErrScriptTooLong
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(DepositTag))
	message = appendUint64(message, uint64(deposit.SidechainId))
	message = appendString(message, deposit.Destination)
	message = appendUint64(message, deposit.UserPayout)
	message = appendBytes(message, packedTx)
	message = appendUint64(message, uint64(deposit.BurnIndex))
	message = appendUint64(message, uint64(deposit.TxCount))
	message = appendBytes(message, deposit.MainchainBlock[:])
	message = appendUint64(message, uint64(deposit.Status))

	return message, nil
}

// append a single field to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
