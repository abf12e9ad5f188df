// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"github.com/sjmackenzie/sidechains/digest"
	"github.com/sjmackenzie/sidechains/fault"
	"github.com/sjmackenzie/sidechains/mainchain"
	"github.com/sjmackenzie/sidechains/util"
)

// Unpack - turn a byte slice into a record
//
// the leading Varint64 selects the variant; empty input and an
// unrecognised discriminator are errors, never panics
//
// must cast result to correct type
//
// e.g.
//   withdrawal, ok := result.(*sidechainrecord.WithdrawalRequest)
// or:
//   switch record := result.(type) {
//   case *sidechainrecord.WithdrawalRequest:
func (record Packed) Unpack() (r Record, n int, e error) {

	defer func() {
		if rec := recover(); nil != rec {
			e = fault.ErrNotSidechainRecordPack
		}
	}()

	if 0 == len(record) {
		return nil, 0, fault.ErrNotSidechainRecordPack
	}

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrNotSidechainRecordPack
	}

unpack_switch:
	switch OpType(recordType) {

	case WithdrawalRequestTag:

		// sidechain id
		sidechainId, sidechainIdOffset := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == sidechainIdOffset {
			break unpack_switch
		}
		n += sidechainIdOffset

		// destination (can be zero length)
		destinationLength, destinationOffset := util.ClippedVarint64(record[n:], 0, maxDestinationLength)
		if 0 == destinationOffset {
			break unpack_switch
		}
		n += destinationOffset
		destination := string(record[n : n+destinationLength])
		n += destinationLength

		// amount
		amount, amountLength := util.FromVarint64(record[n:])
		if 0 == amountLength {
			break unpack_switch
		}
		n += amountLength

		// mainchain fee
		mainchainFee, mainchainFeeLength := util.FromVarint64(record[n:])
		if 0 == mainchainFeeLength {
			break unpack_switch
		}
		n += mainchainFeeLength

		// blinded withdrawal tx hash
		blindHashLength, blindHashOffset := util.ClippedVarint64(record[n:], 1, maxPackedTransaction)
		if 0 == blindHashOffset {
			break unpack_switch
		}
		n += blindHashOffset
		var blindHash digest.Digest
		err := digest.DigestFromBytes(&blindHash, record[n:n+blindHashLength])
		if nil != err {
			return nil, 0, err
		}
		n += blindHashLength

		// status
		status, statusLength := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == statusLength {
			break unpack_switch
		}
		n += statusLength

		r := &WithdrawalRequest{
			SidechainId:  uint8(sidechainId),
			Destination:  destination,
			Amount:       amount,
			MainchainFee: mainchainFee,
			BlindHash:    blindHash,
			Status:       WithdrawalStatus(status),
		}
		return r, n, nil

	case WithdrawalBundleTag:

		// sidechain id
		sidechainId, sidechainIdOffset := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == sidechainIdOffset {
			break unpack_switch
		}
		n += sidechainIdOffset

		// embedded bundle transaction
		txLength, txOffset := util.ClippedVarint64(record[n:], 1, maxPackedTransaction)
		if 0 == txOffset {
			break unpack_switch
		}
		n += txOffset
		tx, txConsumed, err := mainchain.UnpackTransaction(record[n : n+txLength])
		if nil != err {
			return nil, 0, err
		}
		if txConsumed != txLength {
			break unpack_switch
		}
		n += txLength

		// block height
		height, heightLength := util.FromVarint64(record[n:])
		if 0 == heightLength {
			break unpack_switch
		}
		n += heightLength

		// status
		status, statusLength := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == statusLength {
			break unpack_switch
		}
		n += statusLength

		r := &WithdrawalBundle{
			SidechainId: uint8(sidechainId),
			BundleTx:    tx,
			Height:      uint32(height),
			Status:      BundleStatus(status),
		}
		return r, n, nil

	case DepositTag:

		// sidechain id
		sidechainId, sidechainIdOffset := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == sidechainIdOffset {
			break unpack_switch
		}
		n += sidechainIdOffset

		// destination (can be zero length)
		destinationLength, destinationOffset := util.ClippedVarint64(record[n:], 0, maxDestinationLength)
		if 0 == destinationOffset {
			break unpack_switch
		}
		n += destinationOffset
		destination := string(record[n : n+destinationLength])
		n += destinationLength

		// user payout
		userPayout, userPayoutLength := util.FromVarint64(record[n:])
		if 0 == userPayoutLength {
			break unpack_switch
		}
		n += userPayoutLength

		// embedded deposit transaction
		txLength, txOffset := util.ClippedVarint64(record[n:], 1, maxPackedTransaction)
		if 0 == txOffset {
			break unpack_switch
		}
		n += txOffset
		tx, txConsumed, err := mainchain.UnpackTransaction(record[n : n+txLength])
		if nil != err {
			return nil, 0, err
		}
		if txConsumed != txLength {
			break unpack_switch
		}
		n += txLength

		// burn index
		burnIndex, burnIndexLength := util.FromVarint64(record[n:])
		if 0 == burnIndexLength {
			break unpack_switch
		}
		n += burnIndexLength

		// transaction count hint
		txCount, txCountLength := util.FromVarint64(record[n:])
		if 0 == txCountLength {
			break unpack_switch
		}
		n += txCountLength

		// containing mainchain block
		blockHashLength, blockHashOffset := util.ClippedVarint64(record[n:], 1, maxPackedTransaction)
		if 0 == blockHashOffset {
			break unpack_switch
		}
		n += blockHashOffset
		var mainchainBlock digest.Digest
		err = digest.DigestFromBytes(&mainchainBlock, record[n:n+blockHashLength])
		if nil != err {
			return nil, 0, err
		}
		n += blockHashLength

		// status
		status, statusLength := util.ClippedVarint64(record[n:], 0, 255)
		if 0 == statusLength {
			break unpack_switch
		}
		n += statusLength

		r := &Deposit{
			SidechainId:    uint8(sidechainId),
			Destination:    destination,
			UserPayout:     userPayout,
			DepositTx:      tx,
			BurnIndex:      uint32(burnIndex),
			TxCount:        uint32(txCount),
			MainchainBlock: mainchainBlock,
			Status:         uint8(status),
		}
		return r, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.ErrNotSidechainRecordPack
}
