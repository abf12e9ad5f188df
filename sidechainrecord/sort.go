// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"sort"
)

// SortByFee - order withdrawals by offered mainchain fee, highest
// first
//
// the sort is stable so equal fees keep their original relative order
func SortByFee(withdrawals []WithdrawalRequest) {
	sort.SliceStable(withdrawals, func(i, j int) bool {
		return withdrawals[i].MainchainFee > withdrawals[j].MainchainFee
	})
}

// SortByHeight - order bundles by block height, most recent first
//
// the sort is stable so equal heights keep their original relative
// order
func SortByHeight(bundles []WithdrawalBundle) {
	sort.SliceStable(bundles, func(i, j int) bool {
		return bundles[i].Height > bundles[j].Height
	})
}

// FilterUnspent - discard every withdrawal that is not Unspent
//
// filters in place preserving the order of the remainder and returns
// the shortened slice; not safe for concurrent use on one slice
func FilterUnspent(withdrawals []WithdrawalRequest) []WithdrawalRequest {
	unspent := withdrawals[:0]
	for _, withdrawal := range withdrawals {
		if WithdrawalUnspent == withdrawal.Status {
			unspent = append(unspent, withdrawal)
		}
	}
	return unspent
}
