// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package satoshi - fixed-point monetary values
//
// amounts are held as unsigned integers in units of the smallest
// denomination; formatting is locale independent
package satoshi

import (
	"fmt"
)

// OneCoin - number of satoshi in one whole coin
const OneCoin = 100000000

// String - render a satoshi amount as a fixed-point decimal
//
// i.e. uint64(150000000) will render as "1.50"
//
// trailing zeros are trimmed, but at least two decimal places
// always remain; no scientific notation is ever produced
func String(s uint64) string {
	text := fmt.Sprintf("%d.%08d", s/OneCoin, s%OneCoin)

	trim := 0
	for i := len(text) - 1; '0' == text[i] && isDigit(text[i-2]); i -= 1 {
		trim += 1
	}
	return text[:len(text)-trim]
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// FromByteString - convert a string to a satoshi value
//
// i.e. "0.00000001" will convert to uint64(1)
//
// Note: Invalid characters are simply ignored and the conversion
//       simply stops after 8 decimal places have been processed.
//       Extra decimal points will also be ignored.
func FromByteString(btc []byte) uint64 {

	s := uint64(0)
	point := false
	decimals := 0

get_digits:
	for _, b := range btc {
		if b >= '0' && b <= '9' {
			s *= 10
			s += uint64(b - '0')
			if point {
				decimals += 1
				if decimals >= 8 {
					break get_digits
				}
			}
		} else if '.' == b {
			point = true
		}
	}
	for decimals < 8 {
		s *= 10
		decimals += 1
	}

	return s
}
