// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package satoshi

import (
	"testing"
)

// check the fixed-point rendering of a satoshi amount
func TestSatoshiToString(t *testing.T) {
	tests := []struct {
		satoshi uint64
		btc     string
	}{
		{0, "0.00"},
		{1, "0.00000001"},
		{10, "0.0000001"},
		{100, "0.000001"},
		{10000, "0.0001"},
		{100000000, "1.00"},
		{101000000, "1.01"},
		{110000000, "1.10"},
		{150000000, "1.50"},
		{100000001, "1.00000001"},
		{199999999, "1.99999999"},
		{999999999, "9.99999999"},
		{2100000000000000, "21000000.00"},
		{9999999999999999, "99999999.99999999"},
		{18446744073709551615, "184467440737.09551615"},
	}

	for i, item := range tests {
		actual := String(item.satoshi)
		if actual != item.btc {
			t.Errorf("%d: String(%d) -> %q  expected: %q", i, item.satoshi, actual, item.btc)
		}
	}
}

// check the string conversion to satoshi
func TestStringToSatoshi(t *testing.T) {
	tests := []struct {
		btc     string
		satoshi uint64
	}{
		{"", 0},
		{"0", 0},
		{"0.0", 0},
		{"0.000000001", 0},
		{"0.00000001", 1},
		{"1", 100000000},
		{"1.0", 100000000},
		{"1.00000000", 100000000},
		{"1.1", 110000000},
		{"1.10", 110000000},
		{"1.01", 101000000},
		{"1.00000001", 100000001},
		{"1.99999999", 199999999},
		{"9.99999999", 999999999},
		{"99999999.99999998", 9999999999999998},
		{"99999999.99999999", 9999999999999999},
	}

	for i, item := range tests {
		actual := FromByteString([]byte(item.btc))
		if actual != item.satoshi {
			t.Errorf("%d: FromByteString(%q) -> %d  expected: %d", i, item.btc, actual, item.satoshi)
		}
	}
}

// round trip from rendering back to a value
func TestRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 99, 10000, 100000000, 123456789, 2100000000000000}

	for i, v := range values {
		back := FromByteString([]byte(String(v)))
		if back != v {
			t.Errorf("%d: round trip %d -> %q -> %d", i, v, String(v), back)
		}
	}
}
