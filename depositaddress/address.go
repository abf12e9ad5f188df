// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package depositaddress - human-shareable deposit addresses
//
// an address binds a sidechain id and a destination payload and
// carries a truncated SHA2-256 checksum so any single character
// corruption is detected:
//
//	s<decimal-id>_<destination>_<6-hex-char-checksum>
package depositaddress

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/sjmackenzie/sidechains/fault"
)

// number of hex characters of the prefix digest kept as checksum
const checksumLength = 6

// checksum of the unchecked prefix: first 6 hex characters of a
// single SHA2-256 over the prefix bytes
func checksum(prefix string) string {
	d := sha256.Sum256([]byte(prefix))
	return hex.EncodeToString(d[:])[:checksumLength]
}

// Generate - encode a deposit address for a destination
//
// the checksum covers everything up to and including the final
// underscore
func Generate(sidechainId uint8, destination string) string {
	prefix := "s" + strconv.FormatUint(uint64(sidechainId), 10) + "_" + destination + "_"
	return prefix + checksum(prefix)
}

// Parse - validate a deposit address and recover its parts
//
// any failure yields zero values and an error; the sidechain id
// range is checked before the checksum is recomputed
func Parse(address string) (string, uint8, error) {
	if "" == address {
		return "", 0, fault.ErrInvalidDepositAddress
	}

	// first character must be 's'
	if 's' != address[0] {
		return "", 0, fault.ErrInvalidDepositAddress
	}

	delim1 := strings.Index(address, "_")
	delim2 := strings.LastIndex(address, "_")
	if delim1 < 0 || delim2 < 0 {
		return "", 0, fault.ErrInvalidDepositAddress
	}
	if delim1+1 >= len(address) || delim2+1 >= len(address) {
		return "", 0, fault.ErrInvalidDepositAddress
	}

	// sidechain id, range 0..255
	id, err := strconv.ParseUint(address[1:delim1], 10, 64)
	if nil != err {
		return "", 0, fault.ErrSidechainIdOutOfRange
	}
	if id > 255 {
		return "", 0, fault.ErrSidechainIdOutOfRange
	}

	// destination payload
	destination := address[delim1+1 : delim2]
	if "" == destination {
		return "", 0, fault.ErrDestinationIsMissing
	}

	// supplied checksum must match one recomputed over the prefix
	supplied := address[delim2+1:]
	if checksumLength != len(supplied) {
		return "", 0, fault.ErrAddressChecksumMismatch
	}
	if supplied != checksum(address[:delim2+1]) {
		return "", 0, fault.ErrAddressChecksumMismatch
	}

	return destination, uint8(id), nil
}
