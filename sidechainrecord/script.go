// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sidechainrecord

import (
	"bytes"

	"github.com/sjmackenzie/sidechains/digest"
	"github.com/sjmackenzie/sidechains/fault"
)

// script header bytes
//
// a data carrier marker followed by a four byte magic identifying
// this application's payload format; generic scanners can skip the
// output without executing it
const (
	opReturn     = byte(0x6a)
	headerLength = 5
)

var scriptMagic = [4]byte{0xac, 0xdc, 0xf6, 0x6f}

// Hash - compute the hash of a record's packed form
//
// returns the zero digest if the record is nil, unrecognised or
// cannot be packed; callers must treat the zero digest as
// "could not hash"
func Hash(record Record) digest.Digest {
	switch record.(type) {
	case *WithdrawalRequest, *WithdrawalBundle, *Deposit:
		packed, err := record.Pack()
		if nil != err {
			return digest.Digest{}
		}
		return digest.NewDigest(packed)

	default: // also nil
		return digest.Digest{}
	}
}

// Script - serialize a record into an on-chain data carrier script
//
// Byte layout:
//
//	offset 0     : data carrier marker
//	offset 1..4  : 4 byte magic = 0xac 0xdc 0xf6 0x6f
//	offset 5..   : variant-tagged packed record
func Script(record Record) ([]byte, error) {
	packed, err := record.Pack()
	if nil != err {
		return nil, err
	}

	script := make([]byte, 0, headerLength+len(packed))
	script = append(script, opReturn)
	script = append(script, scriptMagic[:]...)
	script = append(script, packed...)
	return script, nil
}

// ParseScript - recover a record from a data carrier script
//
// exact inverse of Script restricted to the payload region
func ParseScript(script []byte) (Record, error) {
	if len(script) <= headerLength {
		return nil, fault.ErrNotDataCarrierScript
	}
	if opReturn != script[0] || !bytes.Equal(scriptMagic[:], script[1:headerLength]) {
		return nil, fault.ErrNotDataCarrierScript
	}

	record, _, err := Packed(script[headerLength:]).Unpack()
	return record, err
}
