// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mainchain - minimal model of a mainchain transaction
//
// only the fields needed to carry a withdrawal bundle or a deposit
// are represented; script execution and validation belong to the node
package mainchain

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sjmackenzie/sidechains/digest"
	"github.com/sjmackenzie/sidechains/fault"
	"github.com/sjmackenzie/sidechains/util"
)

// byte sizes for various fields
const (
	maxScriptLength = 10000
	maxTxItems      = 8192
)

// Script - a raw transaction script
type Script []byte

// OutPoint - reference to a single output of a previous transaction
type OutPoint struct {
	TxId  digest.Digest `json:"txId"`
	Index uint32        `json:"index"`
}

// TxIn - a single transaction input
type TxIn struct {
	PreviousOut     OutPoint `json:"previousOut"`
	SignatureScript Script   `json:"signatureScript"`
	Sequence        uint32   `json:"sequence"`
}

// TxOut - a single transaction output
type TxOut struct {
	Value    uint64 `json:"value,string"` // satoshi
	PkScript Script `json:"pkScript"`
}

// Transaction - the unpacked transaction structure
type Transaction struct {
	Version  uint32  `json:"version"`
	Vin      []TxIn  `json:"vin"`
	Vout     []TxOut `json:"vout"`
	LockTime uint32  `json:"lockTime"`
}

// Pack - serialize a transaction to a deterministic byte sequence
//
// Pack Varint64(version) then inputs, outputs and lock time in order
// as struct above; all counts, lengths and integers are Varint64
func (tx *Transaction) Pack() ([]byte, error) {
	if len(tx.Vin) > maxTxItems || len(tx.Vout) > maxTxItems {
		return nil, fault.ErrNotMainchainTransaction
	}

	message := util.ToVarint64(uint64(tx.Version))

	message = appendUint64(message, uint64(len(tx.Vin)))
	for _, in := range tx.Vin {
		if len(in.SignatureScript) > maxScriptLength {
			return nil, fault.ErrScriptTooLong
		}
		message = appendBytes(message, in.PreviousOut.TxId[:])
		message = appendUint64(message, uint64(in.PreviousOut.Index))
		message = appendBytes(message, in.SignatureScript)
		message = appendUint64(message, uint64(in.Sequence))
	}

	message = appendUint64(message, uint64(len(tx.Vout)))
	for _, out := range tx.Vout {
		if len(out.PkScript) > maxScriptLength {
			return nil, fault.ErrScriptTooLong
		}
		message = appendUint64(message, out.Value)
		message = appendBytes(message, out.PkScript)
	}

	return appendUint64(message, uint64(tx.LockTime)), nil
}

// UnpackTransaction - turn a byte slice back into a transaction
//
// also returns the number of bytes consumed so a transaction can be
// embedded inside a larger record
func UnpackTransaction(buffer []byte) (tx Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.ErrNotMainchainTransaction
		}
	}()

	version, versionLength := util.FromVarint64(buffer)
	if 0 == versionLength {
		return Transaction{}, 0, fault.ErrNotMainchainTransaction
	}
	n = versionLength

	// inputs
	vinCount, vinCountOffset := util.ClippedVarint64(buffer[n:], 0, maxTxItems)
	if 0 == vinCountOffset {
		return Transaction{}, 0, fault.ErrNotMainchainTransaction
	}
	n += vinCountOffset

	var vin []TxIn
	if vinCount > 0 {
		vin = make([]TxIn, vinCount)
	}
	for i := 0; i < vinCount; i += 1 {

		txIdLength, txIdOffset := util.ClippedVarint64(buffer[n:], 1, maxScriptLength)
		if 0 == txIdOffset {
			return Transaction{}, 0, fault.ErrNotMainchainTransaction
		}
		n += txIdOffset
		err := digest.DigestFromBytes(&vin[i].PreviousOut.TxId, buffer[n:n+txIdLength])
		if nil != err {
			return Transaction{}, 0, err
		}
		n += txIdLength

		index, indexLength := util.FromVarint64(buffer[n:])
		if 0 == indexLength {
			return Transaction{}, 0, fault.ErrNotMainchainTransaction
		}
		n += indexLength
		vin[i].PreviousOut.Index = uint32(index)

		scriptLength, scriptOffset := util.ClippedVarint64(buffer[n:], 0, maxScriptLength)
		if 0 == scriptOffset {
			return Transaction{}, 0, fault.ErrNotMainchainTransaction
		}
		n += scriptOffset
		vin[i].SignatureScript = make(Script, scriptLength)
		copy(vin[i].SignatureScript, buffer[n:n+scriptLength])
		n += scriptLength

		sequence, sequenceLength := util.FromVarint64(buffer[n:])
		if 0 == sequenceLength {
			return Transaction{}, 0, fault.ErrNotMainchainTransaction
		}
		n += sequenceLength
		vin[i].Sequence = uint32(sequence)
	}

	// outputs
	voutCount, voutCountOffset := util.ClippedVarint64(buffer[n:], 0, maxTxItems)
	if 0 == voutCountOffset {
		return Transaction{}, 0, fault.ErrNotMainchainTransaction
	}
	n += voutCountOffset

	var vout []TxOut
	if voutCount > 0 {
		vout = make([]TxOut, voutCount)
	}
	for i := 0; i < voutCount; i += 1 {

		value, valueLength := util.FromVarint64(buffer[n:])
		if 0 == valueLength {
			return Transaction{}, 0, fault.ErrNotMainchainTransaction
		}
		n += valueLength
		vout[i].Value = value

		scriptLength, scriptOffset := util.ClippedVarint64(buffer[n:], 0, maxScriptLength)
		if 0 == scriptOffset {
			return Transaction{}, 0, fault.ErrNotMainchainTransaction
		}
		n += scriptOffset
		vout[i].PkScript = make(Script, scriptLength)
		copy(vout[i].PkScript, buffer[n:n+scriptLength])
		n += scriptLength
	}

	lockTime, lockTimeLength := util.FromVarint64(buffer[n:])
	if 0 == lockTimeLength {
		return Transaction{}, 0, fault.ErrNotMainchainTransaction
	}
	n += lockTimeLength

	tx = Transaction{
		Version:  uint32(version),
		Vin:      vin,
		Vout:     vout,
		LockTime: uint32(lockTime),
	}
	return tx, n, nil
}

// TxId - compute the transaction id
//
// returns the zero digest if the transaction cannot be packed
func (tx *Transaction) TxId() digest.Digest {
	packed, err := tx.Pack()
	if nil != err {
		return digest.Digest{}
	}
	return digest.NewDigest(packed)
}

// String - single line rendering of an out point
func (o OutPoint) String() string {
	return fmt.Sprintf("%s:%d", o.TxId, o.Index)
}

// String - multi-line rendering of a transaction for diagnostics
func (tx Transaction) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "txid=%s\n", tx.TxId())
	fmt.Fprintf(&s, "version=%d\n", tx.Version)
	fmt.Fprintf(&s, "vin=%d\n", len(tx.Vin))
	fmt.Fprintf(&s, "vout=%d\n", len(tx.Vout))
	fmt.Fprintf(&s, "lockTime=%d\n", tx.LockTime)
	return s.String()
}

// MarshalText - convert a script to its hex JSON form
func (script Script) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(script))
	b := make([]byte, size)
	hex.Encode(b, script)
	return b, nil
}

// UnmarshalText - convert hex text back into a script
func (script *Script) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*script = make([]byte, size)
	_, err := hex.Decode(*script, s)
	return err
}

// append a bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer []byte, data []byte) []byte {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	buffer = append(buffer, data...)
	return buffer
}

// append a Varint64 to buffer
func appendUint64(buffer []byte, value uint64) []byte {
	valueBytes := util.ToVarint64(value)
	buffer = append(buffer, valueBytes...)
	return buffer
}
