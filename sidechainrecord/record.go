// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sidechainrecord - the on-chain objects of the withdrawal lifecycle
//
// three record variants share a single discriminator byte space:
// withdrawal requests (WT), withdrawal bundles (WT^) and deposits;
// dispatch is always explicit on the discriminator, never virtual
package sidechainrecord

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sjmackenzie/sidechains/digest"
	"github.com/sjmackenzie/sidechains/mainchain"
	"github.com/sjmackenzie/sidechains/satoshi"
	"github.com/sjmackenzie/sidechains/util"
)

// OpType - discriminator code for sidechain records
//
// this is encoded as a Varint64 at the start of "Packed"; the valid
// values fit in a single byte as fixed by the host chain convention
type OpType uint64

// enumerate the possible record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = OpType(iota)

	// valid record types
	WithdrawalRequestTag = OpType(iota) // single pending withdrawal (WT)
	WithdrawalBundleTag  = OpType(iota) // aggregated withdrawals (WT^)
	DepositTag           = OpType(iota) // mainchain funds moved onto the sidechain

	// this item must be last
	InvalidTag = OpType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic sidechain record interface
type Record interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	maxDestinationLength = 1024
	maxPackedTransaction = 1000000
)

// WithdrawalStatus - lifecycle state of a withdrawal request
//
// Unspent → InBundle → Spent in the intended flow; InBundle → Unspent
// occurs when bundle inclusion fails; the record only stores the
// current scalar and never enforces transition legality
type WithdrawalStatus uint8

const (
	WithdrawalUnspent WithdrawalStatus = iota
	WithdrawalInBundle
	WithdrawalSpent
)

// String - status name; total over all byte values
func (status WithdrawalStatus) String() string {
	switch status {
	case WithdrawalUnspent:
		return "Unspent"
	case WithdrawalInBundle:
		return "Pending - in WT^"
	case WithdrawalSpent:
		return "Spent"
	}
	return "Unknown"
}

// BundleStatus - lifecycle state of a withdrawal bundle
//
// Created → Spent on mainchain settlement, Created → Failed otherwise
type BundleStatus uint8

const (
	BundleCreated BundleStatus = iota
	BundleFailed
	BundleSpent
)

// String - status name; total over all byte values
func (status BundleStatus) String() string {
	switch status {
	case BundleCreated:
		return "Created"
	case BundleFailed:
		return "Failed"
	case BundleSpent:
		return "Spent"
	}
	return "Unknown"
}

// WithdrawalRequest - a single pending withdrawal off the sidechain
type WithdrawalRequest struct {
	SidechainId  uint8            `json:"sidechainId"`
	Destination  string           `json:"destination"`
	Amount       uint64           `json:"amount,string"`       // satoshi
	MainchainFee uint64           `json:"mainchainFee,string"` // satoshi
	BlindHash    digest.Digest    `json:"blindHash"`           // blinded withdrawal tx
	Status       WithdrawalStatus `json:"status"`
}

// WithdrawalBundle - an aggregated transaction settling many
// withdrawals on the mainchain
type WithdrawalBundle struct {
	SidechainId uint8                 `json:"sidechainId"`
	BundleTx    mainchain.Transaction `json:"bundleTx"`
	Height      uint32                `json:"height"`
	Status      BundleStatus          `json:"status"`
}

// Deposit - a record of mainchain funds moved onto the sidechain
//
// Status carries the host chain's raw status byte; no named states
// are defined for deposits
type Deposit struct {
	SidechainId    uint8                 `json:"sidechainId"`
	Destination    string                `json:"destination"`
	UserPayout     uint64                `json:"userPayout,string"` // satoshi
	DepositTx      mainchain.Transaction `json:"depositTx"`
	BurnIndex      uint32                `json:"burnIndex"`
	TxCount        uint32                `json:"txCount"`
	MainchainBlock digest.Digest         `json:"mainchainBlock"`
	Status         uint8                 `json:"status"`
}

// Type - returns the record type code
func (record Packed) Type() OpType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return OpType(recordType)
}

// RecordName - returns the name of a sidechain record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *WithdrawalRequest, WithdrawalRequest:
		return "WithdrawalRequest", true

	case *WithdrawalBundle, WithdrawalBundle:
		return "WithdrawalBundle", true

	case *Deposit, Deposit:
		return "Deposit", true

	default:
		return "*unknown*", false
	}
}

// String - multi-line rendering of every field for diagnostics
//
// never re-parsed; monetary fields use fixed-point decimals
func (withdrawal WithdrawalRequest) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "op=%d\n", WithdrawalRequestTag)
	fmt.Fprintf(&s, "sidechain=%d\n", withdrawal.SidechainId)
	fmt.Fprintf(&s, "destination=%s\n", withdrawal.Destination)
	fmt.Fprintf(&s, "amount=%s\n", satoshi.String(withdrawal.Amount))
	fmt.Fprintf(&s, "mainchainFee=%s\n", satoshi.String(withdrawal.MainchainFee))
	fmt.Fprintf(&s, "blindHash=%s\n", withdrawal.BlindHash)
	fmt.Fprintf(&s, "status=%s\n", withdrawal.Status)
	return s.String()
}

// String - multi-line rendering of every field for diagnostics
func (bundle WithdrawalBundle) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "op=%d\n", WithdrawalBundleTag)
	fmt.Fprintf(&s, "sidechain=%d\n", bundle.SidechainId)
	fmt.Fprintf(&s, "bundle:\n%s", bundle.BundleTx)
	fmt.Fprintf(&s, "height=%d\n", bundle.Height)
	fmt.Fprintf(&s, "status=%s\n", bundle.Status)
	return s.String()
}

// String - multi-line rendering of every field for diagnostics
func (deposit Deposit) String() string {
	s := strings.Builder{}
	fmt.Fprintf(&s, "op=%d\n", DepositTag)
	fmt.Fprintf(&s, "sidechain=%d\n", deposit.SidechainId)
	fmt.Fprintf(&s, "destination=%s\n", deposit.Destination)
	fmt.Fprintf(&s, "payout=%s\n", satoshi.String(deposit.UserPayout))
	fmt.Fprintf(&s, "mainchainTxId=%s\n", deposit.DepositTx.TxId())
	fmt.Fprintf(&s, "burnIndex=%d\n", deposit.BurnIndex)
	fmt.Fprintf(&s, "txCount=%d\n", deposit.TxCount)
	fmt.Fprintf(&s, "mainchainBlock=%s\n", deposit.MainchainBlock)
	fmt.Fprintf(&s, "status=%d\n", deposit.Status)
	s.WriteString("inputs:\n")
	for _, in := range deposit.DepositTx.Vin {
		fmt.Fprintf(&s, "%s\n", in.PreviousOut)
	}
	return s.String()
}

// MarshalText - convert a packed to its hex JSON form
func (record Packed) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(record))
	b := make([]byte, size)
	hex.Encode(b, record)
	return b, nil
}

// UnmarshalText - convert a packed from its hex JSON form
func (record *Packed) UnmarshalText(s []byte) error {
	size := hex.DecodedLen(len(s))
	*record = make([]byte, size)
	_, err := hex.Decode(*record, s)
	return err
}
