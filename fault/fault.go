// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	InvalidError  GenericError
	LengthError   GenericError
	NotFoundError GenericError
	ProcessError  GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAddressChecksumMismatch = InvalidError("address checksum mismatch")
	ErrDestinationIsMissing    = InvalidError("destination is missing")
	ErrDestinationTooLong      = LengthError("destination too long")
	ErrInvalidDepositAddress   = InvalidError("invalid deposit address")
	ErrNotADigest              = InvalidError("not a digest")
	ErrNotDataCarrierScript    = InvalidError("not a data carrier script")
	ErrNotMainchainTransaction = ProcessError("not mainchain transaction")
	ErrNotSidechainRecordPack  = ProcessError("not sidechain record pack")
	ErrScriptTooLong           = LengthError("script too long")
	ErrSidechainIdOutOfRange   = InvalidError("sidechain id out of range")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
