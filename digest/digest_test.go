// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"fmt"
	"testing"

	"github.com/sjmackenzie/sidechains/digest"
)

func TestDigest(t *testing.T) {
	d := digest.NewDigest([]byte("hello world"))

	// big endian
	// printf '%s' 'hello world' | sha256sum | xxd -r -p | sha256sum
	// then reverse the byte order
	stringDigest := "2344b7a9b50f3cc2761a40722c05361f73119f4d5d6cc129da369e0db8d462bc"

	// bytes as little endian format
	expected := digest.Digest{
		0xbc, 0x62, 0xd4, 0xb8,
		0x0d, 0x9e, 0x36, 0xda,
		0x29, 0xc1, 0x6c, 0x5d,
		0x4d, 0x9f, 0x11, 0x73,
		0x1f, 0x36, 0x05, 0x2c,
		0x72, 0x40, 0x1a, 0x76,
		0xc2, 0x3c, 0x0f, 0xb5,
		0xa9, 0xb7, 0x44, 0x23,
	}

	if d != expected {
		t.Errorf("digest(LE) = %#v  expected: %x", d, expected)
	}

	s := fmt.Sprintf("%s", d)
	if s != stringDigest {
		t.Errorf("string: digest = %s  expected: %s", s, stringDigest)
	}

	s = fmt.Sprintf("%#v", d)
	if s != "<SHA256d:"+stringDigest+">" {
		t.Errorf("go string: digest = %s  expected: %s", s, stringDigest)
	}
}

func TestDigestFromBytes(t *testing.T) {
	buffer := make([]byte, digest.Length)
	for i := range buffer {
		buffer[i] = byte(i)
	}

	var d digest.Digest
	err := digest.DigestFromBytes(&d, buffer)
	if nil != err {
		t.Fatalf("digest from bytes error: %v", err)
	}
	for i, b := range d {
		if byte(i) != b {
			t.Fatalf("byte %d: actual: %x  expected: %x", i, b, i)
		}
	}

	err = digest.DigestFromBytes(&d, buffer[1:])
	if nil == err {
		t.Fatal("unexpected success with short buffer")
	}
}

func TestMarshalText(t *testing.T) {
	d := digest.NewDigest([]byte("hello world"))

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal text error: %v", err)
	}

	// little endian hex
	expected := "bc62d4b80d9e36da29c16c5d4d9f11731f36052c72401a76c23c0fb5a9b74423"
	if expected != string(text) {
		t.Errorf("marshal text: %s  expected: %s", text, expected)
	}

	var back digest.Digest
	err = back.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal text error: %v", err)
	}
	if back != d {
		t.Errorf("unmarshal text: %#v  expected: %#v", back, d)
	}

	err = back.UnmarshalText(text[:10])
	if nil == err {
		t.Fatal("unexpected success with short text")
	}
}

func TestIsEmpty(t *testing.T) {
	var zero digest.Digest
	if !zero.IsEmpty() {
		t.Error("zero digest is not empty")
	}

	if digest.NewDigest(nil).IsEmpty() {
		t.Error("computed digest is empty")
	}
}
