// Copyright 2025 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rlp_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/thortx/internal/test"
	"github.com/blinklabs-io/thortx/rlp"
)

var encodeTestDefs = []struct {
	object  any
	rlpHex  string
	decoded any
}{
	{
		object:  []byte{},
		rlpHex:  "80",
		decoded: []byte{},
	},
	{
		object:  []byte{0x7f},
		rlpHex:  "7f",
		decoded: []byte{0x7f},
	},
	{
		object:  []byte{0x80},
		rlpHex:  "8180",
		decoded: []byte{0x80},
	},
	{
		object:  rlp.List{},
		rlpHex:  "c0",
		decoded: rlp.List{},
	},
	{
		object:  rlp.List{[]byte("cat"), []byte("dog")},
		rlpHex:  "c88363617483646f67",
		decoded: rlp.List{[]byte("cat"), []byte("dog")},
	},
	{
		object:  rlp.List{rlp.List{}, rlp.List{rlp.List{}}, []byte{}},
		rlpHex:  "c4c0c1c080",
		decoded: rlp.List{rlp.List{}, rlp.List{rlp.List{}}, []byte{}},
	},
	{
		// Plain []any lists encode the same way
		object:  []any{[]byte{0x01}, []any{}},
		rlpHex:  "c201c0",
		decoded: rlp.List{[]byte{0x01}, rlp.List{}},
	},
}

func TestEncode(t *testing.T) {
	for _, testDef := range encodeTestDefs {
		rlpData, err := rlp.Encode(testDef.object)
		if err != nil {
			t.Fatalf("failed to encode object to RLP: %s", err)
		}
		rlpHex := hex.EncodeToString(rlpData)
		if rlpHex != testDef.rlpHex {
			t.Fatalf(
				"object did not encode to expected RLP\n  got: %s\n  wanted: %s",
				rlpHex,
				testDef.rlpHex,
			)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, testDef := range encodeTestDefs {
		decoded, err := rlp.Decode(test.DecodeHexString(testDef.rlpHex))
		if err != nil {
			t.Fatalf("failed to decode RLP %s: %s", testDef.rlpHex, err)
		}
		if !reflect.DeepEqual(decoded, testDef.decoded) {
			t.Fatalf(
				"RLP did not decode to expected value\n  got: %#v\n  wanted: %#v",
				decoded,
				testDef.decoded,
			)
		}
	}
}

func TestDecodeNonCanonical(t *testing.T) {
	testDefs := []string{
		// Single byte below 0x80 wrapped in a string header
		"8100",
		// Long form used for a short string
		"b80161",
		// Trailing data
		"c0c0",
		// Truncated
		"83cafe",
	}
	for _, testDef := range testDefs {
		if _, err := rlp.Decode(test.DecodeHexString(testDef)); err == nil {
			t.Fatalf("expected error decoding %s", testDef)
		}
	}
}

func TestDecodeListHelpers(t *testing.T) {
	list, err := rlp.DecodeList(test.DecodeHexString("c88363617483646f67"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	item, err := rlp.AsBytes(list[0])
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(item) != "cat" {
		t.Fatalf("unexpected first item: %s", item)
	}
	if _, err := rlp.AsList(list[1]); err == nil {
		t.Fatalf("expected error treating a string as a list")
	}
	if _, err := rlp.DecodeList(test.DecodeHexString("83646f67")); err == nil {
		t.Fatalf("expected error decoding a string as a list")
	}
	length, err := rlp.ListLength(test.DecodeHexString("c4c0c1c080"))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if length != 3 {
		t.Fatalf("unexpected list length: got %d, wanted 3", length)
	}
}

func TestListAppend(t *testing.T) {
	orig := rlp.List{[]byte{0x01}}
	appended := orig.Append([]byte{0x02})
	if len(orig) != 1 || len(appended) != 2 {
		t.Fatalf("append modified original list: %#v / %#v", orig, appended)
	}
}

func TestEncodeHeaders(t *testing.T) {
	short, err := rlp.Encode(make([]byte, rlp.RLP_MAX_SHORT_PAYLOAD))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if short[0] != rlp.RLP_TYPE_SHORT_STRING+rlp.RLP_MAX_SHORT_PAYLOAD {
		t.Fatalf("unexpected short string header: %#x", short[0])
	}
	long, err := rlp.Encode(make([]byte, rlp.RLP_MAX_SHORT_PAYLOAD+1))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// One length byte follows the long string header
	if long[0] != rlp.RLP_TYPE_LONG_STRING || long[1] != rlp.RLP_MAX_SHORT_PAYLOAD+1 {
		t.Fatalf("unexpected long string header: %x", long[:2])
	}
	items := make(rlp.List, 0, rlp.RLP_MAX_SHORT_PAYLOAD+1)
	for len(items) < rlp.RLP_MAX_SHORT_PAYLOAD+1 {
		items = append(items, []byte{0x01})
	}
	longList := rlp.MustEncode(items)
	if longList[0] != rlp.RLP_TYPE_LONG_LIST {
		t.Fatalf("unexpected long list header: %#x", longList[0])
	}
	if !reflect.DeepEqual(rlp.MustEncode([]byte{}), rlp.EmptyString) {
		t.Fatalf("empty string does not match canonical encoding")
	}
	if !reflect.DeepEqual(rlp.MustEncode(rlp.List{}), rlp.EmptyList) {
		t.Fatalf("empty list does not match canonical encoding")
	}
}

func TestEncodeRawValue(t *testing.T) {
	// Pre-encoded items are copied verbatim
	list := rlp.List{rlp.RawValue(rlp.EmptyList), []byte{0x02}}
	encoded := rlp.MustEncode(list)
	if hex.EncodeToString(encoded) != "c2c002" {
		t.Fatalf("unexpected encoding: %x", encoded)
	}
}
