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

package rlp

import (
	_rlp "github.com/ethereum/go-ethereum/rlp"
)

const (
	RLP_TYPE_SHORT_STRING uint8 = 0x80
	RLP_TYPE_LONG_STRING  uint8 = 0xb8
	RLP_TYPE_SHORT_LIST   uint8 = 0xc0
	RLP_TYPE_LONG_LIST    uint8 = 0xf8

	// Max payload length that fits in the prefix byte itself
	RLP_MAX_SHORT_PAYLOAD = 55
)

// Create an alias for RawValue for convenience
type RawValue = _rlp.RawValue

// List is an ordered RLP list. Items are []byte, List, []any or RawValue
type List []any

// EmptyString is the canonical encoding of a zero-length byte string
var EmptyString = []byte{RLP_TYPE_SHORT_STRING}

// EmptyList is the canonical encoding of a list with no items
var EmptyList = []byte{RLP_TYPE_SHORT_LIST}
