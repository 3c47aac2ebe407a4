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
	"fmt"

	_rlp "github.com/ethereum/go-ethereum/rlp"
)

// Encode serializes a tree of byte strings and lists
func Encode(data any) ([]byte, error) {
	return _rlp.EncodeToBytes(data)
}

// MustEncode is like Encode but panics on failure. It is meant for trees whose
// leaves have already been validated, where an error can only mean a bug
func MustEncode(data any) []byte {
	ret, err := Encode(data)
	if err != nil {
		panic(
			fmt.Sprintf("unexpected error encoding RLP: %s", err),
		)
	}
	return ret
}

// Append returns a copy of the list with the extra items added at the end
func (l List) Append(items ...any) List {
	ret := make(List, 0, len(l)+len(items))
	ret = append(ret, l...)
	return append(ret, items...)
}
