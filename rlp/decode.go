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

// Decode parses a single RLP value. Strings come back as []byte and lists as
// List. Trailing data after the value is an error
func Decode(data []byte) (any, error) {
	var tmp any
	if err := _rlp.DecodeBytes(data, &tmp); err != nil {
		return nil, err
	}
	return normalize(tmp), nil
}

// DecodeList parses data that must hold a single RLP list
func DecodeList(data []byte) (List, error) {
	tmp, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return AsList(tmp)
}

// The upstream library hands back []interface{} for lists
func normalize(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}
	ret := make(List, len(items))
	for i, item := range items {
		ret[i] = normalize(item)
	}
	return ret
}

// AsList asserts that a decoded item is a list
func AsList(v any) (List, error) {
	switch t := v.(type) {
	case List:
		return t, nil
	case []any:
		return List(t), nil
	default:
		return nil, fmt.Errorf("%w, found: %T", ErrExpectedList, v)
	}
}

// AsBytes asserts that a decoded item is a byte string
func AsBytes(v any) ([]byte, error) {
	switch t := v.(type) {
	case []byte:
		return t, nil
	default:
		return nil, fmt.Errorf("%w, found: %T", ErrExpectedString, v)
	}
}

// ListLength determines the number of items in an encoded list without
// decoding them
func ListLength(data []byte) (int, error) {
	content, rest, err := _rlp.SplitList(data)
	if err != nil {
		return 0, err
	}
	if len(rest) > 0 {
		return 0, _rlp.ErrMoreThanOneValue
	}
	return _rlp.CountValues(content)
}
