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

package tx

import (
	"bytes"
	"fmt"

	"github.com/blinklabs-io/thortx/rlp"
)

var featuresKind = rlp.NewNumericKind(4)

// Features is the feature bitmask carried in the reserved field
type Features uint32

const (
	// DelegationFeature marks a transaction whose fees are paid by a delegator
	DelegationFeature Features = 1
)

// IsDelegated reports whether the bitmask is exactly the delegation flag.
// Any other value, including the delegation bit combined with other bits, is
// not delegated
func (f Features) IsDelegated() bool {
	return f == DelegationFeature
}

// SetDelegated returns the bitmask with the delegation bit set or cleared
func (f Features) SetDelegated(flag bool) Features {
	if flag {
		return f | DelegationFeature
	}
	return f &^ DelegationFeature
}

// Reserved holds the feature flags plus any trailing fields that this
// implementation does not interpret. Unused fields are kept so that they
// survive a decode/encode round trip
type Reserved struct {
	Features Features
	Unused   [][]byte
}

func (r Reserved) Copy() Reserved {
	ret := Reserved{Features: r.Features}
	if r.Unused != nil {
		ret.Unused = make([][]byte, len(r.Unused))
		for i, item := range r.Unused {
			ret.Unused[i] = bytes.Clone(item)
		}
	}
	return ret
}

// pack always yields a list, with trailing empty items removed. A default
// reserved field packs to an empty list
func (r Reserved) pack() rlp.List {
	featuresBytes, err := featuresKind.EncodeUint64(uint64(r.Features))
	if err != nil {
		panic(fmt.Sprintf("unexpected error packing features: %s", err))
	}
	ret := make(rlp.List, 0, 1+len(r.Unused))
	ret = append(ret, featuresBytes)
	for _, item := range r.Unused {
		ret = append(ret, bytes.Clone(item))
	}
	for len(ret) > 0 {
		if len(ret[len(ret)-1].([]byte)) > 0 {
			break
		}
		ret = ret[:len(ret)-1]
	}
	return ret
}

func decodeReserved(item any) (Reserved, error) {
	items, err := rlp.AsList(item)
	if err != nil {
		return Reserved{}, fmt.Errorf("%w: %w", ErrInvalidReserved, err)
	}
	if len(items) == 0 {
		return Reserved{}, nil
	}
	fields := make([][]byte, len(items))
	for i := range items {
		fields[i], err = rlp.AsBytes(items[i])
		if err != nil {
			return Reserved{}, fmt.Errorf("%w: %w", ErrInvalidReserved, err)
		}
	}
	if len(fields[len(fields)-1]) == 0 {
		return Reserved{}, fmt.Errorf("%w: not trimmed", ErrInvalidReserved)
	}
	features, err := featuresKind.DecodeUint64(fields[0])
	if err != nil {
		return Reserved{}, fmt.Errorf(
			"%w: %w",
			ErrInvalidReserved,
			fieldError("features", err),
		)
	}
	ret := Reserved{Features: Features(features)}
	if len(fields) > 1 {
		ret.Unused = make([][]byte, 0, len(fields)-1)
		for _, field := range fields[1:] {
			ret.Unused = append(ret.Unused, bytes.Clone(field))
		}
	}
	return ret, nil
}
