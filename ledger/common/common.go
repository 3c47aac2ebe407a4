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

package common

import (
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/thortx/rlp"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"golang.org/x/crypto/blake2b"
)

const (
	Blake2b256Size = 32
)

var blake2b256Kind = rlp.NewFixedBlobKind(Blake2b256Size)

type Blake2b256 [Blake2b256Size]byte

func NewBlake2b256(data []byte) Blake2b256 {
	b := Blake2b256{}
	copy(b[:], data)
	return b
}

// NewBlake2b256FromHex parses a 32-byte hex string with an optional "0x" prefix
func NewBlake2b256FromHex(s string) (Blake2b256, error) {
	data, err := blake2b256Kind.Parse(s)
	if err != nil {
		return Blake2b256{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return NewBlake2b256(data), nil
}

func (b Blake2b256) String() string {
	return hexutil.Encode(b[:])
}

func (b Blake2b256) Bytes() []byte {
	return b[:]
}

func (b Blake2b256) IsZero() bool {
	return b == Blake2b256{}
}

func (b Blake2b256) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Blake2b256) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	parsed, err := NewBlake2b256FromHex(tmp)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// Blake2b256Hash generates a Blake2b-256 hash over the concatenation of the
// provided buffers
func Blake2b256Hash(data ...[]byte) Blake2b256 {
	tmpHash, err := blake2b.New(Blake2b256Size, nil)
	if err != nil {
		panic(
			fmt.Sprintf(
				"unexpected error generating empty blake2b hash: %s",
				err,
			),
		)
	}
	for _, item := range data {
		tmpHash.Write(item)
	}
	return Blake2b256(tmpHash.Sum(nil))
}
