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
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	AddressSize = 20
)

var addressKind = rlp.NewFixedBlobKind(AddressSize)

// Address is an account address: the last 20 bytes of the Keccak-256 hash of
// an uncompressed secp256k1 public key
type Address [AddressSize]byte

// NewAddress parses a 20-byte hex address with an optional "0x" prefix
func NewAddress(addr string) (Address, error) {
	data, err := addressKind.Parse(addr)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return Address(data), nil
}

func NewAddressFromBytes(addrBytes []byte) (Address, error) {
	data, err := addressKind.Decode(addrBytes)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return Address(data), nil
}

// PublicKeyToAddress derives the address for a 65-byte uncompressed public key
func PublicKeyToAddress(pubKey []byte) (Address, error) {
	pk, err := ethcrypto.UnmarshalPubkey(pubKey)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return Address(ethcrypto.PubkeyToAddress(*pk)), nil
}

// String returns the lowercase "0x"-prefixed hex form
func (a Address) String() string {
	return hexutil.Encode(a[:])
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var tmp string
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	parsed, err := NewAddress(tmp)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
