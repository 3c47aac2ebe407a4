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

	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/blinklabs-io/thortx/rlp"
)

// BodyOptionFunc is a type that represents functions that modify a transaction body
type BodyOptionFunc func(*Body) error

// New builds an unsigned transaction from the provided options. The first
// option to fail aborts construction
func New(options ...BodyOptionFunc) (*Transaction, error) {
	var body Body
	for _, option := range options {
		if err := option(&body); err != nil {
			return nil, err
		}
	}
	return NewFromBody(body), nil
}

// WithChainTag specifies the chain tag of the target network
func WithChainTag(chainTag uint8) BodyOptionFunc {
	return func(b *Body) error {
		b.ChainTag = chainTag
		return nil
	}
}

// WithBlockRef specifies the reference block
func WithBlockRef(blockRef BlockRef) BodyOptionFunc {
	return func(b *Body) error {
		b.BlockRef = blockRef
		return nil
	}
}

// WithBlockRefHex specifies the reference block as an 8-byte hex string
func WithBlockRefHex(blockRef string) BodyOptionFunc {
	return func(b *Body) error {
		tmpBlockRef, err := NewBlockRefFromHex(blockRef)
		if err != nil {
			return err
		}
		b.BlockRef = tmpBlockRef
		return nil
	}
}

// WithExpiration specifies the number of blocks after the reference block
// during which the transaction may be included
func WithExpiration(expiration uint32) BodyOptionFunc {
	return func(b *Body) error {
		b.Expiration = expiration
		return nil
	}
}

// WithClause appends clauses. Clause order is significant
func WithClause(clauses ...Clause) BodyOptionFunc {
	return func(b *Body) error {
		b.Clauses = append(b.Clauses, clauses...)
		return nil
	}
}

func WithGasPriceCoef(gasPriceCoef uint8) BodyOptionFunc {
	return func(b *Body) error {
		b.GasPriceCoef = gasPriceCoef
		return nil
	}
}

func WithGas(gas uint64) BodyOptionFunc {
	return func(b *Body) error {
		b.Gas = gas
		return nil
	}
}

// WithGasString specifies the gas limit as a decimal or "0x" hex string
func WithGasString(gas string) BodyOptionFunc {
	return func(b *Body) error {
		tmpGas, err := parseNumeric(gasKind, "gas", gas)
		if err != nil {
			return err
		}
		b.Gas = tmpGas
		return nil
	}
}

// WithDependsOn specifies the ID of a transaction that must be executed first
func WithDependsOn(txId common.Blake2b256) BodyOptionFunc {
	return func(b *Body) error {
		b.DependsOn = &txId
		return nil
	}
}

// WithDependsOnHex is like WithDependsOn but takes a hex string. An empty
// string clears the dependency
func WithDependsOnHex(txId string) BodyOptionFunc {
	return func(b *Body) error {
		data, err := dependsOnKind.Parse(txId)
		if err != nil {
			return fieldError("dependsOn", err)
		}
		if data == nil {
			b.DependsOn = nil
			return nil
		}
		tmpDependsOn := common.NewBlake2b256(data)
		b.DependsOn = &tmpDependsOn
		return nil
	}
}

func WithNonce(nonce uint64) BodyOptionFunc {
	return func(b *Body) error {
		b.Nonce = nonce
		return nil
	}
}

// WithNonceString specifies the nonce as a decimal or "0x" hex string
func WithNonceString(nonce string) BodyOptionFunc {
	return func(b *Body) error {
		tmpNonce, err := parseNumeric(nonceKind, "nonce", nonce)
		if err != nil {
			return err
		}
		b.Nonce = tmpNonce
		return nil
	}
}

// WithFeatures replaces the feature bitmask
func WithFeatures(features Features) BodyOptionFunc {
	return func(b *Body) error {
		b.Reserved.Features = features
		return nil
	}
}

// WithDelegation sets or clears the delegation feature bit
func WithDelegation(delegated bool) BodyOptionFunc {
	return func(b *Body) error {
		b.Reserved.Features = b.Reserved.Features.SetDelegated(delegated)
		return nil
	}
}

// WithUnusedReserved specifies reserved fields beyond the feature bitmask
func WithUnusedReserved(unused ...[]byte) BodyOptionFunc {
	return func(b *Body) error {
		b.Reserved.Unused = make([][]byte, 0, len(unused))
		for _, item := range unused {
			b.Reserved.Unused = append(b.Reserved.Unused, bytes.Clone(item))
		}
		return nil
	}
}

func parseNumeric(kind rlp.NumericKind, field string, value string) (uint64, error) {
	tmpValue, err := kind.Parse(value)
	if err != nil {
		return 0, fieldError(field, err)
	}
	// The kind width keeps the value within 64 bits
	return tmpValue.Uint64(), nil
}
