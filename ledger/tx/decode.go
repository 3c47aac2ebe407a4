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
	"fmt"

	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/blinklabs-io/thortx/rlp"
)

const (
	unsignedFieldCount = 9
	signedFieldCount   = 10
)

// Decode parses the wire form of a transaction. When unsigned is true the
// input must not carry a signature element. Otherwise the signature element
// must be present, though it may be empty
func Decode(data []byte, unsigned bool) (*Transaction, error) {
	items, err := rlp.DecodeList(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}
	expectedCount := signedFieldCount
	if unsigned {
		expectedCount = unsignedFieldCount
	}
	if len(items) != expectedCount {
		return nil, fmt.Errorf(
			"%w: expected %d fields, found %d",
			ErrInvalidTransaction,
			expectedCount,
			len(items),
		)
	}
	var body Body
	if err := decodeBody(items[:unsignedFieldCount], &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTransaction, err)
	}
	ret := NewFromBody(body)
	if !unsigned {
		sigBytes, err := rlp.AsBytes(items[unsignedFieldCount])
		if err != nil {
			return nil, fmt.Errorf(
				"%w: %w",
				ErrInvalidTransaction,
				fieldError("signature", err),
			)
		}
		if len(sigBytes) > 0 {
			ret.signature, _ = signatureKind.Decode(sigBytes)
		}
	}
	return ret, nil
}

func decodeBody(items rlp.List, body *Body) error {
	scalar := func(idx int, name string) ([]byte, error) {
		ret, err := rlp.AsBytes(items[idx])
		if err != nil {
			return nil, fieldError(name, err)
		}
		return ret, nil
	}
	numeric := func(idx int, name string, kind rlp.NumericKind) (uint64, error) {
		data, err := scalar(idx, name)
		if err != nil {
			return 0, err
		}
		ret, err := kind.DecodeUint64(data)
		if err != nil {
			return 0, fieldError(name, err)
		}
		return ret, nil
	}
	chainTag, err := numeric(0, "chainTag", chainTagKind)
	if err != nil {
		return err
	}
	body.ChainTag = uint8(chainTag)
	blockRefBytes, err := scalar(1, "blockRef")
	if err != nil {
		return err
	}
	blockRef, err := blockRefKind.Decode(blockRefBytes)
	if err != nil {
		return fieldError("blockRef", err)
	}
	body.BlockRef = BlockRef(blockRef)
	expiration, err := numeric(2, "expiration", expirationKind)
	if err != nil {
		return err
	}
	body.Expiration = uint32(expiration)
	clauseItems, err := rlp.AsList(items[3])
	if err != nil {
		return fieldError("clauses", err)
	}
	body.Clauses = make([]Clause, 0, len(clauseItems))
	for _, clauseItem := range clauseItems {
		clause, err := decodeClause(clauseItem)
		if err != nil {
			return err
		}
		body.Clauses = append(body.Clauses, clause)
	}
	gasPriceCoef, err := numeric(4, "gasPriceCoef", gasPriceCoefKind)
	if err != nil {
		return err
	}
	body.GasPriceCoef = uint8(gasPriceCoef)
	if body.Gas, err = numeric(5, "gas", gasKind); err != nil {
		return err
	}
	dependsOnBytes, err := scalar(6, "dependsOn")
	if err != nil {
		return err
	}
	dependsOn, err := dependsOnKind.Decode(dependsOnBytes)
	if err != nil {
		return fieldError("dependsOn", err)
	}
	if dependsOn != nil {
		tmpDependsOn := common.NewBlake2b256(dependsOn)
		body.DependsOn = &tmpDependsOn
	}
	if body.Nonce, err = numeric(7, "nonce", nonceKind); err != nil {
		return err
	}
	if body.Reserved, err = decodeReserved(items[8]); err != nil {
		return err
	}
	return nil
}
