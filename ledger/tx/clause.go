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
	"math/big"

	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/blinklabs-io/thortx/rlp"
)

var (
	clauseToKind    = rlp.NewNullableFixedBlobKind(common.AddressSize)
	clauseValueKind = rlp.NewNumericKind(32)
	clauseDataKind  = rlp.BlobKind{}
)

// Clause is a single transfer or contract call. A nil destination deploys a
// contract
type Clause struct {
	to    *common.Address
	value *big.Int
	data  []byte
}

// NewClause builds a clause. A nil value is treated as zero
func NewClause(to *common.Address, value *big.Int, data []byte) (Clause, error) {
	c := Clause{
		value: new(big.Int),
	}
	if to != nil {
		tmpTo := *to
		c.to = &tmpTo
	}
	if value != nil {
		if _, err := clauseValueKind.Encode(value); err != nil {
			return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, fieldError("value", err))
		}
		c.value.Set(value)
	}
	// Clause data has no length constraint
	c.data, _ = clauseDataKind.Encode(data)
	return c, nil
}

// ParseClause builds a clause from its string form. An empty destination
// deploys a contract
func ParseClause(to string, value string, data string) (Clause, error) {
	var toAddr *common.Address
	if to != "" {
		tmpTo, err := common.NewAddress(to)
		if err != nil {
			return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, fieldError("to", err))
		}
		toAddr = &tmpTo
	}
	var tmpValue *big.Int
	if value != "" {
		var err error
		tmpValue, err = clauseValueKind.Parse(value)
		if err != nil {
			return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, fieldError("value", err))
		}
	}
	tmpData, err := clauseDataKind.Parse(data)
	if err != nil {
		return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, fieldError("data", err))
	}
	return NewClause(toAddr, tmpValue, tmpData)
}

// To returns the destination address, or nil for contract creation
func (c Clause) To() *common.Address {
	if c.to == nil {
		return nil
	}
	tmpTo := *c.to
	return &tmpTo
}

func (c Clause) Value() *big.Int {
	if c.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(c.value)
}

func (c Clause) Data() []byte {
	return bytes.Clone(c.data)
}

func (c Clause) IsCreation() bool {
	return c.to == nil
}

func (c Clause) String() string {
	to := "nil"
	if c.to != nil {
		to = c.to.String()
	}
	return fmt.Sprintf("Clause(to=%s, value=%s, data=%d bytes)", to, c.Value(), len(c.data))
}

func (c Clause) pack() rlp.List {
	var to []byte
	if c.to != nil {
		to = c.to.Bytes()
	}
	toBytes, err := clauseToKind.Encode(to)
	if err != nil {
		panic(fmt.Sprintf("unexpected error packing clause destination: %s", err))
	}
	valueBytes, err := clauseValueKind.Encode(c.value)
	if err != nil {
		panic(fmt.Sprintf("unexpected error packing clause value: %s", err))
	}
	dataBytes, _ := clauseDataKind.Encode(c.data)
	return rlp.List{toBytes, valueBytes, dataBytes}
}

func decodeClause(item any) (Clause, error) {
	items, err := rlp.AsList(item)
	if err != nil {
		return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, err)
	}
	if len(items) != 3 {
		return Clause{}, fmt.Errorf(
			"%w: expected 3 fields, found %d",
			ErrInvalidClause,
			len(items),
		)
	}
	var fields [3][]byte
	for i := range items {
		fields[i], err = rlp.AsBytes(items[i])
		if err != nil {
			return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, err)
		}
	}
	var to *common.Address
	toBytes, err := clauseToKind.Decode(fields[0])
	if err != nil {
		return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, fieldError("to", err))
	}
	if toBytes != nil {
		tmpTo := common.Address(toBytes)
		to = &tmpTo
	}
	value, err := clauseValueKind.Decode(fields[1])
	if err != nil {
		return Clause{}, fmt.Errorf("%w: %w", ErrInvalidClause, fieldError("value", err))
	}
	data, _ := clauseDataKind.Decode(fields[2])
	return NewClause(to, value, data)
}
