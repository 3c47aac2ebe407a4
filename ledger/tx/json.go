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
	"encoding/json"
	"fmt"

	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// jsonNumeric accepts either a JSON number or a string holding a decimal or
// "0x" hex number. A missing value is zero
type jsonNumeric string

func (n *jsonNumeric) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var tmp string
		if err := json.Unmarshal(data, &tmp); err != nil {
			return err
		}
		*n = jsonNumeric(tmp)
		return nil
	}
	var tmp json.Number
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*n = jsonNumeric(tmp.String())
	return nil
}

func (n jsonNumeric) value() string {
	if n == "" {
		return "0"
	}
	return string(n)
}

type clauseJSON struct {
	To    *string     `json:"to"`
	Value jsonNumeric `json:"value"`
	Data  string      `json:"data"`
}

func (c Clause) MarshalJSON() ([]byte, error) {
	tmp := struct {
		To    *common.Address `json:"to"`
		Value string          `json:"value"`
		Data  string          `json:"data"`
	}{
		To:    c.To(),
		Value: c.Value().String(),
		Data:  hexutil.Encode(c.data),
	}
	return json.Marshal(&tmp)
}

func (c *Clause) UnmarshalJSON(data []byte) error {
	var tmp clauseJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	var to string
	if tmp.To != nil {
		to = *tmp.To
	}
	tmpClause, err := ParseClause(to, tmp.Value.value(), tmp.Data)
	if err != nil {
		return err
	}
	*c = tmpClause
	return nil
}

type reservedJSON struct {
	Features jsonNumeric     `json:"features"`
	Unused   []hexutil.Bytes `json:"unused,omitempty"`
}

type bodyJSON struct {
	ChainTag     jsonNumeric   `json:"chainTag"`
	BlockRef     string        `json:"blockRef"`
	Expiration   jsonNumeric   `json:"expiration"`
	Clauses      []Clause      `json:"clauses"`
	GasPriceCoef jsonNumeric   `json:"gasPriceCoef"`
	Gas          jsonNumeric   `json:"gas"`
	DependsOn    *string       `json:"dependsOn"`
	Nonce        jsonNumeric   `json:"nonce"`
	Reserved     *reservedJSON `json:"reserved,omitempty"`
}

// MarshalJSON emits value, gas and nonce as decimal strings so that large
// values survive parsers that read numbers as floats
func (b Body) MarshalJSON() ([]byte, error) {
	type reservedOut struct {
		Features uint32          `json:"features"`
		Unused   []hexutil.Bytes `json:"unused,omitempty"`
	}
	tmp := struct {
		ChainTag     uint8              `json:"chainTag"`
		BlockRef     string             `json:"blockRef"`
		Expiration   uint32             `json:"expiration"`
		Clauses      []Clause           `json:"clauses"`
		GasPriceCoef uint8              `json:"gasPriceCoef"`
		Gas          string             `json:"gas"`
		DependsOn    *common.Blake2b256 `json:"dependsOn"`
		Nonce        string             `json:"nonce"`
		Reserved     reservedOut        `json:"reserved"`
	}{
		ChainTag:     b.ChainTag,
		BlockRef:     b.BlockRef.String(),
		Expiration:   b.Expiration,
		Clauses:      b.Clauses,
		GasPriceCoef: b.GasPriceCoef,
		Gas:          fmt.Sprintf("%d", b.Gas),
		DependsOn:    b.DependsOn,
		Nonce:        fmt.Sprintf("%d", b.Nonce),
		Reserved: reservedOut{
			Features: uint32(b.Reserved.Features),
		},
	}
	if tmp.Clauses == nil {
		tmp.Clauses = []Clause{}
	}
	for _, item := range b.Reserved.Unused {
		tmp.Reserved.Unused = append(tmp.Reserved.Unused, hexutil.Bytes(item))
	}
	return json.Marshal(&tmp)
}

func (b *Body) UnmarshalJSON(data []byte) error {
	var tmp bodyJSON
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	var ret Body
	chainTag, err := parseNumeric(chainTagKind, "chainTag", tmp.ChainTag.value())
	if err != nil {
		return err
	}
	ret.ChainTag = uint8(chainTag)
	if ret.BlockRef, err = NewBlockRefFromHex(tmp.BlockRef); err != nil {
		return err
	}
	expiration, err := parseNumeric(expirationKind, "expiration", tmp.Expiration.value())
	if err != nil {
		return err
	}
	ret.Expiration = uint32(expiration)
	ret.Clauses = tmp.Clauses
	gasPriceCoef, err := parseNumeric(gasPriceCoefKind, "gasPriceCoef", tmp.GasPriceCoef.value())
	if err != nil {
		return err
	}
	ret.GasPriceCoef = uint8(gasPriceCoef)
	if ret.Gas, err = parseNumeric(gasKind, "gas", tmp.Gas.value()); err != nil {
		return err
	}
	if tmp.DependsOn != nil {
		if err := WithDependsOnHex(*tmp.DependsOn)(&ret); err != nil {
			return err
		}
	}
	if ret.Nonce, err = parseNumeric(nonceKind, "nonce", tmp.Nonce.value()); err != nil {
		return err
	}
	if tmp.Reserved != nil {
		features, err := parseNumeric(featuresKind, "features", tmp.Reserved.Features.value())
		if err != nil {
			return err
		}
		ret.Reserved.Features = Features(features)
		for _, item := range tmp.Reserved.Unused {
			ret.Reserved.Unused = append(ret.Reserved.Unused, []byte(item))
		}
	}
	*b = ret
	return nil
}

// MarshalJSON emits the body along with the signature and whatever identity
// information can be recovered from it
func (t *Transaction) MarshalJSON() ([]byte, error) {
	tmp := struct {
		Body         Body               `json:"body"`
		IntrinsicGas uint64             `json:"intrinsicGas"`
		Delegated    bool               `json:"delegated"`
		Signature    *string            `json:"signature"`
		ID           *common.Blake2b256 `json:"id,omitempty"`
		Origin       *common.Address    `json:"origin,omitempty"`
		Delegator    *common.Address    `json:"delegator,omitempty"`
	}{
		Body:         t.body,
		IntrinsicGas: t.IntrinsicGas(),
		Delegated:    t.IsDelegated(),
	}
	if t.signature != nil {
		sig := hexutil.Encode(t.signature)
		tmp.Signature = &sig
	}
	if id, ok := t.ID(); ok {
		tmp.ID = &id
	}
	if origin, ok := t.Origin(); ok {
		tmp.Origin = &origin
	}
	if delegator, ok := t.Delegator(); ok {
		tmp.Delegator = &delegator
	}
	return json.Marshal(&tmp)
}
