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
	"encoding/binary"
	"fmt"

	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/blinklabs-io/thortx/rlp"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	BlockRefSize = 8
)

var (
	chainTagKind     = rlp.NewNumericKind(1)
	blockRefKind     = rlp.NewFixedBlobKind(BlockRefSize)
	expirationKind   = rlp.NewNumericKind(4)
	gasPriceCoefKind = rlp.NewNumericKind(1)
	gasKind          = rlp.NewNumericKind(8)
	dependsOnKind    = rlp.NewNullableFixedBlobKind(common.Blake2b256Size)
	nonceKind        = rlp.NewNumericKind(8)
	signatureKind    = rlp.BlobKind{}
)

// BlockRef references a recent block. The first 4 bytes are the block number
// in big-endian order and the rest come from the block ID
type BlockRef [BlockRefSize]byte

// NewBlockRef returns a reference to the block with the given number
func NewBlockRef(blockNum uint32) BlockRef {
	var ret BlockRef
	binary.BigEndian.PutUint32(ret[:4], blockNum)
	return ret
}

// NewBlockRefFromHex parses an 8-byte hex string with an optional "0x" prefix
func NewBlockRefFromHex(s string) (BlockRef, error) {
	data, err := blockRefKind.Parse(s)
	if err != nil {
		return BlockRef{}, fieldError("blockRef", err)
	}
	return BlockRef(data), nil
}

func (b BlockRef) Number() uint32 {
	return binary.BigEndian.Uint32(b[:4])
}

func (b BlockRef) String() string {
	return hexutil.Encode(b[:])
}

// Body holds the signed fields of a transaction
type Body struct {
	ChainTag     uint8
	BlockRef     BlockRef
	Expiration   uint32
	Clauses      []Clause
	GasPriceCoef uint8
	Gas          uint64
	DependsOn    *common.Blake2b256
	Nonce        uint64
	Reserved     Reserved
}

// Copy returns a deep copy of the body
func (b Body) Copy() Body {
	ret := b
	if b.Clauses != nil {
		ret.Clauses = make([]Clause, len(b.Clauses))
		copy(ret.Clauses, b.Clauses)
	}
	if b.DependsOn != nil {
		tmpDependsOn := *b.DependsOn
		ret.DependsOn = &tmpDependsOn
	}
	ret.Reserved = b.Reserved.Copy()
	return ret
}

// Transaction is an immutable transaction body plus an optional signature.
// Use Body and NewFromBody to derive a modified transaction. Doing so after
// signing leaves the old signature attached to a body it does not cover
type Transaction struct {
	body      Body
	signature []byte
}

// NewFromBody returns an unsigned transaction holding a copy of body
func NewFromBody(body Body) *Transaction {
	return &Transaction{
		body: body.Copy(),
	}
}

// Body returns a copy of the transaction body
func (t *Transaction) Body() Body {
	return t.body.Copy()
}

func (t *Transaction) ChainTag() uint8 {
	return t.body.ChainTag
}

func (t *Transaction) BlockRef() BlockRef {
	return t.body.BlockRef
}

func (t *Transaction) Expiration() uint32 {
	return t.body.Expiration
}

func (t *Transaction) Clauses() []Clause {
	ret := make([]Clause, len(t.body.Clauses))
	copy(ret, t.body.Clauses)
	return ret
}

func (t *Transaction) GasPriceCoef() uint8 {
	return t.body.GasPriceCoef
}

func (t *Transaction) Gas() uint64 {
	return t.body.Gas
}

// DependsOn returns the ID of the transaction this one depends on, or nil
func (t *Transaction) DependsOn() *common.Blake2b256 {
	if t.body.DependsOn == nil {
		return nil
	}
	tmpDependsOn := *t.body.DependsOn
	return &tmpDependsOn
}

func (t *Transaction) Nonce() uint64 {
	return t.body.Nonce
}

func (t *Transaction) Features() Features {
	return t.body.Reserved.Features
}

func (t *Transaction) IsDelegated() bool {
	return t.body.Reserved.Features.IsDelegated()
}

// Signature returns a copy of the raw signature bytes, or nil when unsigned
func (t *Transaction) Signature() []byte {
	return bytes.Clone(t.signature)
}

// WithSignature returns a copy of the transaction with sig attached. The
// signature is not checked
func (t *Transaction) WithSignature(sig []byte) *Transaction {
	ret := t.Copy()
	ret.signature = bytes.Clone(sig)
	return ret
}

// Copy returns a deep copy of the transaction
func (t *Transaction) Copy() *Transaction {
	return &Transaction{
		body:      t.body.Copy(),
		signature: bytes.Clone(t.signature),
	}
}

func (t *Transaction) String() string {
	id := "unknown"
	if tmpId, ok := t.ID(); ok {
		id = tmpId.String()
	}
	return fmt.Sprintf(
		"Tx(id=%s, chainTag=%d, blockRef=%s, expiration=%d, clauses=%d, gasPriceCoef=%d, gas=%d, nonce=%d, delegated=%t)",
		id,
		t.body.ChainTag,
		t.body.BlockRef,
		t.body.Expiration,
		len(t.body.Clauses),
		t.body.GasPriceCoef,
		t.body.Gas,
		t.body.Nonce,
		t.IsDelegated(),
	)
}
