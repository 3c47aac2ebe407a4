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
	"crypto/ecdsa"
	"fmt"

	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/blinklabs-io/thortx/rlp"
	"github.com/blinklabs-io/thortx/secp256k1"
)

const (
	SignatureSize          = secp256k1.SignatureSize
	DelegatedSignatureSize = SignatureSize * 2
)

// PackUnsignedBody returns the body as an RLP tree in its fixed field order:
// chainTag, blockRef, expiration, clauses, gasPriceCoef, gas, dependsOn, nonce,
// reserved
func (t *Transaction) PackUnsignedBody() rlp.List {
	clauses := make(rlp.List, 0, len(t.body.Clauses))
	for _, clause := range t.body.Clauses {
		clauses = append(clauses, clause.pack())
	}
	var dependsOn []byte
	if t.body.DependsOn != nil {
		dependsOn = t.body.DependsOn.Bytes()
	}
	return rlp.List{
		mustEncodeField(chainTagKind.EncodeUint64(uint64(t.body.ChainTag))),
		mustEncodeField(blockRefKind.Encode(t.body.BlockRef[:])),
		mustEncodeField(expirationKind.EncodeUint64(uint64(t.body.Expiration))),
		clauses,
		mustEncodeField(gasPriceCoefKind.EncodeUint64(uint64(t.body.GasPriceCoef))),
		mustEncodeField(gasKind.EncodeUint64(t.body.Gas)),
		mustEncodeField(dependsOnKind.Encode(dependsOn)),
		mustEncodeField(nonceKind.EncodeUint64(t.body.Nonce)),
		t.body.Reserved.pack(),
	}
}

// Body fields are fixed-width Go types, so the codecs cannot reject them
func mustEncodeField(data []byte, err error) []byte {
	if err != nil {
		panic(fmt.Sprintf("unexpected error packing transaction field: %s", err))
	}
	return data
}

// SigningHash returns the hash signed by the origin. When delegateFor is set,
// it returns the hash a delegator signs on behalf of that origin address
func (t *Transaction) SigningHash(delegateFor *common.Address) common.Blake2b256 {
	hash := common.Blake2b256Hash(rlp.MustEncode(t.PackUnsignedBody()))
	if delegateFor == nil {
		return hash
	}
	return common.Blake2b256Hash(hash.Bytes(), delegateFor.Bytes())
}

// SigningHashFor is like SigningHash but takes the origin address as a string
func (t *Transaction) SigningHashFor(delegateFor string) (common.Blake2b256, error) {
	addr, err := common.NewAddress(delegateFor)
	if err != nil {
		return common.Blake2b256{}, err
	}
	return t.SigningHash(&addr), nil
}

// IsSignatureValid reports whether the signature has the length required by
// the delegation mode. The content is not checked
func (t *Transaction) IsSignatureValid() bool {
	expectedSize := SignatureSize
	if t.IsDelegated() {
		expectedSize = DelegatedSignatureSize
	}
	return len(t.signature) == expectedSize
}

// OriginPublicKey recovers the public key of the sender
func (t *Transaction) OriginPublicKey() ([]byte, bool) {
	if !t.IsSignatureValid() {
		return nil, false
	}
	hash := t.SigningHash(nil)
	pubKey, err := secp256k1.Recover(hash.Bytes(), t.signature[:SignatureSize])
	if err != nil {
		return nil, false
	}
	return pubKey, true
}

// Origin recovers the address of the sender
func (t *Transaction) Origin() (common.Address, bool) {
	pubKey, ok := t.OriginPublicKey()
	if !ok {
		return common.Address{}, false
	}
	addr, err := common.PublicKeyToAddress(pubKey)
	if err != nil {
		return common.Address{}, false
	}
	return addr, true
}

// DelegatorPublicKey recovers the public key of the fee payer of a delegated
// transaction
func (t *Transaction) DelegatorPublicKey() ([]byte, bool) {
	if !t.IsDelegated() || !t.IsSignatureValid() {
		return nil, false
	}
	origin, ok := t.Origin()
	if !ok {
		return nil, false
	}
	hash := t.SigningHash(&origin)
	pubKey, err := secp256k1.Recover(hash.Bytes(), t.signature[SignatureSize:])
	if err != nil {
		return nil, false
	}
	return pubKey, true
}

// Delegator recovers the address of the fee payer of a delegated transaction
func (t *Transaction) Delegator() (common.Address, bool) {
	pubKey, ok := t.DelegatorPublicKey()
	if !ok {
		return common.Address{}, false
	}
	addr, err := common.PublicKeyToAddress(pubKey)
	if err != nil {
		return common.Address{}, false
	}
	return addr, true
}

// ID returns the transaction ID, which binds the body to the origin address
func (t *Transaction) ID() (common.Blake2b256, bool) {
	origin, ok := t.Origin()
	if !ok {
		return common.Blake2b256{}, false
	}
	hash := t.SigningHash(nil)
	return common.Blake2b256Hash(hash.Bytes(), origin.Bytes()), true
}

// Encode returns the wire form: the unsigned body with the signature appended
// as a final element when present
func (t *Transaction) Encode() ([]byte, error) {
	body := t.PackUnsignedBody()
	if len(t.signature) > 0 {
		sig, _ := signatureKind.Encode(t.signature)
		body = body.Append(sig)
	}
	return rlp.Encode(body)
}

// Sign returns a copy of a non-delegated transaction signed by key
func (t *Transaction) Sign(key *ecdsa.PrivateKey) (*Transaction, error) {
	if t.IsDelegated() {
		return nil, fmt.Errorf("%w: a delegator signature is required", ErrDelegated)
	}
	hash := t.SigningHash(nil)
	sig, err := secp256k1.Sign(hash.Bytes(), key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return t.WithSignature(sig), nil
}

// SignAsDelegated returns a copy of a delegated transaction signed by the
// origin key and then by the delegator key over the origin-bound hash
func (t *Transaction) SignAsDelegated(
	originKey *ecdsa.PrivateKey,
	delegatorKey *ecdsa.PrivateKey,
) (*Transaction, error) {
	if !t.IsDelegated() {
		return nil, ErrNotDelegated
	}
	hash := t.SigningHash(nil)
	originSig, err := secp256k1.Sign(hash.Bytes(), originKey)
	if err != nil {
		return nil, fmt.Errorf("%w: origin: %w", ErrInvalidSignature, err)
	}
	origin, err := common.PublicKeyToAddress(secp256k1.PublicKey(originKey))
	if err != nil {
		return nil, fmt.Errorf("%w: origin: %w", ErrInvalidSignature, err)
	}
	delegatorHash := t.SigningHash(&origin)
	delegatorSig, err := secp256k1.Sign(delegatorHash.Bytes(), delegatorKey)
	if err != nil {
		return nil, fmt.Errorf("%w: delegator: %w", ErrInvalidSignature, err)
	}
	sig := make([]byte, 0, DelegatedSignatureSize)
	sig = append(sig, originSig...)
	sig = append(sig, delegatorSig...)
	return t.WithSignature(sig), nil
}
