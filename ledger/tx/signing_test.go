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

package tx_test

import (
	"bytes"
	"crypto/ecdsa"
	"testing"

	"github.com/blinklabs-io/thortx/internal/test"
	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/blinklabs-io/thortx/ledger/tx"
	"github.com/blinklabs-io/thortx/secp256k1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey(t *testing.T, hexKey string) *ecdsa.PrivateKey {
	t.Helper()
	key, err := secp256k1.PrivateKeyFromHex(hexKey)
	require.NoError(t, err)
	return key
}

func TestSigningHash(t *testing.T) {
	trx := newTestTx(t)
	encoded, err := trx.Encode()
	require.NoError(t, err)
	hash := trx.SigningHash(nil)
	assert.Equal(t, common.Blake2b256Hash(encoded), hash)

	origin, err := common.NewAddress(test.OriginAddress)
	require.NoError(t, err)
	delegatedHash := trx.SigningHash(&origin)
	assert.Equal(t, common.Blake2b256Hash(hash.Bytes(), origin.Bytes()), delegatedHash)
	assert.NotEqual(t, hash, delegatedHash)

	fromString, err := trx.SigningHashFor(test.OriginAddress)
	require.NoError(t, err)
	assert.Equal(t, delegatedHash, fromString)

	_, err = trx.SigningHashFor("not an address")
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
	_, err = trx.SigningHashFor("0x1234")
	assert.ErrorIs(t, err, common.ErrInvalidAddress)
}

func TestSigningHashCoversBody(t *testing.T) {
	base := newTestTx(t).SigningHash(nil)
	testDefs := []struct {
		name string
		opt  tx.BodyOptionFunc
	}{
		{name: "chain tag", opt: tx.WithChainTag(2)},
		{name: "block ref", opt: tx.WithBlockRef(tx.NewBlockRef(1))},
		{name: "expiration", opt: tx.WithExpiration(33)},
		{name: "clause", opt: tx.WithClause(mustParseClause(t, testClauseTo, "1", "0x"))},
		{name: "gas price coef", opt: tx.WithGasPriceCoef(0)},
		{name: "gas", opt: tx.WithGas(21001)},
		{name: "depends on", opt: tx.WithDependsOn(common.Blake2b256Hash())},
		{name: "nonce", opt: tx.WithNonce(1)},
		{name: "features", opt: tx.WithFeatures(2)},
	}
	for _, testDef := range testDefs {
		hash := newTestTx(t, testDef.opt).SigningHash(nil)
		assert.NotEqual(t, base, hash, "changing %s did not change the signing hash", testDef.name)
	}
}

func TestSignAndRecoverOrigin(t *testing.T) {
	key := testKey(t, test.OriginPrivateKey)
	unsigned := newTestTx(t, tx.WithClause(mustParseClause(t, testClauseTo, "10000", "0x000000606060")))
	_, ok := unsigned.Origin()
	assert.False(t, ok)
	_, ok = unsigned.ID()
	assert.False(t, ok)

	trx1, err := unsigned.Sign(key)
	require.NoError(t, err)
	trx2, err := unsigned.Sign(key)
	require.NoError(t, err)
	assert.Nil(t, unsigned.Signature())
	assert.True(t, trx1.IsSignatureValid())
	assert.Len(t, trx1.Signature(), tx.SignatureSize)

	for _, trx := range []*tx.Transaction{trx1, trx2} {
		origin, ok := trx.Origin()
		require.True(t, ok)
		assert.Equal(t, test.OriginAddress, origin.String())
		pubKey, ok := trx.OriginPublicKey()
		require.True(t, ok)
		assert.Equal(t, secp256k1.PublicKey(key), pubKey)
		_, ok = trx.Delegator()
		assert.False(t, ok)
		_, ok = trx.DelegatorPublicKey()
		assert.False(t, ok)
	}
}

func TestID(t *testing.T) {
	unsigned := newTestTx(t)
	trx1, err := unsigned.Sign(testKey(t, test.OriginPrivateKey))
	require.NoError(t, err)
	trx2, err := unsigned.Sign(testKey(t, test.DelegatorPrivateKey))
	require.NoError(t, err)

	id1, ok := trx1.ID()
	require.True(t, ok)
	id2, ok := trx2.ID()
	require.True(t, ok)
	assert.NotEqual(t, id1, id2)

	origin, err := common.NewAddress(test.OriginAddress)
	require.NoError(t, err)
	hash := unsigned.SigningHash(nil)
	assert.Equal(t, common.Blake2b256Hash(hash.Bytes(), origin.Bytes()), id1)
	// The ID of a plain transaction equals the hash a delegator would sign
	assert.Equal(t, unsigned.SigningHash(&origin), id1)
}

func TestSignatureShape(t *testing.T) {
	plain := newTestTx(t)
	delegated := newTestTx(t, tx.WithDelegation(true))
	testDefs := []struct {
		trx      *tx.Transaction
		sigLen   int
		expected bool
	}{
		{trx: plain, sigLen: 0, expected: false},
		{trx: plain, sigLen: 64, expected: false},
		{trx: plain, sigLen: 65, expected: true},
		{trx: plain, sigLen: 66, expected: false},
		{trx: plain, sigLen: 130, expected: false},
		{trx: delegated, sigLen: 65, expected: false},
		{trx: delegated, sigLen: 129, expected: false},
		{trx: delegated, sigLen: 130, expected: true},
		{trx: delegated, sigLen: 131, expected: false},
	}
	for _, testDef := range testDefs {
		trx := testDef.trx.WithSignature(make([]byte, testDef.sigLen))
		assert.Equal(
			t,
			testDef.expected,
			trx.IsSignatureValid(),
			"delegated=%t, signature length %d",
			trx.IsDelegated(),
			testDef.sigLen,
		)
		// All-zero signatures never recover
		_, ok := trx.Origin()
		assert.False(t, ok)
		_, ok = trx.ID()
		assert.False(t, ok)
	}
}

func TestGarbageSignature(t *testing.T) {
	sig := bytes.Repeat([]byte{0xff}, tx.SignatureSize)
	trx := newTestTx(t).WithSignature(sig)
	assert.True(t, trx.IsSignatureValid())
	_, ok := trx.OriginPublicKey()
	assert.False(t, ok)
	_, ok = trx.Origin()
	assert.False(t, ok)
	_, ok = trx.ID()
	assert.False(t, ok)
	assert.Contains(t, trx.String(), "id=unknown")
}

func TestSignDelegated(t *testing.T) {
	originKey := testKey(t, test.OriginPrivateKey)
	delegatorKey := testKey(t, test.DelegatorPrivateKey)
	unsigned := newTestTx(t, tx.WithDelegation(true))
	require.True(t, unsigned.IsDelegated())

	trx, err := unsigned.SignAsDelegated(originKey, delegatorKey)
	require.NoError(t, err)
	assert.Len(t, trx.Signature(), tx.DelegatedSignatureSize)
	assert.True(t, trx.IsSignatureValid())

	origin, ok := trx.Origin()
	require.True(t, ok)
	assert.Equal(t, test.OriginAddress, origin.String())
	delegator, ok := trx.Delegator()
	require.True(t, ok)
	assert.Equal(t, test.DelegatorAddress, delegator.String())
	pubKey, ok := trx.DelegatorPublicKey()
	require.True(t, ok)
	assert.Equal(t, secp256k1.PublicKey(delegatorKey), pubKey)

	// The delegator signs the origin-bound hash
	delegatorPubKey, err := secp256k1.Recover(
		unsigned.SigningHash(&origin).Bytes(),
		trx.Signature()[tx.SignatureSize:],
	)
	require.NoError(t, err)
	assert.Equal(t, pubKey, delegatorPubKey)

	// The ID does not depend on the delegator
	id, ok := trx.ID()
	require.True(t, ok)
	otherTrx, err := unsigned.SignAsDelegated(originKey, originKey)
	require.NoError(t, err)
	otherId, ok := otherTrx.ID()
	require.True(t, ok)
	assert.Equal(t, id, otherId)
}

func TestSignDelegatedSwappedSegments(t *testing.T) {
	originKey := testKey(t, test.OriginPrivateKey)
	delegatorKey := testKey(t, test.DelegatorPrivateKey)
	trx, err := newTestTx(t, tx.WithDelegation(true)).SignAsDelegated(originKey, delegatorKey)
	require.NoError(t, err)
	sig := trx.Signature()
	swapped := make([]byte, 0, len(sig))
	swapped = append(swapped, sig[tx.SignatureSize:]...)
	swapped = append(swapped, sig[:tx.SignatureSize]...)
	trx = trx.WithSignature(swapped)
	require.True(t, trx.IsSignatureValid())

	delegator, ok := trx.Delegator()
	if ok {
		assert.NotEqual(t, test.DelegatorAddress, delegator.String())
	}
	origin, ok := trx.Origin()
	if ok {
		assert.NotEqual(t, test.OriginAddress, origin.String())
	}
}

func TestDelegationExactMatch(t *testing.T) {
	// Only a bitmask of exactly 1 enables delegation. Other bits, even
	// combined with the delegation bit, disable it
	testDefs := []struct {
		features tx.Features
		expected bool
	}{
		{features: 0, expected: false},
		{features: 1, expected: true},
		{features: 2, expected: false},
		{features: 3, expected: false},
		{features: 0x80000001, expected: false},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, testDef.features.IsDelegated(), "features %d", testDef.features)
		trx := newTestTx(t, tx.WithFeatures(testDef.features))
		assert.Equal(t, testDef.expected, trx.IsDelegated(), "features %d", testDef.features)
	}

	// With extra bits set, a single signature is the valid shape
	trx, err := newTestTx(t, tx.WithFeatures(3)).Sign(testKey(t, test.OriginPrivateKey))
	require.NoError(t, err)
	assert.True(t, trx.IsSignatureValid())
	_, ok := trx.Origin()
	assert.True(t, ok)
	_, ok = trx.Delegator()
	assert.False(t, ok)
}

func TestSignModeMismatch(t *testing.T) {
	key := testKey(t, test.OriginPrivateKey)
	_, err := newTestTx(t, tx.WithDelegation(true)).Sign(key)
	assert.ErrorIs(t, err, tx.ErrDelegated)
	_, err = newTestTx(t).SignAsDelegated(key, key)
	assert.ErrorIs(t, err, tx.ErrNotDelegated)
	_, err = newTestTx(t).Sign(nil)
	assert.ErrorIs(t, err, tx.ErrInvalidSignature)
	_, err = newTestTx(t, tx.WithDelegation(true)).SignAsDelegated(key, nil)
	assert.ErrorIs(t, err, tx.ErrInvalidSignature)
}

func TestModifiedBodyBreaksSignature(t *testing.T) {
	trx, err := newTestTx(t).Sign(testKey(t, test.OriginPrivateKey))
	require.NoError(t, err)
	body := trx.Body()
	body.Nonce++
	modified := tx.NewFromBody(body).WithSignature(trx.Signature())
	assert.True(t, modified.IsSignatureValid())
	origin, ok := modified.Origin()
	if ok {
		assert.NotEqual(t, test.OriginAddress, origin.String())
	}
}

func TestSignedEncoding(t *testing.T) {
	trx, err := newTestTx(t, tx.WithDelegation(true)).SignAsDelegated(
		testKey(t, test.OriginPrivateKey),
		testKey(t, test.DelegatorPrivateKey),
	)
	require.NoError(t, err)
	encoded, err := trx.Encode()
	require.NoError(t, err)
	unsigned, err := newTestTx(t, tx.WithDelegation(true)).Encode()
	require.NoError(t, err)
	// 130 signature bytes add a 2-byte string header and widen the list
	// header from 1 to 2 bytes
	assert.Len(t, encoded, len(unsigned)+1+2+tx.DelegatedSignatureSize)

	decoded, err := tx.Decode(encoded, false)
	require.NoError(t, err)
	delegator, ok := decoded.Delegator()
	require.True(t, ok)
	assert.Equal(t, test.DelegatorAddress, delegator.String())
	id, ok := trx.ID()
	require.True(t, ok)
	decodedId, ok := decoded.ID()
	require.True(t, ok)
	assert.Equal(t, id, decodedId)
}
