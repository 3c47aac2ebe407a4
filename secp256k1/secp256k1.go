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

// Package secp256k1 wraps the recoverable ECDSA primitives used to sign
// transactions and to recover the signer's public key.
//
// Signatures are 65 bytes: R (32) || S (32) || V (1), where V is the recovery
// id and must be 0 or 1. Public keys are 65-byte uncompressed points with a
// leading 0x04.
package secp256k1

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/blinklabs-io/thortx/rlp"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

const (
	// HashSize is the size of a message hash that can be signed
	HashSize = 32

	// SignatureSize is the size of a recoverable signature
	SignatureSize = 65

	// PublicKeySize is the size of an uncompressed public key
	PublicKeySize = 65

	// PrivateKeySize is the size of a raw private key
	PrivateKeySize = 32
)

var (
	ErrInvalidHash       = errors.New("invalid message hash")
	ErrInvalidSignature  = errors.New("invalid signature")
	ErrInvalidRecoveryId = errors.New("invalid signature recovery id")
	ErrInvalidPrivateKey = errors.New("invalid private key")
)

// GenerateKey creates a new random private key
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ethcrypto.GenerateKey()
}

// PrivateKeyFromBytes loads a raw 32-byte private key
func PrivateKeyFromBytes(data []byte) (*ecdsa.PrivateKey, error) {
	if len(data) != PrivateKeySize {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidPrivateKey,
			PrivateKeySize,
			len(data),
		)
	}
	key, err := ethcrypto.ToECDSA(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// PrivateKeyFromHex loads a hex private key with an optional "0x" prefix
func PrivateKeyFromHex(hexKey string) (*ecdsa.PrivateKey, error) {
	data, err := rlp.NewFixedBlobKind(PrivateKeySize).Parse(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return PrivateKeyFromBytes(data)
}

// PrivateKeyBytes returns the raw 32-byte form of a private key
func PrivateKeyBytes(key *ecdsa.PrivateKey) []byte {
	return ethcrypto.FromECDSA(key)
}

// PublicKey returns the uncompressed public key for a private key
func PublicKey(key *ecdsa.PrivateKey) []byte {
	return ethcrypto.FromECDSAPub(&key.PublicKey)
}

// Sign produces a recoverable signature over a 32-byte hash. Signing is
// deterministic (RFC 6979)
func Sign(hash []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	if len(hash) != HashSize {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidHash,
			HashSize,
			len(hash),
		)
	}
	if key == nil {
		return nil, ErrInvalidPrivateKey
	}
	return ethcrypto.Sign(hash, key)
}

// Recover returns the uncompressed public key that produced sig over hash
func Recover(hash []byte, sig []byte) ([]byte, error) {
	if len(hash) != HashSize {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidHash,
			HashSize,
			len(hash),
		)
	}
	if len(sig) != SignatureSize {
		return nil, fmt.Errorf(
			"%w: expected %d bytes, got %d",
			ErrInvalidSignature,
			SignatureSize,
			len(sig),
		)
	}
	if sig[SignatureSize-1] > 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRecoveryId, sig[SignatureSize-1])
	}
	pubKey, err := ethcrypto.Ecrecover(hash, sig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	if len(pubKey) != PublicKeySize || pubKey[0] != 0x04 {
		return nil, fmt.Errorf("%w: recovered malformed public key", ErrInvalidSignature)
	}
	return pubKey, nil
}
