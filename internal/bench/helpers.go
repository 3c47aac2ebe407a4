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

// Package bench provides benchmark utilities and transaction fixtures.
package bench

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/blinklabs-io/thortx/internal/test"
	"github.com/blinklabs-io/thortx/ledger/tx"
	"github.com/blinklabs-io/thortx/secp256k1"
)

const benchClauseTo = "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"

// TxFixture contains a pre-signed transaction for benchmarking.
type TxFixture struct {
	Name string
	Raw  []byte
	Tx   *tx.Transaction
}

// FixtureNames returns the list of available transaction fixtures.
func FixtureNames() []string {
	return []string{
		"plain",
		"delegated",
		"multi-clause",
		"contract",
	}
}

// LoadTxFixture builds and signs the named transaction fixture.
func LoadTxFixture(name string) (*TxFixture, error) {
	opts := []tx.BodyOptionFunc{
		tx.WithChainTag(0x4a),
		tx.WithBlockRef(tx.NewBlockRef(1000)),
		tx.WithExpiration(720),
		tx.WithGasPriceCoef(128),
		tx.WithNonce(12345678),
	}
	delegated := false
	switch strings.ToLower(name) {
	case "plain":
		opts = append(opts, tx.WithClause(mustClause(benchClauseTo, "10000", "0x")))
	case "delegated":
		delegated = true
		opts = append(
			opts,
			tx.WithClause(mustClause(benchClauseTo, "10000", "0x")),
			tx.WithDelegation(true),
		)
	case "multi-clause":
		for i := 0; i < 16; i++ {
			opts = append(
				opts,
				tx.WithClause(mustClause(benchClauseTo, fmt.Sprintf("%d", i+1), "0x000000606060")),
			)
		}
	case "contract":
		// 4 KiB of init code
		data := "0x" + strings.Repeat("6060604052", 820)
		opts = append(opts, tx.WithClause(mustClause("", "0", data)))
	default:
		return nil, fmt.Errorf("unknown fixture: %s", name)
	}
	unsigned, err := tx.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("build %s fixture: %w", name, err)
	}
	unsigned, err = tx.New(append(opts, tx.WithGas(unsigned.IntrinsicGas()))...)
	if err != nil {
		return nil, fmt.Errorf("build %s fixture: %w", name, err)
	}
	originKey, err := secp256k1.PrivateKeyFromHex(test.OriginPrivateKey)
	if err != nil {
		return nil, err
	}
	var signed *tx.Transaction
	if delegated {
		delegatorKey, err := secp256k1.PrivateKeyFromHex(test.DelegatorPrivateKey)
		if err != nil {
			return nil, err
		}
		signed, err = unsigned.SignAsDelegated(originKey, delegatorKey)
		if err != nil {
			return nil, fmt.Errorf("sign %s fixture: %w", name, err)
		}
	} else {
		signed, err = unsigned.Sign(originKey)
		if err != nil {
			return nil, fmt.Errorf("sign %s fixture: %w", name, err)
		}
	}
	raw, err := signed.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode %s fixture: %w", name, err)
	}
	return &TxFixture{
		Name: name,
		Raw:  raw,
		Tx:   signed,
	}, nil
}

// MustLoadTxFixture loads a transaction fixture and panics on error.
// Use this in benchmark setup code.
func MustLoadTxFixture(name string) *TxFixture {
	fixture, err := LoadTxFixture(name)
	if err != nil {
		panic(fmt.Sprintf("failed to load %s tx fixture: %v", name, err))
	}
	return fixture
}

// Equal reports whether two fixtures have the same wire form
func (f *TxFixture) Equal(other *TxFixture) bool {
	return bytes.Equal(f.Raw, other.Raw)
}

func mustClause(to string, value string, data string) tx.Clause {
	clause, err := tx.ParseClause(to, value, data)
	if err != nil {
		panic(fmt.Sprintf("invalid fixture clause: %v", err))
	}
	return clause
}
