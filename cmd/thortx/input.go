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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/blinklabs-io/thortx/ledger/tx"
	"github.com/blinklabs-io/thortx/rlp"
	"github.com/urfave/cli/v2"
)

// loadTransaction reads the transaction given by the -body or -raw flag
func (a *app) loadTransaction(cCtx *cli.Context) (*tx.Transaction, error) {
	bodyPath := cCtx.String("body")
	rawHex := cCtx.String("raw")
	switch {
	case bodyPath != "" && rawHex != "":
		return nil, errors.New("you must specify only one of -body or -raw")
	case rawHex != "":
		return a.decodeRaw(rawHex)
	case bodyPath != "":
		return a.readBody(bodyPath)
	default:
		return nil, errors.New("you must specify one of -body or -raw")
	}
}

func (a *app) decodeRaw(rawHex string) (*tx.Transaction, error) {
	raw, err := rlp.BlobKind{}.Parse(rawHex)
	if err != nil {
		return nil, fmt.Errorf("invalid raw transaction: %w", err)
	}
	fieldCount, err := rlp.ListLength(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid raw transaction: %w", err)
	}
	// The unsigned wire form has no signature element
	trx, err := tx.Decode(raw, fieldCount < 10)
	if err != nil {
		return nil, err
	}
	a.logger.Debug(
		"decoded transaction",
		"fields", fieldCount,
		"chainTag", trx.ChainTag(),
		"clauses", len(trx.Clauses()),
	)
	a.checkChainTag(trx.ChainTag())
	return trx, nil
}

func (a *app) readBody(path string) (*tx.Transaction, error) {
	var r io.Reader
	if path == "-" {
		r = a.stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// Omitting the chain tag selects the one from the global flags
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("invalid transaction body: %w", err)
	}
	var body tx.Body
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("invalid transaction body: %w", err)
	}
	if _, ok := fields["chainTag"]; !ok {
		chainTag, err := a.resolveChainTag()
		if err != nil {
			return nil, err
		}
		body.ChainTag = chainTag
	} else {
		a.checkChainTag(body.ChainTag)
	}
	a.logger.Debug(
		"loaded transaction body",
		"path", path,
		"chainTag", body.ChainTag,
		"clauses", len(body.Clauses),
	)
	return tx.NewFromBody(body), nil
}

func (a *app) checkChainTag(chainTag uint8) {
	expected, err := a.resolveChainTag()
	if err != nil {
		a.logger.Warn("unable to determine expected chain tag", "error", err)
		return
	}
	if chainTag != expected {
		a.logger.Warn(
			"transaction chain tag does not match selected network",
			"chainTag", chainTag,
			"expected", expected,
			"network", a.flags.network,
		)
	}
}
