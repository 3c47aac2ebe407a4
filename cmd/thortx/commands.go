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

	"github.com/blinklabs-io/thortx/ledger/common"
	"github.com/blinklabs-io/thortx/ledger/tx"
	"github.com/blinklabs-io/thortx/rlp"
	"github.com/blinklabs-io/thortx/secp256k1"
	"github.com/blinklabs-io/thortx/utils"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

func bodyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "body",
		Usage: "path to a JSON transaction body, or - for stdin",
	}
}

func rawFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "raw",
		Usage: "hex encoded transaction",
	}
}

func (a *app) gasCommand() *cli.Command {
	return &cli.Command{
		Name:  "gas",
		Usage: "print the intrinsic gas of a transaction",
		Flags: []cli.Flag{bodyFlag(), rawFlag()},
		Action: func(cCtx *cli.Context) error {
			trx, err := a.loadTransaction(cCtx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.stdout, trx.IntrinsicGas())
			return err
		},
	}
}

func (a *app) hashCommand() *cli.Command {
	return &cli.Command{
		Name:  "hash",
		Usage: "print the signing hash of a transaction",
		Flags: []cli.Flag{
			bodyFlag(),
			rawFlag(),
			&cli.StringFlag{
				Name:  "delegate-for",
				Usage: "origin address, to print the hash a delegator signs",
			},
		},
		Action: func(cCtx *cli.Context) error {
			trx, err := a.loadTransaction(cCtx)
			if err != nil {
				return err
			}
			hash := trx.SigningHash(nil)
			if delegateFor := cCtx.String("delegate-for"); delegateFor != "" {
				hash, err = trx.SigningHashFor(delegateFor)
				if err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(a.stdout, hash.String())
			return err
		},
	}
}

func (a *app) encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "print the wire form of a transaction body",
		Flags: []cli.Flag{
			bodyFlag(),
			&cli.StringFlag{
				Name:  "signature",
				Usage: "hex encoded signature to attach",
			},
		},
		Action: func(cCtx *cli.Context) error {
			trx, err := a.loadTransaction(cCtx)
			if err != nil {
				return err
			}
			if sigHex := cCtx.String("signature"); sigHex != "" {
				sig, err := rlp.BlobKind{}.Parse(sigHex)
				if err != nil {
					return fmt.Errorf("invalid signature: %w", err)
				}
				trx = trx.WithSignature(sig)
				if !trx.IsSignatureValid() {
					a.logger.Warn(
						"signature length does not match delegation mode",
						"length", len(sig),
						"delegated", trx.IsDelegated(),
					)
				}
			}
			return a.printEncoded(trx)
		},
	}
}

func (a *app) decodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "decode",
		Usage: "decode a transaction and print it as JSON",
		Flags: []cli.Flag{rawFlag()},
		Action: func(cCtx *cli.Context) error {
			if cCtx.String("raw") == "" {
				return errors.New("you must specify -raw")
			}
			trx, err := a.loadTransaction(cCtx)
			if err != nil {
				return err
			}
			if len(trx.Signature()) > 0 {
				if _, ok := trx.Origin(); !ok {
					a.logger.Warn("unable to recover origin from signature")
				}
			}
			return a.printJSON(trx)
		},
	}
}

func (a *app) dumpCommand() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "print the RLP structure of an encoded transaction",
		Flags: []cli.Flag{rawFlag()},
		Action: func(cCtx *cli.Context) error {
			raw, err := rlp.BlobKind{}.Parse(cCtx.String("raw"))
			if err != nil {
				return fmt.Errorf("invalid raw transaction: %w", err)
			}
			decoded, err := rlp.Decode(raw)
			if err != nil {
				return fmt.Errorf("invalid raw transaction: %w", err)
			}
			_, err = fmt.Fprint(a.stdout, utils.DumpRlpStructure(decoded, ""))
			return err
		},
	}
}

func (a *app) signCommand() *cli.Command {
	return &cli.Command{
		Name:  "sign",
		Usage: "sign a transaction",
		Flags: []cli.Flag{
			bodyFlag(),
			rawFlag(),
			&cli.StringFlag{
				Name:     "key",
				Usage:    "hex encoded origin private key",
				EnvVars:  []string{"THORTX_KEY"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "delegator-key",
				Usage:   "hex encoded delegator private key, for delegated transactions",
				EnvVars: []string{"THORTX_DELEGATOR_KEY"},
			},
		},
		Action: func(cCtx *cli.Context) error {
			trx, err := a.loadTransaction(cCtx)
			if err != nil {
				return err
			}
			originKey, err := secp256k1.PrivateKeyFromHex(cCtx.String("key"))
			if err != nil {
				return err
			}
			if trx.IsDelegated() {
				delegatorKeyHex := cCtx.String("delegator-key")
				if delegatorKeyHex == "" {
					return errors.New("delegated transaction requires -delegator-key")
				}
				delegatorKey, err := secp256k1.PrivateKeyFromHex(delegatorKeyHex)
				if err != nil {
					return err
				}
				trx, err = trx.SignAsDelegated(originKey, delegatorKey)
				if err != nil {
					return err
				}
			} else {
				if cCtx.String("delegator-key") != "" {
					a.logger.Warn("ignoring delegator key for non-delegated transaction")
				}
				trx, err = trx.Sign(originKey)
				if err != nil {
					return err
				}
			}
			encoded, err := trx.Encode()
			if err != nil {
				return err
			}
			ret := struct {
				Raw       string             `json:"raw"`
				ID        *common.Blake2b256 `json:"id,omitempty"`
				Origin    *common.Address    `json:"origin,omitempty"`
				Delegator *common.Address    `json:"delegator,omitempty"`
			}{
				Raw: hexutil.Encode(encoded),
			}
			if id, ok := trx.ID(); ok {
				ret.ID = &id
			}
			if origin, ok := trx.Origin(); ok {
				ret.Origin = &origin
			}
			if delegator, ok := trx.Delegator(); ok {
				ret.Delegator = &delegator
			}
			a.logger.Info("signed transaction", "id", ret.ID, "delegated", trx.IsDelegated())
			return a.printJSON(&ret)
		},
	}
}

func (a *app) printEncoded(trx *tx.Transaction) error {
	encoded, err := trx.Encode()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, hexutil.Encode(encoded))
	return err
}

func (a *app) printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(data))
	return err
}
