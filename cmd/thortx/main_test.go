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
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blinklabs-io/thortx/internal/test"
	"github.com/blinklabs-io/thortx/ledger/tx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBody = `{
	"blockRef": "0x00000000aabbccdd",
	"expiration": 32,
	"clauses": [
		{"to": "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "value": "10000", "data": "0x000000606060"},
		{"to": "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed", "value": "20000", "data": "0x000000606060"}
	],
	"gasPriceCoef": 128,
	"gas": 21000,
	"nonce": 12345678
}`

const testDelegatedBody = `{
	"chainTag": 39,
	"blockRef": "0x00000000aabbccdd",
	"expiration": 32,
	"clauses": [],
	"gas": 21000,
	"nonce": 1,
	"reserved": {"features": 1}
}`

func writeBody(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "body.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cliApp := newApp(strings.NewReader(stdin), &stdout, &stderr)
	err := cliApp.Run(append([]string{"thortx", "--log-level", "error"}, args...))
	return stdout.String(), err
}

func TestGasCommand(t *testing.T) {
	out, err := runApp(t, "", "gas", "--body", writeBody(t, testBody))
	require.NoError(t, err)
	assert.Equal(t, "37432\n", out)

	out, err = runApp(t, testBody, "gas", "--body", "-")
	require.NoError(t, err)
	assert.Equal(t, "37432\n", out)
}

func TestHashCommand(t *testing.T) {
	path := writeBody(t, testBody)
	out, err := runApp(t, "", "--network", "test", "hash", "--body", path)
	require.NoError(t, err)

	var body tx.Body
	require.NoError(t, json.Unmarshal([]byte(testBody), &body))
	// The chain tag comes from the selected network
	body.ChainTag = 0x27
	trx := tx.NewFromBody(body)
	assert.Equal(t, trx.SigningHash(nil).String()+"\n", out)

	out, err = runApp(t, "", "--chain-tag", "39", "hash", "--body", path, "--delegate-for", test.OriginAddress)
	require.NoError(t, err)
	delegatedHash, err := trx.SigningHashFor(test.OriginAddress)
	require.NoError(t, err)
	assert.Equal(t, delegatedHash.String()+"\n", out)

	_, err = runApp(t, "", "hash", "--body", path, "--delegate-for", "0x1234")
	assert.Error(t, err)
}

func TestEncodeCommand(t *testing.T) {
	out, err := runApp(t, "", "--chain-tag", "1", "encode", "--body", writeBody(t, testBody))
	require.NoError(t, err)
	assert.Equal(
		t,
		"0xf858018800000000aabbccdd20f840"+
			"df947567d83b7b8d80addcb281a71d54fc7b3364ffed82271086000000606060"+
			"df947567d83b7b8d80addcb281a71d54fc7b3364ffed824e2086000000606060"+
			"81808252088083bc614ec0\n",
		out,
	)
}

func TestSignAndDecodeCommands(t *testing.T) {
	out, err := runApp(
		t,
		"",
		"--network", "test",
		"sign",
		"--body", writeBody(t, testDelegatedBody),
		"--key", test.OriginPrivateKey,
		"--delegator-key", test.DelegatorPrivateKey,
	)
	require.NoError(t, err)
	var signed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &signed))
	assert.Equal(t, test.OriginAddress, signed["origin"])
	assert.Equal(t, test.DelegatorAddress, signed["delegator"])
	raw, ok := signed["raw"].(string)
	require.True(t, ok)

	out, err = runApp(t, "", "--network", "test", "decode", "--raw", raw)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, test.OriginAddress, decoded["origin"])
	assert.Equal(t, test.DelegatorAddress, decoded["delegator"])
	assert.Equal(t, signed["id"], decoded["id"])
	assert.Equal(t, true, decoded["delegated"])

	// A delegated body cannot be signed without the delegator key
	_, err = runApp(
		t,
		"",
		"sign",
		"--body", writeBody(t, testDelegatedBody),
		"--key", test.OriginPrivateKey,
	)
	assert.Error(t, err)
}

func TestDecodeUnsigned(t *testing.T) {
	out, err := runApp(t, "", "--chain-tag", "1", "encode", "--body", writeBody(t, testBody))
	require.NoError(t, err)
	out, err = runApp(t, "", "--chain-tag", "1", "decode", "--raw", strings.TrimSpace(out))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Nil(t, decoded["signature"])
	assert.NotContains(t, decoded, "origin")
	assert.Equal(t, float64(37432), decoded["intrinsicGas"])
}

func TestInvalidInput(t *testing.T) {
	testDefs := []struct {
		name string
		args []string
	}{
		{name: "unknown network", args: []string{"--network", "cardano", "gas", "--body", writeBody(t, testBody)}},
		{name: "bad log format", args: []string{"--log-format", "xml", "gas", "--body", writeBody(t, testBody)}},
		{name: "no input", args: []string{"gas"}},
		{name: "both inputs", args: []string{"gas", "--body", "-", "--raw", "0xc0"}},
		{name: "bad raw", args: []string{"gas", "--raw", "0xc0"}},
		{name: "decode without raw", args: []string{"decode"}},
		{name: "missing body file", args: []string{"gas", "--body", filepath.Join(t.TempDir(), "missing.json")}},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := runApp(t, "", testDef.args...)
			assert.Error(t, err)
		})
	}
}

func TestDumpCommand(t *testing.T) {
	out, err := runApp(t, "", "dump", "--raw", "0xd7018800000000aabbccdd20c081808252088083bc614ec0")
	require.NoError(t, err)
	assert.Equal(
		t,
		"[\n"+
			"  0x01 (length 1),\n"+
			"  0x00000000aabbccdd (length 8),\n"+
			"  0x20 (length 1),\n"+
			"  [\n  ],\n"+
			"  0x80 (length 1),\n"+
			"  0x5208 (length 2),\n"+
			"  <empty>,\n"+
			"  0xbc614e (length 3),\n"+
			"  [\n  ],\n"+
			"],\n",
		out,
	)
	_, err = runApp(t, "", "dump", "--raw", "0x83cafe")
	assert.Error(t, err)
}
