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

// Package tx implements the transaction model of a fee-delegated
// Proof-of-Authority ledger.
//
// A Transaction carries an ordered list of clauses together with its chain
// tag, block reference, expiration, gas settings, an optional dependency, a
// nonce and a reserved field holding feature flags. The canonical unsigned
// body is RLP encoded and hashed with Blake2b-256 to produce the signing hash.
//
// When the delegation feature is enabled, a second party (the delegator) pays
// the fees. The delegator signs the origin's signing hash bound to the origin
// address, and the transaction signature is the origin signature followed by
// the delegator signature.
//
// Identity queries (Origin, Delegator, ID) recover public keys from the
// signature every time they are called and report failure through a boolean
// rather than an error.
package tx
