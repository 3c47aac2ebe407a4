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

// Intrinsic gas schedule
const (
	TxGas                     uint64 = 5000
	ClauseGas                 uint64 = 16000
	ClauseGasContractCreation uint64 = 48000
	TxDataZeroGas             uint64 = 4
	TxDataNonZeroGas          uint64 = 68
)

// IntrinsicGas returns the gas consumed by the given clauses before any
// execution takes place. A transaction without clauses is charged as if it
// had one regular clause
func IntrinsicGas(clauses ...Clause) uint64 {
	if len(clauses) == 0 {
		return TxGas + ClauseGas
	}
	total := TxGas
	for _, clause := range clauses {
		if clause.IsCreation() {
			total += ClauseGasContractCreation
		} else {
			total += ClauseGas
		}
		total += dataGas(clause.data)
	}
	return total
}

func dataGas(data []byte) uint64 {
	var zeros uint64
	for _, b := range data {
		if b == 0 {
			zeros++
		}
	}
	nonZeros := uint64(len(data)) - zeros
	return zeros*TxDataZeroGas + nonZeros*TxDataNonZeroGas
}

func (t *Transaction) IntrinsicGas() uint64 {
	return IntrinsicGas(t.body.Clauses...)
}
