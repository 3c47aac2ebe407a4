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

// Package rlp provides RLP encoding/decoding utilities and the field kinds
// used to build canonical transaction bodies.
//
// This package wraps github.com/ethereum/go-ethereum/rlp. Values handed to
// Encode are nested trees of byte strings ([]byte) and lists (List or
// []any). Decode returns the same shape: every RLP string comes back as
// []byte and every RLP list as List.
//
// # Field Kinds
//
// A kind converts between a domain value and its canonical byte form:
//
//   - NumericKind: unsigned scalar, minimal big-endian bytes, zero encodes
//     as an empty string, never a leading zero byte
//   - FixedBlobKind: exactly N raw bytes, serialized unchanged
//   - NullableFixedBlobKind: exactly N raw bytes, or empty for absence
//   - BlobKind: arbitrary bytes
//
// All kinds accept hex input with an optional "0x" prefix. Failures are
// reported as KindError values that match ErrOutOfRange, ErrInvalidLength or
// ErrInvalidFormat with errors.Is.
//
// # Canonical Form
//
// Decode rejects non-canonical size prefixes and trailing bytes. Kinds add
// the field-level rules on top (leading zeros, exact widths).
package rlp
