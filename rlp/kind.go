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

package rlp

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
)

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Trim0x removes an optional "0x" prefix
func Trim0x(s string) string {
	if has0xPrefix(s) {
		return s[2:]
	}
	return s
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func kindError(kind fmt.Stringer, err error, reason string, args ...any) error {
	return KindError{
		Kind:   kind.String(),
		Reason: fmt.Sprintf(reason, args...),
		Err:    err,
	}
}

// NumericKind is an unsigned scalar of at most maxBytes bytes. It encodes as
// minimal big-endian bytes: zero is an empty string and there is never a
// leading zero byte
type NumericKind struct {
	maxBytes int
}

func NewNumericKind(maxBytes int) NumericKind {
	if maxBytes <= 0 {
		panic(fmt.Sprintf("invalid numeric kind width: %d", maxBytes))
	}
	return NumericKind{maxBytes: maxBytes}
}

func (k NumericKind) MaxBytes() int {
	return k.maxBytes
}

func (k NumericKind) String() string {
	return fmt.Sprintf("numeric(%d)", k.maxBytes)
}

func (k NumericKind) check(v *big.Int) error {
	if v.Sign() < 0 {
		return kindError(k, ErrOutOfRange, "negative value %s", v)
	}
	if v.BitLen() > k.maxBytes*8 {
		return kindError(k, ErrOutOfRange, "value %s exceeds %d bytes", v, k.maxBytes)
	}
	return nil
}

// Parse reads a decimal string, or a hex string with a "0x" prefix
func (k NumericKind) Parse(s string) (*big.Int, error) {
	digits := s
	base := 10
	if has0xPrefix(s) {
		digits = s[2:]
		base = 16
		if !isHexDigits(digits) {
			return nil, kindError(k, ErrInvalidFormat, "bad hex number %q", s)
		}
	} else if !isDecimalDigits(digits) {
		return nil, kindError(k, ErrInvalidFormat, "bad decimal number %q", s)
	}
	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, kindError(k, ErrInvalidFormat, "bad number %q", s)
	}
	if err := k.check(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode serializes v. A nil value is treated as zero
func (k NumericKind) Encode(v *big.Int) ([]byte, error) {
	if v == nil {
		return []byte{}, nil
	}
	if err := k.check(v); err != nil {
		return nil, err
	}
	return v.Bytes(), nil
}

func (k NumericKind) EncodeUint64(v uint64) ([]byte, error) {
	return k.Encode(new(big.Int).SetUint64(v))
}

func (k NumericKind) EncodeString(s string) ([]byte, error) {
	v, err := k.Parse(s)
	if err != nil {
		return nil, err
	}
	return k.Encode(v)
}

// Decode is the strict inverse of Encode
func (k NumericKind) Decode(data []byte) (*big.Int, error) {
	if len(data) > k.maxBytes {
		return nil, kindError(k, ErrOutOfRange, "got %d bytes", len(data))
	}
	if len(data) > 0 && data[0] == 0 {
		return nil, kindError(k, ErrInvalidFormat, "leading zero byte")
	}
	return new(big.Int).SetBytes(data), nil
}

func (k NumericKind) DecodeUint64(data []byte) (uint64, error) {
	v, err := k.Decode(data)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, kindError(k, ErrOutOfRange, "value %s exceeds 64 bits", v)
	}
	return v.Uint64(), nil
}

// FixedBlobKind is a blob of exactly size bytes. It is serialized unchanged,
// leading zero bytes included
type FixedBlobKind struct {
	size int
}

func NewFixedBlobKind(size int) FixedBlobKind {
	if size <= 0 {
		panic(fmt.Sprintf("invalid fixed blob kind size: %d", size))
	}
	return FixedBlobKind{size: size}
}

func (k FixedBlobKind) Size() int {
	return k.size
}

func (k FixedBlobKind) String() string {
	return fmt.Sprintf("fixed-blob(%d)", k.size)
}

// Parse reads a hex string of exactly Size() bytes with an optional "0x" prefix
func (k FixedBlobKind) Parse(s string) ([]byte, error) {
	digits := Trim0x(s)
	if digits != "" && !isHexDigits(digits) {
		return nil, kindError(k, ErrInvalidFormat, "bad hex string %q", s)
	}
	if len(digits) != k.size*2 {
		return nil, kindError(
			k,
			ErrInvalidLength,
			"expected %d hex digits, got %d",
			k.size*2,
			len(digits),
		)
	}
	ret, err := hex.DecodeString(digits)
	if err != nil {
		return nil, kindError(k, ErrInvalidFormat, "%s", err)
	}
	return ret, nil
}

func (k FixedBlobKind) Encode(data []byte) ([]byte, error) {
	if len(data) != k.size {
		return nil, kindError(k, ErrInvalidLength, "got %d bytes", len(data))
	}
	return bytes.Clone(data), nil
}

func (k FixedBlobKind) EncodeString(s string) ([]byte, error) {
	return k.Parse(s)
}

func (k FixedBlobKind) Decode(data []byte) ([]byte, error) {
	return k.Encode(data)
}

// NullableFixedBlobKind is a FixedBlobKind that may be absent. Absence is
// serialized as an empty string
type NullableFixedBlobKind struct {
	fixed FixedBlobKind
}

func NewNullableFixedBlobKind(size int) NullableFixedBlobKind {
	return NullableFixedBlobKind{fixed: NewFixedBlobKind(size)}
}

func (k NullableFixedBlobKind) Size() int {
	return k.fixed.size
}

func (k NullableFixedBlobKind) String() string {
	return fmt.Sprintf("nullable-fixed-blob(%d)", k.fixed.size)
}

// Parse treats an empty string as absence and returns nil for it
func (k NullableFixedBlobKind) Parse(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	ret, err := k.fixed.Parse(s)
	if err != nil {
		var kindErr KindError
		if errors.As(err, &kindErr) {
			kindErr.Kind = k.String()
			return nil, kindErr
		}
		return nil, err
	}
	return ret, nil
}

func (k NullableFixedBlobKind) Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if len(data) != k.fixed.size {
		return nil, kindError(k, ErrInvalidLength, "got %d bytes", len(data))
	}
	return bytes.Clone(data), nil
}

func (k NullableFixedBlobKind) EncodeString(s string) ([]byte, error) {
	data, err := k.Parse(s)
	if err != nil {
		return nil, err
	}
	return k.Encode(data)
}

// Decode returns nil for an empty string
func (k NullableFixedBlobKind) Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return k.Encode(data)
}

// BlobKind is an arbitrary byte string
type BlobKind struct{}

func (BlobKind) String() string {
	return "blob"
}

// Parse reads a hex string with an optional "0x" prefix. An empty string or a
// bare prefix yields an empty blob
func (k BlobKind) Parse(s string) ([]byte, error) {
	digits := Trim0x(s)
	if digits == "" {
		return []byte{}, nil
	}
	if len(digits)%2 != 0 {
		return nil, kindError(k, ErrInvalidFormat, "odd length hex string")
	}
	if !isHexDigits(digits) {
		return nil, kindError(k, ErrInvalidFormat, "bad hex string %q", s)
	}
	ret, err := hex.DecodeString(digits)
	if err != nil {
		return nil, kindError(k, ErrInvalidFormat, "%s", err)
	}
	return ret, nil
}

func (BlobKind) Encode(data []byte) ([]byte, error) {
	if data == nil {
		return []byte{}, nil
	}
	return bytes.Clone(data), nil
}

func (k BlobKind) Decode(data []byte) ([]byte, error) {
	return k.Encode(data)
}
