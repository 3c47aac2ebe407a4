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
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidFormat = errors.New("invalid format")

	ErrExpectedList   = errors.New("expected RLP list")
	ErrExpectedString = errors.New("expected RLP string")
)

// KindError reports a value rejected by a field kind. It matches one of
// ErrOutOfRange, ErrInvalidLength or ErrInvalidFormat with errors.Is
type KindError struct {
	Kind   string
	Reason string
	Err    error
}

func (e KindError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Kind, e.Err, e.Reason)
}

func (e KindError) Unwrap() error { return e.Err }
