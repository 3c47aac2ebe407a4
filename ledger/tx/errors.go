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

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidClause      = errors.New("invalid clause")
	ErrInvalidReserved    = errors.New("invalid reserved field")
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrNotDelegated       = errors.New("transaction is not delegated")
	ErrDelegated          = errors.New("transaction is delegated")
)

// FieldError reports a transaction field that could not be parsed or decoded
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return FieldError{Field: field, Err: err}
}
