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

// Package utils provides debugging helpers
package utils

import (
	"bytes"
	"fmt"

	"github.com/blinklabs-io/thortx/rlp"
)

// DumpRlpStructure renders a decoded RLP tree with one item per line. Byte
// strings are shown in hex along with their length
func DumpRlpStructure(data any, prefix string) string {
	var ret bytes.Buffer
	switch v := data.(type) {
	case []byte:
		if len(v) == 0 {
			return fmt.Sprintf("%s<empty>,\n", prefix)
		}
		return fmt.Sprintf("%s0x%x (length %d),\n", prefix, v, len(v))
	case rlp.List, []any:
		items, _ := rlp.AsList(v)
		ret.WriteString(fmt.Sprintf("%s[\n", prefix))
		newPrefix := prefix
		// Override original user-provided prefix
		// This assumes the original prefix won't start with a space
		if len(newPrefix) > 1 && newPrefix[0] != ' ' {
			newPrefix = ""
		}
		// Add 2 more spaces to the new prefix
		newPrefix = fmt.Sprintf("  %s", newPrefix)
		for _, val := range items {
			ret.WriteString(DumpRlpStructure(val, newPrefix))
		}
		if len(prefix) > 1 && prefix[0] != ' ' {
			ret.WriteString("],\n")
		} else {
			ret.WriteString(fmt.Sprintf("%s],\n", prefix))
		}
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}
