package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Well-known keys used across the test suites. The private keys are the
// scalars 1 and 2, so the addresses can be checked against any secp256k1
// implementation
const (
	OriginPrivateKey    = "0x0000000000000000000000000000000000000000000000000000000000000001"
	OriginAddress       = "0x7e5f4552091a69125d5dfcb7b8c2659029395bdf"
	DelegatorPrivateKey = "0x0000000000000000000000000000000000000000000000000000000000000002"
	DelegatorAddress    = "0x2b5ad5c4795c026514f8317c7a215e218dccd6cf"
)
