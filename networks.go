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

package thortx

import "github.com/blinklabs-io/thortx/ledger/common"

// Network definitions
var (
	NetworkMainnet = Network{
		Name:      "main",
		GenesisId: mustGenesisId("0x00000000851caf3cfdb6e899cf5958bfb1ac3413d346d43539627e6be7ec1b4a"),
	}
	NetworkTestnet = Network{
		Name:      "test",
		GenesisId: mustGenesisId("0x000000000b2bce3c70bc649a02749e8687721b09ed2e15997f466536b20bb127"),
	}
	NetworkSolo = Network{
		Name:      "solo",
		GenesisId: mustGenesisId("0x00000000c05a20fbca2bf6ae3affba6af4a74b800b585bf7a4988aba7aea69f6"),
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	NetworkMainnet,
	NetworkTestnet,
	NetworkSolo,
}

// NetworkByName returns a predefined network by name
func NetworkByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// NetworkByChainTag returns a predefined network by chain tag
func NetworkByChainTag(chainTag uint8) Network {
	for _, network := range networks {
		if network.ChainTag() == chainTag {
			return network
		}
	}
	return NetworkInvalid
}

// Network represents a chain that transactions can target
type Network struct {
	Name      string
	GenesisId common.Blake2b256
}

// ChainTag returns the chain tag for the network, which is the last byte of
// its genesis block ID
func (n Network) ChainTag() uint8 {
	return n.GenesisId[common.Blake2b256Size-1]
}

func (n Network) String() string {
	return n.Name
}

func mustGenesisId(genesisId string) common.Blake2b256 {
	ret, err := common.NewBlake2b256FromHex(genesisId)
	if err != nil {
		panic(err)
	}
	return ret
}
