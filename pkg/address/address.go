// Package address performs format checks on refund and recipient addresses
// before they are handed to the intents service.
package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"

	"near-pay/pkg/catalog"
)

var evmChains = map[catalog.ChainID]bool{
	"eth":   true,
	"arb":   true,
	"base":  true,
	"op":    true,
	"pol":   true,
	"avax":  true,
	"bsc":   true,
	"bera":  true,
	"monad": true,
}

// utxoChain describes the mainnet address encodings of a bitcoin-like chain
type utxoChain struct {
	hrp      string // segwit human-readable part, empty when unsupported
	versions []byte // base58check version bytes
}

var utxoChains = map[catalog.ChainID]utxoChain{
	"btc":  {hrp: "bc", versions: []byte{0x00, 0x05}},
	"ltc":  {hrp: "ltc", versions: []byte{0x30, 0x32, 0x05}},
	"doge": {versions: []byte{0x1e, 0x16}},
}

// suiAddressLength is the byte length of a Sui account address
const suiAddressLength = 32

// IsEVM reports whether chain uses 20-byte hex addresses
func IsEVM(chain catalog.ChainID) bool {
	return evmChains[chain]
}

// ValidateRefund checks that addr looks like an address on the origin chain
func ValidateRefund(chain catalog.ChainID, addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("refund address is required")
	}

	switch {
	case IsEVM(chain):
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("invalid %s refund address: %s", chain, addr)
		}
	case chain == "sol":
		if _, err := solana.PublicKeyFromBase58(addr); err != nil {
			return fmt.Errorf("invalid sol refund address: %w", err)
		}
	case chain == catalog.DestinationChain:
		return validateSui(addr)
	default:
		if utxo, ok := utxoChains[chain]; ok {
			return validateUTXO(chain, utxo, addr)
		}
	}

	return nil
}

// ValidateRecipient checks that addr is a Sui account address
func ValidateRecipient(addr string) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return fmt.Errorf("recipient address is required")
	}
	return validateSui(addr)
}

func validateSui(addr string) error {
	b, err := hexutil.Decode(addr)
	if err != nil {
		return fmt.Errorf("invalid sui address %s: %w", addr, err)
	}
	if len(b) != suiAddressLength {
		return fmt.Errorf("invalid sui address %s: expected %d bytes, got %d", addr, suiAddressLength, len(b))
	}
	return nil
}

func validateUTXO(chain catalog.ChainID, utxo utxoChain, addr string) error {
	if utxo.hrp != "" && strings.HasPrefix(strings.ToLower(addr), utxo.hrp+"1") {
		// Taproot addresses use bech32m, which only gets a length check here
		if strings.HasPrefix(strings.ToLower(addr), utxo.hrp+"1p") {
			if len(addr) != len(utxo.hrp)+59 {
				return fmt.Errorf("invalid %s refund address: %s", chain, addr)
			}
			return nil
		}
		hrp, _, err := bech32.Decode(addr)
		if err != nil {
			return fmt.Errorf("invalid %s refund address: %w", chain, err)
		}
		if hrp != utxo.hrp {
			return fmt.Errorf("invalid %s refund address: unexpected prefix %s", chain, hrp)
		}
		return nil
	}

	_, version, err := base58.CheckDecode(addr)
	if err != nil {
		return fmt.Errorf("invalid %s refund address: %w", chain, err)
	}
	for _, v := range utxo.versions {
		if v == version {
			return nil
		}
	}
	return fmt.Errorf("invalid %s refund address: unexpected version byte %d", chain, version)
}
