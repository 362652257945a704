package parser

import (
	"fmt"
	"regexp"
	"strings"

	"near-pay/pkg/catalog"
)

// PaymentRequest is a parsed payment command
type PaymentRequest struct {
	Amount string
	Symbol string
	Chain  catalog.ChainID
}

// <amount> <symbol> [on|from] <chain>; the symbol may carry a $ prefix (e.g. $WIF)
var commandPattern = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)\s+(\$?[A-Z0-9.]+)\s+(?:ON|FROM)\s+([A-Z0-9-]+)$`)

// ParsePaymentCommand parses a payment command
// Examples:
//   - "pay 10 USDC on arb"
//   - "0.5 ETH on base"
//   - "25 $WIF from sol"
func ParsePaymentCommand(command string) (*PaymentRequest, error) {
	command = strings.Join(strings.Fields(strings.ToUpper(command)), " ")
	command = strings.TrimPrefix(command, "PAY ")

	matches := commandPattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid payment command format. Expected: '<amount> <token> on <chain>' (e.g., '10 USDC on arb')")
	}

	return &PaymentRequest{
		Amount: matches[1],
		Symbol: matches[2],
		Chain:  catalog.ChainID(strings.ToLower(matches[3])),
	}, nil
}

// Resolve looks up the token the request refers to
func (r *PaymentRequest) Resolve(c *catalog.Static) (catalog.Token, error) {
	chain, ok := c.Chain(r.Chain)
	if !ok {
		return catalog.Token{}, fmt.Errorf("unsupported chain '%s'", r.Chain)
	}
	if chain.ID == catalog.DestinationChain {
		return catalog.Token{}, fmt.Errorf("cannot pay from the destination chain '%s'", chain.ID)
	}

	if token, ok := c.TokenBySymbol(chain.ID, NormalizeTokenSymbol(r.Symbol)); ok {
		return token, nil
	}
	return catalog.Token{}, fmt.Errorf("token '%s' is not supported on %s", r.Symbol, chain.Name)
}

// NormalizeTokenSymbol maps common aliases to the symbols used in the catalog
func NormalizeTokenSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))

	aliases := map[string]string{
		"WIF": "$WIF",
	}

	if normalized, exists := aliases[symbol]; exists {
		return normalized
	}

	return symbol
}
