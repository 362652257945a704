// Package catalog holds the static chain and token definitions accepted by
// the payment flow.
package catalog

import "strings"

// ChainID identifies a supported blockchain
type ChainID string

// Token is a payable asset on a specific chain
type Token struct {
	Name            string  `json:"name"`    // e.g. arbUSDC, suiSUI
	Symbol          string  `json:"symbol"`  // e.g. USDC
	AssetID         string  `json:"assetId"` // 1Click asset identifier
	Chain           ChainID `json:"chain"`
	Decimals        int     `json:"decimals"`
	Icon            string  `json:"icon"`
	ChainIcon       string  `json:"chainIcon"`
	ContractAddress string  `json:"contractAddress,omitempty"`
}

// Chain groups the tokens available on one blockchain
type Chain struct {
	ID     ChainID `json:"id"`
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Tokens []Token `json:"tokens"`
}

// DestinationChain is where every payment settles
const DestinationChain ChainID = "sui"

// Destination token names
const (
	DestinationSUI  = "suiSUI"
	DestinationUSDC = "suiUSDC"
)

// Catalog is the read-only view of chains and tokens the controller consumes
type Catalog interface {
	ListChains() []Chain
	TokensOf(id ChainID) []Token
	Chain(id ChainID) (Chain, bool)
	DestinationToken(name string) (Token, bool)
}

// Static is the built-in catalog
type Static struct {
	chains []Chain
	byID   map[ChainID]int
}

// Default returns the built-in catalog
func Default() *Static {
	return defaultCatalog
}

// New builds a catalog from the given chains, preserving their order
func New(chains []Chain) *Static {
	s := &Static{
		chains: chains,
		byID:   make(map[ChainID]int, len(chains)),
	}
	for i, c := range chains {
		s.byID[c.ID] = i
	}
	return s
}

// ListChains returns chains that have at least one token
func (s *Static) ListChains() []Chain {
	out := make([]Chain, 0, len(s.chains))
	for _, c := range s.chains {
		if len(c.Tokens) > 0 {
			out = append(out, c)
		}
	}
	return out
}

// SourceChains returns the payable chains, excluding the destination chain
func (s *Static) SourceChains() []Chain {
	out := make([]Chain, 0, len(s.chains))
	for _, c := range s.ListChains() {
		if c.ID != DestinationChain {
			out = append(out, c)
		}
	}
	return out
}

// TokensOf returns all tokens of a chain
func (s *Static) TokensOf(id ChainID) []Token {
	c, ok := s.Chain(id)
	if !ok {
		return nil
	}
	return c.Tokens
}

// Chain looks up a chain by ID
func (s *Static) Chain(id ChainID) (Chain, bool) {
	i, ok := s.byID[ChainID(strings.ToLower(string(id)))]
	if !ok {
		return Chain{}, false
	}
	return s.chains[i], true
}

// Token looks up a token by name, e.g. "arbUSDC"
func (s *Static) Token(name string) (Token, bool) {
	for _, c := range s.chains {
		for _, t := range c.Tokens {
			if t.Name == name {
				return t, true
			}
		}
	}
	return Token{}, false
}

// TokenBySymbol looks up a token by symbol on a chain, case-insensitive
func (s *Static) TokenBySymbol(id ChainID, symbol string) (Token, bool) {
	for _, t := range s.TokensOf(id) {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, true
		}
	}
	return Token{}, false
}

// TokenByAssetID looks up a token by its 1Click asset ID
func (s *Static) TokenByAssetID(assetID string) (Token, bool) {
	for _, c := range s.chains {
		for _, t := range c.Tokens {
			if t.AssetID == assetID {
				return t, true
			}
		}
	}
	return Token{}, false
}

// AllTokens returns every token across all chains
func (s *Static) AllTokens() []Token {
	var out []Token
	for _, c := range s.chains {
		out = append(out, c.Tokens...)
	}
	return out
}

// DestinationTokens returns the tokens a payment can settle in
func (s *Static) DestinationTokens() []Token {
	return s.TokensOf(DestinationChain)
}

// DestinationToken resolves a destination token name; empty selects USDC
func (s *Static) DestinationToken(name string) (Token, bool) {
	if name == "" {
		name = DestinationUSDC
	}
	if name != DestinationSUI && name != DestinationUSDC {
		return Token{}, false
	}
	return s.Token(name)
}

// HasToken reports whether token belongs to the given chain
func (c Chain) HasToken(token Token) bool {
	for _, t := range c.Tokens {
		if t.Name == token.Name {
			return true
		}
	}
	return false
}
