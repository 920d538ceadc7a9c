package tokenomics

import (
	"strings"

	"github.com/gagliardetto/solana-go"
)

const (
	MinTotalSupply  = 100_000
	MaxTotalSupply  = 10_000_000_000
	MaxDecimals     = 18
	MaxSymbolLength = 5
)

// TokenConfig holds the basic token properties.
type TokenConfig struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	LogoURL     string  `json:"logo_url,omitempty"`
	Description string  `json:"description,omitempty"`
	TotalSupply float64 `json:"total_supply"`
	Decimals    int     `json:"decimals"`
	Website     string  `json:"website,omitempty"`
	Twitter     string  `json:"twitter,omitempty"`
	Telegram    string  `json:"telegram,omitempty"`
	Discord     string  `json:"discord,omitempty"`
	MintAddress string  `json:"mint_address,omitempty"`
}

// DefaultToken returns an unnamed one-billion supply token with 9 decimals.
func DefaultToken() TokenConfig {
	return TokenConfig{
		TotalSupply: 1_000_000_000,
		Decimals:    9,
	}
}

// Validate checks the token section.
func (t TokenConfig) Validate() error {
	fe := fieldErrors{section: "token"}

	if strings.TrimSpace(t.Name) == "" {
		fe.add("name", "is required")
	}
	symbol := strings.TrimSpace(t.Symbol)
	if symbol == "" {
		fe.add("symbol", "is required")
	} else if len([]rune(symbol)) > MaxSymbolLength {
		fe.add("symbol", "must be at most %d characters", MaxSymbolLength)
	}
	if !finite(t.TotalSupply) || t.TotalSupply < MinTotalSupply || t.TotalSupply > MaxTotalSupply {
		fe.add("total_supply", "must be between %d and %d", MinTotalSupply, int64(MaxTotalSupply))
	}
	if t.Decimals < 0 || t.Decimals > MaxDecimals {
		fe.add("decimals", "must be between 0 and %d", MaxDecimals)
	}
	if t.MintAddress != "" {
		if _, err := solana.PublicKeyFromBase58(t.MintAddress); err != nil {
			fe.add("mint_address", "is not a valid Solana address")
		}
	}

	return fe.err()
}
