package models

import "time"

// TokenProfile is the identity and metadata of one fungible token. Built fresh
// per request; every field is best-effort and zero values mean "unknown".
type TokenProfile struct {
	Mint           string        `json:"mint"`
	Name           string        `json:"name"`
	Symbol         string        `json:"symbol"`
	Decimals       int           `json:"decimals"`
	TotalSupplyRaw string        `json:"total_supply_raw"`
	TotalSupplyUI  float64       `json:"total_supply_ui"`
	Creator        string        `json:"creator,omitempty"`
	CreatedAt      time.Time     `json:"created_at,omitempty"`
	Metadata       TokenMetadata `json:"metadata"`
}

// TokenMetadata is the off-chain portion of a token's metadata plus the
// update authority recorded on chain.
type TokenMetadata struct {
	URI             string `json:"uri,omitempty"`
	Image           string `json:"image,omitempty"`
	Description     string `json:"description,omitempty"`
	ExternalURL     string `json:"external_url,omitempty"`
	UpdateAuthority string `json:"update_authority,omitempty"`
}

// TokenInfo is the combined on-chain and off-chain metadata for a mint, as
// resolved by the chain adapter.
type TokenInfo struct {
	Name      string        `json:"name"`
	Symbol    string        `json:"symbol"`
	Creator   string        `json:"creator,omitempty"`
	CreatedAt time.Time     `json:"created_at,omitempty"`
	Metadata  TokenMetadata `json:"metadata"`
}

// TokenSupply mirrors the getTokenSupply RPC value.
type TokenSupply struct {
	AmountRaw      string  `json:"amount"`
	Decimals       int     `json:"decimals"`
	UIAmount       float64 `json:"ui_amount"`
	UIAmountString string  `json:"ui_amount_string"`
}

// MintInfo is the parsed state of an on-chain mint account. Empty authority
// strings mean the authority has been revoked.
type MintInfo struct {
	Owner           string `json:"owner"`
	MintAuthority   string `json:"mint_authority,omitempty"`
	FreezeAuthority string `json:"freeze_authority,omitempty"`
	Decimals        uint8  `json:"decimals"`
	Supply          uint64 `json:"supply"`
}

// HolderBalance is one entry from the largest-accounts listing.
type HolderBalance struct {
	Address   string  `json:"address"`
	AmountRaw string  `json:"amount_raw"`
	UIAmount  float64 `json:"ui_amount"`
}

// Transfer is one observed large token movement.
type Transfer struct {
	Signature   string  `json:"signature"`
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Timestamp   int64   `json:"timestamp"`
}

// Holding is one fungible position of a wallet, before pricing.
type Holding struct {
	Mint      string  `json:"mint"`
	AmountRaw string  `json:"amount_raw"`
	Decimals  int     `json:"decimals"`
	UIAmount  float64 `json:"ui_amount"`
}

// PoolSnapshot is one DEX liquidity pool observed for a mint.
type PoolSnapshot struct {
	Name           string  `json:"name"`
	Exchange       string  `json:"exchange"`
	LiquidityUSD   float64 `json:"liquidity_usd"`
	Volume24h      float64 `json:"volume_24h"`
	Txns24h        int     `json:"txns_24h"`
	Price          float64 `json:"price,omitempty"`
	PriceChange24h float64 `json:"price_change_24h"`
	LockedUSD      float64 `json:"locked_usd,omitempty"`
}
