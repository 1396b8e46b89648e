// Package analysis contains the token risk engine: holder-distribution
// statistics, liquidity aggregation, contract audit, the weighted risk
// scorer, the portfolio valuator and the sentiment read. All state is
// request-scoped; every external dependency is consumed through the small
// interfaces below so hosts can substitute their own adapters.
package analysis

import (
	"context"

	"riskradar/internal/models"
)

// ChainReader is the on-chain surface the engine needs. pkg/solana implements
// it over a JSON-RPC node.
type ChainReader interface {
	GetTokenSupply(ctx context.Context, mint string) (*models.TokenSupply, error)
	GetLargestHolderAccounts(ctx context.Context, mint string) ([]models.HolderBalance, error)
	GetMintAuthorityInfo(ctx context.Context, mint string) (*models.MintInfo, error)
	ResolveAccountOwner(ctx context.Context, address string) (string, error)
	GetTokenMetadata(ctx context.Context, mint string) (*models.TokenInfo, error)
	GetNativeBalance(ctx context.Context, wallet string) (uint64, error)
	GetFungibleHoldings(ctx context.Context, wallet string) ([]models.Holding, error)
}

// LedgerExplorer resolves recent large transfers for a mint. A returned error
// means the history is unknown, which is reported distinctly from an empty
// history.
type LedgerExplorer interface {
	GetRecentLargeTransfers(ctx context.Context, mint string) ([]models.Transfer, error)
}

// PoolSource lists the known DEX liquidity pools for a mint.
type PoolSource interface {
	GetPoolSnapshots(ctx context.Context, mint string) ([]models.PoolSnapshot, error)
}

// MarketSource produces a market snapshot for a symbol/mint. Implementations
// must always return a value; pkg/market's provider chain guarantees that.
type MarketSource interface {
	GetMarketData(ctx context.Context, symbol, mint string) models.MarketData
}
