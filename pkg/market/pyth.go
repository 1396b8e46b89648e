package market

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/blocto/solana-go-sdk/client"

	"riskradar/internal/models"
)

// Pyth v2 price-account layout offsets.
const (
	pythMagic         = 0xa1b2c3d4
	pythMagicOffset   = 0
	pythExpoOffset    = 20
	pythAggOffset     = 208
	pythStatusOffset  = 224
	pythMinAccountLen = 240

	pythStatusTrading = 1
)

// pythPriceAccounts maps supported symbols to their USD price accounts.
var pythPriceAccounts = map[string]string{
	"SOL":  "H6ARHf6YXhGYeQfUzQNGk6rDNnLBQKrenN712K4AQJEG",
	"BTC":  "GVXRSBjFk6e6J3NbVPXohDJetcTjaeeuykUpbQF8UoMU",
	"ETH":  "JBu1AL4obBcCMqKBBxhpWCNUt136ijcuMZLFvTP7iWdB",
	"USDC": "Gnt27xtC473ZT2Mw5u8wZ68Z3gULkSTb5DuxJy7eJotD",
	"USDT": "3vxLXJqLqF3JG5TCbYycbKWRBbCJQLxQmBGCkyqEEefL",
	"BONK": "8ihFLu5FimgTQ1Unh4dVyEHUGodJ5gJQCrQf4KUVB9bN",
}

// PythProvider reads prices straight from on-chain Pyth oracle accounts. It
// only serves symbols with a known price account and carries no volume data.
type PythProvider struct {
	rpc *client.Client
}

func NewPythProvider(endpoint string) *PythProvider {
	return &PythProvider{rpc: client.NewClient(endpoint)}
}

func (p *PythProvider) Name() string { return "pyth" }

func (p *PythProvider) FetchPrice(ctx context.Context, symbol, mint string) (*models.MarketData, error) {
	account, ok := pythPriceAccounts[symbol]
	if !ok {
		return nil, fmt.Errorf("no pyth price account for symbol %q", symbol)
	}

	info, err := p.rpc.GetAccountInfo(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price account: %w", err)
	}

	price, err := parsePythPrice(info.Data)
	if err != nil {
		return nil, err
	}
	return &models.MarketData{Price: price}, nil
}

// parsePythPrice extracts the aggregate price from a Pyth v2 price account:
// exponent is an i32 at offset 20, the aggregate price an i64 at offset 208,
// its status a u32 at offset 224.
func parsePythPrice(data []byte) (float64, error) {
	if len(data) < pythMinAccountLen {
		return 0, fmt.Errorf("price account data too short: %d bytes", len(data))
	}
	if binary.LittleEndian.Uint32(data[pythMagicOffset:]) != pythMagic {
		return 0, fmt.Errorf("not a pyth price account")
	}
	if binary.LittleEndian.Uint32(data[pythStatusOffset:]) != pythStatusTrading {
		return 0, fmt.Errorf("price account is not in trading status")
	}

	expo := int32(binary.LittleEndian.Uint32(data[pythExpoOffset:]))
	agg := int64(binary.LittleEndian.Uint64(data[pythAggOffset:]))
	return float64(agg) * math.Pow(10, float64(expo)), nil
}
