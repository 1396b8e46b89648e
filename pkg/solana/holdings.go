package solana

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

// SPL token-account layout: mint at offset 0, owner at 32, u64 amount at 64.
const (
	tokenAccountMintOffset   = 0
	tokenAccountAmountOffset = 64
	tokenAccountLen          = 72
)

// GetFungibleHoldings lists the wallet's SPL token positions. Balances for
// the same mint across multiple accounts are summed. Decimals are resolved
// per mint via getTokenSupply; a failed decimals lookup drops that mint with
// a warning rather than reporting a wrong UI amount.
func (c *Client) GetFungibleHoldings(ctx context.Context, wallet string) ([]models.Holding, error) {
	owner, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet address: %w", err)
	}

	programID := solana.TokenProgramID
	resp, err := c.rpc.GetTokenAccountsByOwner(ctx, owner,
		&rpc.GetTokenAccountsConfig{ProgramId: &programID},
		&rpc.GetTokenAccountsOpts{Encoding: solana.EncodingBase64},
	)
	if err != nil {
		return nil, fmt.Errorf("getTokenAccountsByOwner: %w", err)
	}

	rawByMint := make(map[string]uint64)
	for _, acct := range resp.Value {
		if acct.Account.Data == nil {
			continue
		}
		data := acct.Account.Data.GetBinary()
		if len(data) < tokenAccountLen {
			log.Warnf("solana: token account %s data too short: %d bytes", acct.Pubkey, len(data))
			continue
		}
		mint := solana.PublicKeyFromBytes(data[tokenAccountMintOffset : tokenAccountMintOffset+32]).String()
		amount := binary.LittleEndian.Uint64(data[tokenAccountAmountOffset:])
		rawByMint[mint] += amount
	}

	holdings := make([]models.Holding, 0, len(rawByMint))
	for mint, raw := range rawByMint {
		if raw == 0 {
			continue
		}
		supply, err := c.GetTokenSupply(ctx, mint)
		if err != nil {
			log.Warnf("solana: decimals lookup failed for %s, skipping holding: %v", mint, err)
			continue
		}
		holdings = append(holdings, models.Holding{
			Mint:      mint,
			AmountRaw: strconv.FormatUint(raw, 10),
			Decimals:  supply.Decimals,
			UIAmount:  float64(raw) / math.Pow(10, float64(supply.Decimals)),
		})
	}
	return holdings, nil
}
