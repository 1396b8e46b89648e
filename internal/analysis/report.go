package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

// Engine runs the analyzers against a fixed set of adapters. It holds no
// request state and is safe for concurrent use.
type Engine struct {
	chain    ChainReader
	explorer LedgerExplorer
	pools    PoolSource
	market   MarketSource
	policy   Policy
}

func NewEngine(chain ChainReader, explorer LedgerExplorer, pools PoolSource, market MarketSource, policy Policy) *Engine {
	return &Engine{
		chain:    chain,
		explorer: explorer,
		pools:    pools,
		market:   market,
		policy:   policy,
	}
}

// validateAddress rejects malformed base58 identifiers before any network
// access happens.
func validateAddress(kind, address string) error {
	if address == "" {
		return fmt.Errorf("%s address is empty", kind)
	}
	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return fmt.Errorf("invalid %s address %q: %w", kind, address, err)
	}
	return nil
}

// BuildTokenRiskReport produces the full risk report for a mint. The three
// analyzers are independent and run concurrently. The only error condition is
// a malformed mint; every upstream outage degrades into the report itself.
func (e *Engine) BuildTokenRiskReport(ctx context.Context, mint string) (*models.RiskReport, error) {
	if err := validateAddress("mint", mint); err != nil {
		return nil, err
	}

	profile := e.buildTokenProfile(ctx, mint)

	var (
		wg        sync.WaitGroup
		holders   *models.HolderAnalysis
		liquidity *models.LiquidityAnalysis
		audit     *models.ContractAudit
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		holders = e.AnalyzeHolders(ctx, mint, profile)
	}()
	go func() {
		defer wg.Done()
		liquidity = e.AnalyzeLiquidity(ctx, mint, profile)
	}()
	go func() {
		defer wg.Done()
		audit = e.AuditContract(ctx, mint, profile)
	}()
	wg.Wait()

	scored := Score(holders, liquidity, audit, profile, e.policy)

	report := &models.RiskReport{
		Mint:            mint,
		Overall:         scored.Overall,
		Categories:      scored.Categories,
		Flags:           scored.Flags,
		Recommendations: scored.Recommendations,
		Profile:         profile,
		Holders:         holders,
		Liquidity:       liquidity,
		Audit:           audit,
	}

	if liquidity.MarketData.Price > 0 {
		report.Market = &models.MarketSection{
			Data:     liquidity.MarketData,
			Analysis: AnalyzeMarket(liquidity.MarketData, profile),
		}
	}

	return report, nil
}

// buildTokenProfile assembles identity, supply and metadata for a mint. Every
// lookup is best-effort; the profile is never nil.
func (e *Engine) buildTokenProfile(ctx context.Context, mint string) *models.TokenProfile {
	profile := &models.TokenProfile{Mint: mint}

	if supply, err := e.chain.GetTokenSupply(ctx, mint); err != nil {
		log.Warnf("profile: token supply lookup failed for %s: %v", mint, err)
	} else {
		profile.TotalSupplyRaw = supply.AmountRaw
		profile.TotalSupplyUI = supply.UIAmount
		profile.Decimals = supply.Decimals
	}

	if info, err := e.chain.GetTokenMetadata(ctx, mint); err != nil {
		log.Warnf("profile: metadata lookup failed for %s: %v", mint, err)
	} else if info != nil {
		profile.Name = info.Name
		profile.Symbol = info.Symbol
		profile.Creator = info.Creator
		profile.CreatedAt = info.CreatedAt
		profile.Metadata = info.Metadata
	}

	return profile
}
