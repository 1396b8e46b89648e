package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"

	"riskradar/internal/analysis"
	"riskradar/pkg/config"
	"riskradar/pkg/dexscreener"
	"riskradar/pkg/helius"
	"riskradar/pkg/market"
	"riskradar/pkg/solana"
)

func buildEngine(cfg *config.Config) (*analysis.Engine, *market.Chain) {
	chainClient := solana.NewClient(cfg.RPCEndpoint)
	explorer := helius.NewClient(cfg.HeliusAPIKey, cfg.HeliusBaseURL, cfg.MinTransferAmount, cfg.HTTPTimeout)
	pools := dexscreener.NewClient(cfg.DexScreenerBaseURL, cfg.HTTPTimeout)

	priceChain := market.NewChain(
		market.NewDexScreenerProvider(pools),
		market.NewPythProvider(cfg.RPCEndpoint),
		market.NewJupiterProvider(cfg.JupiterBaseURL, cfg.HTTPTimeout),
	)

	policy := analysis.DefaultPolicy()
	if cfg.TokenomicsWeight > 0 {
		policy.TokenomicsWeight = cfg.TokenomicsWeight
	}
	if cfg.LiquidityWeight > 0 {
		policy.LiquidityWeight = cfg.LiquidityWeight
	}
	if cfg.SecurityWeight > 0 {
		policy.SecurityWeight = cfg.SecurityWeight
	}
	if cfg.SocialWeight > 0 {
		policy.SocialWeight = cfg.SocialWeight
	}

	return analysis.NewEngine(chainClient, explorer, pools, priceChain, policy), priceChain
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	cfg := config.Load()

	cmd := &cli.Command{
		Name:  "riskradar",
		Usage: "token risk reports and wallet valuations from multiple market data sources",
		Commands: []*cli.Command{
			{
				Name:      "report",
				Usage:     "build a full risk report for a token mint",
				ArgsUsage: "<mint>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					mint := cmd.Args().First()
					if mint == "" {
						return fmt.Errorf("mint address is required")
					}
					engine, _ := buildEngine(cfg)
					report, err := engine.BuildTokenRiskReport(ctx, mint)
					if err != nil {
						return err
					}
					return printJSON(report)
				},
			},
			{
				Name:      "portfolio",
				Usage:     "value a wallet's holdings and classify concentration risk",
				ArgsUsage: "<wallet>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mints",
						Usage: "comma-separated mint filter",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					wallet := cmd.Args().First()
					if wallet == "" {
						return fmt.Errorf("wallet address is required")
					}
					var filter []string
					if raw := cmd.String("mints"); raw != "" {
						filter = strings.Split(raw, ",")
					}
					engine, _ := buildEngine(cfg)
					portfolio, err := engine.AnalyzePortfolio(ctx, wallet, filter)
					if err != nil {
						return err
					}
					return printJSON(portfolio)
				},
			},
			{
				Name:      "market",
				Usage:     "fetch a market snapshot through the provider chain",
				ArgsUsage: "<symbol>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mint",
						Usage: "mint address for mint-keyed providers",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					symbol := cmd.Args().First()
					if symbol == "" && cmd.String("mint") == "" {
						return fmt.Errorf("symbol or --mint is required")
					}
					_, priceChain := buildEngine(cfg)
					return printJSON(priceChain.GetMarketData(ctx, symbol, cmd.String("mint")))
				},
			},
			{
				Name:      "sentiment",
				Usage:     "fetch a market snapshot and run the sentiment read over it",
				ArgsUsage: "<symbol>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mint",
						Usage: "mint address for mint-keyed providers",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					symbol := cmd.Args().First()
					if symbol == "" && cmd.String("mint") == "" {
						return fmt.Errorf("symbol or --mint is required")
					}
					_, priceChain := buildEngine(cfg)
					md := priceChain.GetMarketData(ctx, symbol, cmd.String("mint"))
					return printJSON(analysis.AnalyzeMarket(md, nil))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
