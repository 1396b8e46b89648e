// Package config loads runtime settings from the environment, with a .env
// file picked up automatically when present.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Adapters
	RPCEndpoint        string
	HeliusAPIKey       string
	HeliusBaseURL      string
	DexScreenerBaseURL string
	JupiterBaseURL     string
	HTTPTimeout        time.Duration

	// The smallest UI amount treated as a "large" transfer.
	MinTransferAmount float64

	// Category weight overrides for the scoring policy. Zero means "use the
	// shipped default".
	TokenomicsWeight float64
	LiquidityWeight  float64
	SecurityWeight   float64
	SocialWeight     float64
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		RPCEndpoint:        os.Getenv("SOLANA_RPC_ENDPOINT"),
		HeliusAPIKey:       os.Getenv("HELIUS_API_KEY"),
		HeliusBaseURL:      os.Getenv("HELIUS_BASE_URL"),
		DexScreenerBaseURL: os.Getenv("DEXSCREENER_BASE_URL"),
		JupiterBaseURL:     os.Getenv("JUPITER_BASE_URL"),
		HTTPTimeout:        time.Duration(getEnvFloat("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,

		MinTransferAmount: getEnvFloat("MIN_TRANSFER_AMOUNT", 10_000),

		TokenomicsWeight: getEnvFloat("WEIGHT_TOKENOMICS", 0),
		LiquidityWeight:  getEnvFloat("WEIGHT_LIQUIDITY", 0),
		SecurityWeight:   getEnvFloat("WEIGHT_SECURITY", 0),
		SocialWeight:     getEnvFloat("WEIGHT_SOCIAL", 0),
	}
}

func getEnvFloat(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
