// Package solana adapts a Solana JSON-RPC node to the capabilities the
// analysis engine consumes: supply, largest accounts, mint state, account
// ownership, metadata, balances and holdings.
package solana

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

type Client struct {
	rpc *rpc.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = rpc.MainNetBeta_RPC
	}
	return &Client{rpc: rpc.New(endpoint)}
}

// GetTokenSupply returns the current supply of a mint in raw and UI units.
func (c *Client) GetTokenSupply(ctx context.Context, mint string) (*models.TokenSupply, error) {
	mintPubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint address: %w", err)
	}

	resp, err := c.rpc.GetTokenSupply(ctx, mintPubkey, rpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("getTokenSupply: %w", err)
	}
	if resp == nil || resp.Value == nil {
		return nil, fmt.Errorf("getTokenSupply returned empty value for %s", mint)
	}

	supply := &models.TokenSupply{
		AmountRaw:      resp.Value.Amount,
		Decimals:       int(resp.Value.Decimals),
		UIAmountString: resp.Value.UiAmountString,
	}
	if resp.Value.UiAmount != nil {
		supply.UIAmount = *resp.Value.UiAmount
	} else if ui, err := strconv.ParseFloat(resp.Value.UiAmountString, 64); err == nil {
		supply.UIAmount = ui
	}
	return supply, nil
}

// GetLargestHolderAccounts returns the largest token accounts of a mint,
// ordered by balance descending as the node reports them.
func (c *Client) GetLargestHolderAccounts(ctx context.Context, mint string) ([]models.HolderBalance, error) {
	mintPubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint address: %w", err)
	}

	resp, err := c.rpc.GetTokenLargestAccounts(ctx, mintPubkey, rpc.CommitmentFinalized)
	if err != nil {
		return nil, fmt.Errorf("getTokenLargestAccounts: %w", err)
	}

	balances := make([]models.HolderBalance, 0, len(resp.Value))
	for _, acct := range resp.Value {
		bal := models.HolderBalance{
			Address:   acct.Address.String(),
			AmountRaw: acct.Amount,
		}
		if acct.UiAmount != nil {
			bal.UIAmount = *acct.UiAmount
		}
		balances = append(balances, bal)
	}
	return balances, nil
}

// ResolveAccountOwner returns the program id owning the given account.
func (c *Client) ResolveAccountOwner(ctx context.Context, address string) (string, error) {
	pubkey, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return "", fmt.Errorf("invalid account address: %w", err)
	}

	resp, err := c.rpc.GetAccountInfo(ctx, pubkey)
	if err != nil {
		return "", fmt.Errorf("getAccountInfo: %w", err)
	}
	if resp == nil || resp.Value == nil {
		return "", fmt.Errorf("account %s not found", address)
	}
	return resp.Value.Owner.String(), nil
}

// GetNativeBalance returns the wallet's lamport balance.
func (c *Client) GetNativeBalance(ctx context.Context, wallet string) (uint64, error) {
	pubkey, err := solana.PublicKeyFromBase58(wallet)
	if err != nil {
		return 0, fmt.Errorf("invalid wallet address: %w", err)
	}

	resp, err := c.rpc.GetBalance(ctx, pubkey, rpc.CommitmentFinalized)
	if err != nil {
		log.Warnf("solana: balance lookup failed for %s: %v", wallet, err)
		return 0, fmt.Errorf("getBalance: %w", err)
	}
	return resp.Value, nil
}
