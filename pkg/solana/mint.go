package solana

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"riskradar/internal/models"
)

// SPL mint account layout: a 36-byte COption<Pubkey> mint authority, the u64
// supply, the decimals byte, an initialized byte, then a 36-byte
// COption<Pubkey> freeze authority.
const (
	mintAuthorityTagOffset   = 0
	mintAuthorityOffset      = 4
	supplyOffset             = 36
	decimalsOffset           = 44
	freezeAuthorityTagOffset = 46
	freezeAuthorityOffset    = 50
	mintAccountLen           = 82
)

// GetMintAuthorityInfo reads and parses the mint account: owning program,
// supply, decimals and the two optional authorities. Revoked authorities come
// back as empty strings.
func (c *Client) GetMintAuthorityInfo(ctx context.Context, mint string) (*models.MintInfo, error) {
	mintPubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint address: %w", err)
	}

	resp, err := c.rpc.GetAccountInfo(ctx, mintPubkey)
	if err != nil {
		return nil, fmt.Errorf("getAccountInfo: %w", err)
	}
	if resp == nil || resp.Value == nil || resp.Value.Data == nil {
		return nil, fmt.Errorf("mint account %s not found", mint)
	}

	return parseMintAccount(resp.Value.Owner.String(), resp.Value.Data.GetBinary())
}

func parseMintAccount(owner string, data []byte) (*models.MintInfo, error) {
	if len(data) < mintAccountLen {
		return nil, fmt.Errorf("mint account data too short: %d bytes", len(data))
	}

	info := &models.MintInfo{
		Owner:    owner,
		Supply:   binary.LittleEndian.Uint64(data[supplyOffset:]),
		Decimals: data[decimalsOffset],
	}
	if binary.LittleEndian.Uint32(data[mintAuthorityTagOffset:]) == 1 {
		info.MintAuthority = solana.PublicKeyFromBytes(data[mintAuthorityOffset : mintAuthorityOffset+32]).String()
	}
	if binary.LittleEndian.Uint32(data[freezeAuthorityTagOffset:]) == 1 {
		info.FreezeAuthority = solana.PublicKeyFromBytes(data[freezeAuthorityOffset : freezeAuthorityOffset+32]).String()
	}
	return info, nil
}
