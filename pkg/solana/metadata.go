package solana

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

var metadataProgramID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")

var metadataHTTPClient = &http.Client{Timeout: 10 * time.Second}

func readString(buf *bytes.Buffer) (string, error) {
	var strLen uint32
	if err := binary.Read(buf, binary.LittleEndian, &strLen); err != nil {
		return "", err
	}
	if int(strLen) > buf.Len() {
		return "", fmt.Errorf("string length %d exceeds remaining data", strLen)
	}
	strBytes := make([]byte, strLen)
	if _, err := buf.Read(strBytes); err != nil {
		return "", err
	}
	return strings.TrimRight(string(strBytes), "\x00"), nil
}

// offchainMetadata is the JSON document behind a Metaplex metadata URI.
type offchainMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Image       string `json:"image"`
	Description string `json:"description"`
	ExternalURL string `json:"external_url"`
}

// GetTokenMetadata resolves the Metaplex metadata PDA for the mint, parses
// the on-chain record and enriches it from the off-chain URI document when
// one is reachable. The off-chain fetch is best-effort.
func (c *Client) GetTokenMetadata(ctx context.Context, mint string) (*models.TokenInfo, error) {
	mintPubkey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, fmt.Errorf("invalid mint address: %w", err)
	}

	// Standard PDA seeds: ["metadata", programID, mint].
	seeds := [][]byte{
		[]byte("metadata"),
		metadataProgramID.Bytes(),
		mintPubkey.Bytes(),
	}
	metadataAddress, _, err := solana.FindProgramAddress(seeds, metadataProgramID)
	if err != nil {
		return nil, fmt.Errorf("failed to derive metadata address: %w", err)
	}

	resp, err := c.rpc.GetAccountInfo(ctx, metadataAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}
	if resp == nil || resp.Value == nil || resp.Value.Data == nil {
		return nil, fmt.Errorf("no metadata found for mint: %s", mint)
	}

	data := resp.Value.Data.GetBinary()
	buf := bytes.NewBuffer(data)

	var key uint8
	if err := binary.Read(buf, binary.LittleEndian, &key); err != nil {
		return nil, err
	}
	var updateAuthority, mintField [32]byte
	if _, err := buf.Read(updateAuthority[:]); err != nil {
		return nil, err
	}
	if _, err := buf.Read(mintField[:]); err != nil {
		return nil, err
	}

	info := &models.TokenInfo{}
	if info.Name, err = readString(buf); err != nil {
		return nil, err
	}
	if info.Symbol, err = readString(buf); err != nil {
		return nil, err
	}
	uri, err := readString(buf)
	if err != nil {
		return nil, err
	}

	info.Metadata = models.TokenMetadata{
		URI:             strings.TrimSpace(uri),
		UpdateAuthority: solana.PublicKeyFromBytes(updateAuthority[:]).String(),
	}
	info.Creator = parseFirstCreator(buf, info.Metadata.UpdateAuthority)

	if info.Metadata.URI != "" {
		if offchain, err := fetchOffchainMetadata(ctx, info.Metadata.URI); err != nil {
			log.Warnf("solana: off-chain metadata fetch failed for %s: %v", mint, err)
		} else {
			info.Metadata.Image = offchain.Image
			info.Metadata.Description = offchain.Description
			info.Metadata.ExternalURL = offchain.ExternalURL
			if info.Name == "" {
				info.Name = offchain.Name
			}
			if info.Symbol == "" {
				info.Symbol = offchain.Symbol
			}
		}
	}

	return info, nil
}

// parseFirstCreator reads past the seller-fee field into the optional creator
// list and returns the first creator address, falling back to the update
// authority when the record carries no creators.
func parseFirstCreator(buf *bytes.Buffer, fallback string) string {
	var sellerFee uint16
	if err := binary.Read(buf, binary.LittleEndian, &sellerFee); err != nil {
		return fallback
	}
	var hasCreators uint8
	if err := binary.Read(buf, binary.LittleEndian, &hasCreators); err != nil || hasCreators != 1 {
		return fallback
	}
	var numCreators uint32
	if err := binary.Read(buf, binary.LittleEndian, &numCreators); err != nil || numCreators == 0 {
		return fallback
	}
	var creator [32]byte
	if _, err := buf.Read(creator[:]); err != nil {
		return fallback
	}
	return solana.PublicKeyFromBytes(creator[:]).String()
}

func fetchOffchainMetadata(ctx context.Context, uri string) (*offchainMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := metadataHTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var doc offchainMetadata
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode metadata document: %w", err)
	}
	return &doc, nil
}
