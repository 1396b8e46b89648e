package solana

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintAccountBytes(mintAuth, freezeAuth *solana.PublicKey, supply uint64, decimals uint8) []byte {
	data := make([]byte, mintAccountLen)
	if mintAuth != nil {
		binary.LittleEndian.PutUint32(data[mintAuthorityTagOffset:], 1)
		copy(data[mintAuthorityOffset:], mintAuth.Bytes())
	}
	binary.LittleEndian.PutUint64(data[supplyOffset:], supply)
	data[decimalsOffset] = decimals
	if freezeAuth != nil {
		binary.LittleEndian.PutUint32(data[freezeAuthorityTagOffset:], 1)
		copy(data[freezeAuthorityOffset:], freezeAuth.Bytes())
	}
	return data
}

func TestParseMintAccount(t *testing.T) {
	owner := "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	authority := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")

	t.Run("Active Authorities", func(t *testing.T) {
		data := mintAccountBytes(&authority, &authority, 1_000_000, 6)
		info, err := parseMintAccount(owner, data)
		require.NoError(t, err)

		assert.Equal(t, owner, info.Owner)
		assert.Equal(t, authority.String(), info.MintAuthority)
		assert.Equal(t, authority.String(), info.FreezeAuthority)
		assert.Equal(t, uint64(1_000_000), info.Supply)
		assert.Equal(t, uint8(6), info.Decimals)
	})

	t.Run("Revoked Authorities Come Back Empty", func(t *testing.T) {
		data := mintAccountBytes(nil, nil, 42, 9)
		info, err := parseMintAccount(owner, data)
		require.NoError(t, err)

		assert.Empty(t, info.MintAuthority)
		assert.Empty(t, info.FreezeAuthority)
		assert.Equal(t, uint64(42), info.Supply)
	})

	t.Run("Rejects Short Data", func(t *testing.T) {
		_, err := parseMintAccount(owner, make([]byte, 40))
		assert.Error(t, err)
	})
}

func TestReadString(t *testing.T) {
	t.Run("Reads Length Prefixed String", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint32(5)))
		buf.WriteString("hello")

		s, err := readString(buf)
		require.NoError(t, err)
		assert.Equal(t, "hello", s)
	})

	t.Run("Trims Null Padding", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint32(8)))
		buf.WriteString("abc\x00\x00\x00\x00\x00")

		s, err := readString(buf)
		require.NoError(t, err)
		assert.Equal(t, "abc", s)
	})

	t.Run("Rejects Length Beyond Buffer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		require.NoError(t, binary.Write(buf, binary.LittleEndian, uint32(100)))
		buf.WriteString("short")

		_, err := readString(buf)
		assert.Error(t, err)
	})
}
