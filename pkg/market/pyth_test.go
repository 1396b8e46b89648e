package market

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pythAccountBytes(expo int32, agg int64, status uint32) []byte {
	data := make([]byte, pythMinAccountLen)
	binary.LittleEndian.PutUint32(data[pythMagicOffset:], pythMagic)
	binary.LittleEndian.PutUint32(data[pythExpoOffset:], uint32(expo))
	binary.LittleEndian.PutUint64(data[pythAggOffset:], uint64(agg))
	binary.LittleEndian.PutUint32(data[pythStatusOffset:], status)
	return data
}

func TestParsePythPrice(t *testing.T) {
	t.Run("Trading Account Yields Scaled Price", func(t *testing.T) {
		data := pythAccountBytes(-8, 15_000_000_000, pythStatusTrading)
		price, err := parsePythPrice(data)
		require.NoError(t, err)
		assert.InDelta(t, 150.0, price, 1e-9)
	})

	t.Run("Rejects Short Data", func(t *testing.T) {
		_, err := parsePythPrice(make([]byte, 10))
		assert.Error(t, err)
	})

	t.Run("Rejects Wrong Magic", func(t *testing.T) {
		data := pythAccountBytes(-8, 1, pythStatusTrading)
		binary.LittleEndian.PutUint32(data[pythMagicOffset:], 0xdeadbeef)
		_, err := parsePythPrice(data)
		assert.Error(t, err)
	})

	t.Run("Rejects Non Trading Status", func(t *testing.T) {
		data := pythAccountBytes(-8, 1, 0)
		_, err := parsePythPrice(data)
		assert.Error(t, err)
	})
}
