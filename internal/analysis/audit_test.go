package analysis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskradar/internal/models"
)

func TestAuditContract(t *testing.T) {
	t.Run("Shared Mint And Freeze Authority Is Suspicious", func(t *testing.T) {
		chain := &stubChain{mintInfo: &models.MintInfo{
			Owner:           tokenProgramID,
			MintAuthority:   "Auth1111111111111111111111111111111111111111",
			FreezeAuthority: "Auth1111111111111111111111111111111111111111",
		}}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		audit := engine.AuditContract(context.Background(), "m", nil)
		require.NotNil(t, audit)

		assert.True(t, audit.Permissions.CanMint)
		assert.True(t, audit.Permissions.CanFreeze)
		assert.False(t, audit.Permissions.CanUpdate)
		assert.True(t, audit.SecurityFlags.SuspiciousPermissions)
		assert.False(t, audit.SecurityFlags.RevokedAuthorities)
		assert.Equal(t, 8, scoreSecurity(audit, DefaultPolicy()))
	})

	t.Run("Fully Revoked Authorities", func(t *testing.T) {
		chain := &stubChain{mintInfo: &models.MintInfo{Owner: tokenProgramID}}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		audit := engine.AuditContract(context.Background(), "m", nil)
		assert.True(t, audit.SecurityFlags.RevokedAuthorities)
		assert.False(t, audit.SecurityFlags.SuspiciousPermissions)
		assert.False(t, audit.ProgramAnalysis.CustomLogic)
		assert.False(t, audit.ProgramAnalysis.IsAlternateStandard)
	})

	t.Run("Alternate Token Standard Is Not Custom Logic", func(t *testing.T) {
		chain := &stubChain{mintInfo: &models.MintInfo{Owner: token2022ProgramID}}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		audit := engine.AuditContract(context.Background(), "m", nil)
		assert.True(t, audit.ProgramAnalysis.IsAlternateStandard)
		assert.False(t, audit.ProgramAnalysis.CustomLogic)
	})

	t.Run("Unknown Owner Program Is Custom Logic", func(t *testing.T) {
		chain := &stubChain{mintInfo: &models.MintInfo{Owner: "Prog111111111111111111111111111111111111111"}}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		audit := engine.AuditContract(context.Background(), "m", nil)
		assert.True(t, audit.ProgramAnalysis.CustomLogic)
	})

	t.Run("Update Authority From Profile Metadata", func(t *testing.T) {
		chain := &stubChain{mintInfo: &models.MintInfo{Owner: tokenProgramID}}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		profile := &models.TokenProfile{
			Metadata: models.TokenMetadata{UpdateAuthority: "Upd11111111111111111111111111111111111111111"},
		}
		audit := engine.AuditContract(context.Background(), "m", profile)
		assert.True(t, audit.Permissions.CanUpdate)
		assert.Equal(t, profile.Metadata.UpdateAuthority, audit.Authorities.Update)
	})

	t.Run("Update Authority Falls Back To Metadata Lookup", func(t *testing.T) {
		chain := &stubChain{
			mintInfo: &models.MintInfo{Owner: tokenProgramID},
			tokenInfo: &models.TokenInfo{
				Metadata: models.TokenMetadata{UpdateAuthority: "Upd22222222222222222222222222222222222222222"},
			},
		}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		audit := engine.AuditContract(context.Background(), "m", nil)
		assert.True(t, audit.Permissions.CanUpdate)
	})

	t.Run("Unreadable Mint Account Degrades", func(t *testing.T) {
		chain := &stubChain{failAll: true}
		engine := NewEngine(chain, &stubExplorer{}, &stubPools{}, &stubMarket{}, DefaultPolicy())

		audit := engine.AuditContract(context.Background(), "m", nil)
		require.NotNil(t, audit)
		assert.False(t, audit.Permissions.CanMint)
		assert.True(t, audit.SecurityFlags.RevokedAuthorities)
	})
}
