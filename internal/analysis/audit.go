package analysis

import (
	"context"

	log "github.com/sirupsen/logrus"

	"riskradar/internal/models"
)

// The two custody programs recognized as standard token owners.
const (
	tokenProgramID     = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	token2022ProgramID = "TokenzQdBNbLqP5VEhdkAS6EPFLC1PHnBqCXEpPxuEb"
)

func isCustodyProgram(programID string) bool {
	return programID == tokenProgramID || programID == token2022ProgramID
}

// AuditContract inspects the mint account's authorities and the metadata
// update authority, deriving permission and security flags. An unreadable
// mint account degrades to an empty audit rather than an error.
func (e *Engine) AuditContract(ctx context.Context, mint string, profile *models.TokenProfile) *models.ContractAudit {
	audit := &models.ContractAudit{}

	info, err := e.chain.GetMintAuthorityInfo(ctx, mint)
	if err != nil {
		log.Warnf("audit: mint account lookup failed for %s: %v", mint, err)
	} else if info != nil {
		audit.Authorities.Mint = info.MintAuthority
		audit.Authorities.Freeze = info.FreezeAuthority
		audit.ProgramAnalysis.ProgramID = info.Owner
		audit.ProgramAnalysis.IsAlternateStandard = info.Owner == token2022ProgramID
		audit.ProgramAnalysis.CustomLogic = info.Owner != "" && !isCustodyProgram(info.Owner)
	}

	if profile != nil && profile.Metadata.UpdateAuthority != "" {
		audit.Authorities.Update = profile.Metadata.UpdateAuthority
	} else if meta, err := e.chain.GetTokenMetadata(ctx, mint); err != nil {
		log.Warnf("audit: metadata lookup failed for %s: %v", mint, err)
	} else if meta != nil {
		audit.Authorities.Update = meta.Metadata.UpdateAuthority
	}

	audit.Permissions = models.Permissions{
		CanMint:   audit.Authorities.Mint != "",
		CanFreeze: audit.Authorities.Freeze != "",
		CanUpdate: audit.Authorities.Update != "",
	}
	audit.SecurityFlags = models.SecurityFlags{
		RevokedAuthorities:    audit.Authorities.Mint == "" && audit.Authorities.Freeze == "",
		SuspiciousPermissions: audit.Authorities.Mint != "" && audit.Authorities.Mint == audit.Authorities.Freeze,
	}

	return audit
}
