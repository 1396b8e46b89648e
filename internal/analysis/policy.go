package analysis

// Policy holds every weight and threshold the risk scorer uses. The point
// values have no derivation beyond preserving their relative ordering, so
// they are kept as tunable data rather than literals inside the formulas.
type Policy struct {
	Version string

	// Category weights for the overall score.
	TokenomicsWeight float64
	LiquidityWeight  float64
	SecurityWeight   float64
	SocialWeight     float64

	// Tokenomics sub-weights.
	Top10ScaleMin   float64
	Top10ScaleMax   float64
	Top10SubWeight  float64
	GiniSubWeight   float64
	MaxWhalePoints  int
	WhalePercentMin float64 // percentage of supply above which a holder is a whale

	// Liquidity sub-weights and penalties.
	VolumeLogScaleMin      float64
	VolumeLogScaleMax      float64
	VolumeSubWeight        float64
	PoolCountSubWeight     float64
	ConcentrationSubWeight float64
	ZeroPoolPenalty        float64
	SinglePoolPenalty      float64
	MultiPoolPenalty       float64
	TopPoolScaleMin        float64
	TopPoolScaleMax        float64
	NoPoolConcentration    float64

	// Security point values.
	MintAuthorityPoints   int
	FreezeAuthorityPoints int
	UpdateAuthorityPoints int
	SuspiciousPoints      int
	CustomLogicPoints     int

	// Social adjustments around the neutral baseline.
	SocialBaseline      int
	NoExternalURLPoints int
	NoImagePoints       int
	NoDescriptionPoints int
	WellDocumentedBonus int

	// Flag thresholds on the raw metrics, independent of category weights.
	Top10CriticalPct   float64
	Top10WarningPct    float64
	GiniWarning        float64
	WhaleCountWarning  int
	VolumeCriticalUSD  float64
	VolumeWarningUSD   float64
	TopPoolCriticalPct float64
	TopPoolWarningPct  float64
	LPLockedWarningPct float64

	// Recommendation trigger: category scores strictly above this produce a
	// recommendation.
	RecommendationScore int
}

// DefaultPolicy is the shipped scoring policy. The formulas in scorer.go
// reproduce the documented behavior exactly when run with these values.
func DefaultPolicy() Policy {
	return Policy{
		Version: "v1",

		TokenomicsWeight: 0.35,
		LiquidityWeight:  0.30,
		SecurityWeight:   0.25,
		SocialWeight:     0.10,

		Top10ScaleMin:   10,
		Top10ScaleMax:   95,
		Top10SubWeight:  0.5,
		GiniSubWeight:   0.35,
		MaxWhalePoints:  3,
		WhalePercentMin: 5,

		VolumeLogScaleMin:      2,
		VolumeLogScaleMax:      8,
		VolumeSubWeight:        0.5,
		PoolCountSubWeight:     0.3,
		ConcentrationSubWeight: 0.2,
		ZeroPoolPenalty:        10,
		SinglePoolPenalty:      6,
		MultiPoolPenalty:       2,
		TopPoolScaleMin:        20,
		TopPoolScaleMax:        95,
		NoPoolConcentration:    4,

		MintAuthorityPoints:   4,
		FreezeAuthorityPoints: 2,
		UpdateAuthorityPoints: 2,
		SuspiciousPoints:      2,
		CustomLogicPoints:     1,

		SocialBaseline:      5,
		NoExternalURLPoints: 2,
		NoImagePoints:       1,
		NoDescriptionPoints: 1,
		WellDocumentedBonus: 2,

		Top10CriticalPct:   80,
		Top10WarningPct:    60,
		GiniWarning:        0.8,
		WhaleCountWarning:  3,
		VolumeCriticalUSD:  1_000,
		VolumeWarningUSD:   10_000,
		TopPoolCriticalPct: 80,
		TopPoolWarningPct:  60,
		LPLockedWarningPct: 50,

		RecommendationScore: 6,
	}
}
