package domain

// RiskProfile summarises the intercompany exposure of one operating entity.
type RiskProfile struct {
	ID           string
	Entity       string // display name
	Score        int
	Churn        int
	FXRisk       int
	ICComplexity int
	ICMismatches int
	TotalGap     float64
}
