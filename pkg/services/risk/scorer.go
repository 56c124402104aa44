package risk

import (
	"math"
	"sort"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
)

const (
	mismatchWeight   = 18
	fxWeight         = 8
	complexityWeight = 5
	churnWeight      = 15

	maxFactor = 5
	maxScore  = 100

	highGapThreshold = 500_000
	highGapBonus     = 15
	midGapThreshold  = 100_000
	midGapBonus      = 8
)

// Score builds a risk profile for every operating entity, ordered by descending score.
// Equal scores keep the entity input order.
//
// The transaction rows are part of the contract but the current formula derives every
// factor from the reconciled pairs.
func Score(entities []domain.Entity, _ []domain.TransactionRow, pairs []domain.ICPair) []domain.RiskProfile {
	profiles := []domain.RiskProfile{}

	for _, e := range entities {
		if !e.IsOperating() {
			continue
		}
		profiles = append(profiles, profile(e, pairs))
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].Score > profiles[j].Score
	})

	return profiles
}

func profile(e domain.Entity, pairs []domain.ICPair) domain.RiskProfile {
	var involved, mismatches, multiCcy, churn int
	totalGap := 0.0

	for _, p := range pairs {
		if !p.Involves(e.ID) {
			continue
		}
		involved++
		if !p.Reconciled {
			mismatches++
		}
		if p.MultiCurrency() {
			multiCcy++
		}
		if p.Incomplete() {
			churn++
		}
		totalGap += p.Gap
	}

	foreign := 0
	if e.Currency != domain.DefaultCurrency {
		foreign = 1
	}

	rp := domain.RiskProfile{
		ID:           e.ID,
		Entity:       e.Name,
		Churn:        churn,
		FXRisk:       min(maxFactor, multiCcy+foreign),
		ICComplexity: min(maxFactor, involved),
		ICMismatches: mismatches,
		TotalGap:     totalGap,
	}
	rp.Score = compute(rp)
	return rp
}

// compute applies the weighted formula and clamps it to [0, 100].
func compute(rp domain.RiskProfile) int {
	raw := float64(rp.ICMismatches*mismatchWeight+
		rp.FXRisk*fxWeight+
		rp.ICComplexity*complexityWeight+
		rp.Churn*churnWeight) + gapBonus(rp.TotalGap)

	score := int(math.Round(raw))
	return max(0, min(maxScore, score))
}

func gapBonus(totalGap float64) float64 {
	switch {
	case totalGap > highGapThreshold:
		return highGapBonus
	case totalGap > midGapThreshold:
		return midGapBonus
	default:
		return 0
	}
}
