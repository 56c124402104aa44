package domain

import "time"

// Analysis bundles the inputs and every derived collection of a single run.
type Analysis struct {
	RunID        string
	GeneratedAt  time.Time
	Entities     []Entity
	Transactions []TransactionRow
	Issues       []Issue
	Pairs        []ICPair
	Risks        []RiskProfile
	Log          []LogEntry
}

// Summary gives headline counts over an analysis.
type Summary struct {
	Entities        int
	Transactions    int
	Issues          int
	HighIssues      int
	Pairs           int
	ReconciledPairs int
	MissingPairs    int
	OrphanPairs     int
	TotalGap        float64
}

func (a Analysis) Summary() Summary {
	s := Summary{
		Entities:     len(a.Entities),
		Transactions: len(a.Transactions),
		Issues:       len(a.Issues),
		Pairs:        len(a.Pairs),
	}
	for _, issue := range a.Issues {
		if issue.Severity == SeverityHigh {
			s.HighIssues++
		}
	}
	for _, p := range a.Pairs {
		if p.Reconciled {
			s.ReconciledPairs++
		}
		if p.Missing {
			s.MissingPairs++
		}
		if p.OrphanPayable {
			s.OrphanPairs++
		}
		s.TotalGap += p.Gap
	}
	return s
}
