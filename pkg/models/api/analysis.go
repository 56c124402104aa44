package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/de-tools/entity-atlas/pkg/ingest"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Entity struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Parent   *string `json:"parent"`
	Type     string  `json:"type,omitempty"`
	Region   string  `json:"region,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

type TransactionRow struct {
	Entity       string  `json:"entity"`
	Counterparty string  `json:"counterparty,omitempty"`
	Description  string  `json:"description,omitempty"`
	Type         string  `json:"type"`
	Amount       Amount  `json:"amount"`
	Currency     string  `json:"currency,omitempty"`
}

// Amount accepts a JSON number or a currency-formatted string such as "$2,400,000".
// Strings that do not parse become 0.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = 0
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(ingest.ParseAmount(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*a = Amount(f)
	return nil
}

type Issue struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Entity   string   `json:"entity"`
	Title    string   `json:"title"`
	Desc     string   `json:"desc"`
	Fix      string   `json:"fix"`
}

type ICPair struct {
	ID            string  `json:"id"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Type          string  `json:"type"`
	SenderAmt     float64 `json:"senderAmt"`
	ReceiverAmt   float64 `json:"receiverAmt"`
	Gap           float64 `json:"gap"`
	Reconciled    bool    `json:"reconciled"`
	Missing       bool    `json:"missing"`
	OrphanPayable bool    `json:"orphanPayable"`
	SenderCcy     string  `json:"senderCcy"`
	ReceiverCcy   string  `json:"receiverCcy"`
}

type RiskProfile struct {
	ID           string  `json:"id"`
	Entity       string  `json:"entity"`
	Score        int     `json:"score"`
	Churn        int     `json:"churn"`
	FXRisk       int     `json:"fxRisk"`
	ICComplexity int     `json:"icComplexity"`
	ICMismatches int     `json:"icMismatches"`
	TotalGap     float64 `json:"totalGap"`
}

type LogEntry struct {
	Time   time.Time `json:"time"`
	Action string    `json:"action"`
	Detail string    `json:"detail"`
	Type   string    `json:"type"`
}

type Summary struct {
	Entities        int     `json:"entities"`
	Transactions    int     `json:"transactions"`
	Issues          int     `json:"issues"`
	HighIssues      int     `json:"high_issues"`
	Pairs           int     `json:"pairs"`
	ReconciledPairs int     `json:"reconciled_pairs"`
	MissingPairs    int     `json:"missing_pairs"`
	OrphanPairs     int     `json:"orphan_pairs"`
	TotalGap        float64 `json:"total_gap"`
}

// AnalysisRequest carries already-parsed records.
type AnalysisRequest struct {
	Entities     []Entity         `json:"entities"`
	Transactions []TransactionRow `json:"transactions"`
}

type AnalysisReport struct {
	RunID       string        `json:"run_id"`
	GeneratedAt time.Time     `json:"generated_at"`
	Summary     Summary       `json:"summary"`
	Issues      []Issue       `json:"issues"`
	Pairs       []ICPair      `json:"pairs"`
	Risks       []RiskProfile `json:"risks"`
	Log         []LogEntry    `json:"log"`
}

type Error struct {
	Error string `json:"error"`
}
