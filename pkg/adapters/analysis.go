package adapters

import (
	"strings"

	"github.com/de-tools/entity-atlas/pkg/ingest"
	"github.com/de-tools/entity-atlas/pkg/models/api"
	"github.com/de-tools/entity-atlas/pkg/models/domain"
)

func MapSeverityDomainToApi(s domain.Severity) api.Severity {
	switch s {
	case domain.SeverityLow:
		return api.SeverityLow
	case domain.SeverityMedium:
		return api.SeverityMedium
	case domain.SeverityHigh:
		return api.SeverityHigh
	default:
		return api.SeverityLow
	}
}

func MapIssueDomainToApi(i domain.Issue) api.Issue {
	return api.Issue{
		ID:       i.ID,
		Type:     string(i.Type),
		Severity: MapSeverityDomainToApi(i.Severity),
		Entity:   i.Entity,
		Title:    i.Title,
		Desc:     i.Description,
		Fix:      i.Fix,
	}
}

func MapICPairDomainToApi(p domain.ICPair) api.ICPair {
	return api.ICPair{
		ID:            p.ID,
		From:          p.From,
		To:            p.To,
		Type:          p.Type,
		SenderAmt:     p.SenderAmt,
		ReceiverAmt:   p.ReceiverAmt,
		Gap:           p.Gap,
		Reconciled:    p.Reconciled,
		Missing:       p.Missing,
		OrphanPayable: p.OrphanPayable,
		SenderCcy:     p.SenderCcy,
		ReceiverCcy:   p.ReceiverCcy,
	}
}

func MapRiskProfileDomainToApi(r domain.RiskProfile) api.RiskProfile {
	return api.RiskProfile{
		ID:           r.ID,
		Entity:       r.Entity,
		Score:        r.Score,
		Churn:        r.Churn,
		FXRisk:       r.FXRisk,
		ICComplexity: r.ICComplexity,
		ICMismatches: r.ICMismatches,
		TotalGap:     r.TotalGap,
	}
}

func MapLogEntryDomainToApi(e domain.LogEntry) api.LogEntry {
	return api.LogEntry{
		Time:   e.Time,
		Action: e.Action,
		Detail: e.Detail,
		Type:   string(e.Type),
	}
}

func MapSummaryDomainToApi(s domain.Summary) api.Summary {
	return api.Summary{
		Entities:        s.Entities,
		Transactions:    s.Transactions,
		Issues:          s.Issues,
		HighIssues:      s.HighIssues,
		Pairs:           s.Pairs,
		ReconciledPairs: s.ReconciledPairs,
		MissingPairs:    s.MissingPairs,
		OrphanPairs:     s.OrphanPairs,
		TotalGap:        s.TotalGap,
	}
}

func MapAnalysisDomainToApi(a domain.Analysis) api.AnalysisReport {
	res := api.AnalysisReport{
		RunID:       a.RunID,
		GeneratedAt: a.GeneratedAt,
		Summary:     MapSummaryDomainToApi(a.Summary()),
		Issues:      make([]api.Issue, 0, len(a.Issues)),
		Pairs:       make([]api.ICPair, 0, len(a.Pairs)),
		Risks:       make([]api.RiskProfile, 0, len(a.Risks)),
		Log:         make([]api.LogEntry, 0, len(a.Log)),
	}
	for _, i := range a.Issues {
		res.Issues = append(res.Issues, MapIssueDomainToApi(i))
	}
	for _, p := range a.Pairs {
		res.Pairs = append(res.Pairs, MapICPairDomainToApi(p))
	}
	for _, r := range a.Risks {
		res.Risks = append(res.Risks, MapRiskProfileDomainToApi(r))
	}
	for _, e := range a.Log {
		res.Log = append(res.Log, MapLogEntryDomainToApi(e))
	}
	return res
}

// MapEntityApiToDomain applies the same defaults as file ingestion: type Operating,
// currency USD, trimmed fields, null or blank parent for a root.
func MapEntityApiToDomain(e api.Entity) domain.Entity {
	parent := ""
	if e.Parent != nil {
		parent = strings.TrimSpace(*e.Parent)
	}
	return domain.Entity{
		ID:       strings.TrimSpace(e.ID),
		Name:     strings.TrimSpace(e.Name),
		Parent:   parent,
		Type:     orDefault(strings.TrimSpace(e.Type), domain.EntityTypeOperating),
		Region:   strings.TrimSpace(e.Region),
		Currency: orDefault(strings.ToUpper(strings.TrimSpace(e.Currency)), domain.DefaultCurrency),
	}
}

func MapTransactionApiToDomain(r api.TransactionRow) domain.TransactionRow {
	return domain.TransactionRow{
		Entity:       strings.TrimSpace(r.Entity),
		Counterparty: strings.TrimSpace(r.Counterparty),
		Description:  strings.TrimSpace(r.Description),
		Type:         ingest.NormalizeTransactionType(strings.TrimSpace(r.Type)),
		Amount:       float64(r.Amount),
		Currency:     orDefault(strings.ToUpper(strings.TrimSpace(r.Currency)), domain.DefaultCurrency),
	}
}

func MapEntityDomainToApi(e domain.Entity) api.Entity {
	res := api.Entity{
		ID:       e.ID,
		Name:     e.Name,
		Type:     e.Type,
		Region:   e.Region,
		Currency: e.Currency,
	}
	if !e.IsRoot() {
		parent := e.Parent
		res.Parent = &parent
	}
	return res
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
