package auditlog

import (
	"fmt"
	"time"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/de-tools/entity-atlas/pkg/money"
)

// Build narrates a run: a hierarchy summary, then one entry per issue, then one per
// pair. Every entry carries the same capture time.
func Build(at time.Time, entities []domain.Entity, pairs []domain.ICPair, issues []domain.Issue) []domain.LogEntry {
	entries := make([]domain.LogEntry, 0, 1+len(issues)+len(pairs))

	entries = append(entries, domain.LogEntry{
		Time:   at,
		Action: "Hierarchy scan completed",
		Detail: fmt.Sprintf("%d entities", len(entities)),
		Type:   domain.LogLevelInfo,
	})

	for _, issue := range issues {
		level := domain.LogLevelWarn
		if issue.Severity == domain.SeverityHigh {
			level = domain.LogLevelError
		}
		entries = append(entries, domain.LogEntry{
			Time:   at,
			Action: issue.Title,
			Detail: issue.Entity,
			Type:   level,
		})
	}

	for _, p := range pairs {
		entries = append(entries, pairEntry(at, p))
	}

	return entries
}

func pairEntry(at time.Time, p domain.ICPair) domain.LogEntry {
	action := fmt.Sprintf("IC match %s → %s", p.From, p.To)
	if p.Reconciled {
		return domain.LogEntry{Time: at, Action: action, Detail: "Reconciled", Type: domain.LogLevelInfo}
	}

	detail := fmt.Sprintf("Gap %s", money.Abbreviate(p.Gap))
	if p.Missing {
		detail += " (payable missing)"
	}
	return domain.LogEntry{Time: at, Action: action, Detail: detail, Type: domain.LogLevelError}
}
