package hierarchy

import (
	"fmt"
	"strings"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
)

// nameGroup collects the ids sharing one normalized name, in encounter order.
type nameGroup struct {
	name string // first display name seen
	ids  []string
}

// Validate checks the entity tree for duplicate names, dangling parent references and
// entities attached to a Regional parent of another region.
//
// Duplicate-name issues come first in group discovery order, followed by parent issues
// in input order.
func Validate(entities []domain.Entity) []domain.Issue {
	issues := []domain.Issue{}
	issues = append(issues, duplicateNameIssues(entities)...)
	issues = append(issues, parentIssues(entities)...)
	return issues
}

// duplicateNameIssues emits one redundant_rollup issue per group of 2+ entities sharing
// a normalized name. The first id of a group is canonical, the second is flagged.
func duplicateNameIssues(entities []domain.Entity) []domain.Issue {
	var order []string
	groups := make(map[string]*nameGroup)

	for _, e := range entities {
		key := domain.NormalizeName(e.Name)
		g, ok := groups[key]
		if !ok {
			g = &nameGroup{name: e.Name}
			groups[key] = g
			order = append(order, key)
		}
		g.ids = append(g.ids, e.ID)
	}

	var issues []domain.Issue
	for _, key := range order {
		g := groups[key]
		if len(g.ids) < 2 {
			continue
		}
		issues = append(issues, domain.Issue{
			ID:       fmt.Sprintf("dup-%s", strings.Join(g.ids, "-")),
			Type:     domain.IssueRedundantRollup,
			Severity: domain.SeverityHigh,
			Entity:   g.ids[1],
			Title:    fmt.Sprintf("Duplicate entity: %s", g.name),
			Description: fmt.Sprintf("%q appears %d times in the hierarchy (%s). Balances may roll up twice into consolidation.",
				g.name, len(g.ids), strings.Join(g.ids, ", ")),
			Fix: fmt.Sprintf("Merge the duplicates into %s and remap their children and ledgers.", g.ids[0]),
		})
	}

	return issues
}

// parentIssues resolves each declared parent. An unresolved parent yields invalid_parent
// and skips the region check for that entity.
func parentIssues(entities []domain.Entity) []domain.Issue {
	byID := make(map[string]domain.Entity, len(entities))
	for _, e := range entities {
		if _, exists := byID[e.ID]; !exists {
			byID[e.ID] = e
		}
	}

	var issues []domain.Issue
	for _, e := range entities {
		if e.IsRoot() {
			continue
		}

		parent, ok := byID[e.Parent]
		if !ok {
			issues = append(issues, domain.Issue{
				ID:          fmt.Sprintf("inv-%s", e.ID),
				Type:        domain.IssueInvalidParent,
				Severity:    domain.SeverityHigh,
				Entity:      e.ID,
				Title:       fmt.Sprintf("Invalid parent: %s", e.ID),
				Description: fmt.Sprintf("%s (%s) references parent %q, which does not exist in the hierarchy.", e.Name, e.ID, e.Parent),
				Fix:         "Correct the parent id or add the missing parent entity.",
			})
			continue
		}

		if regionMismatch(e, parent) {
			issues = append(issues, domain.Issue{
				ID:       fmt.Sprintf("reg-%s", e.ID),
				Type:     domain.IssueWrongParent,
				Severity: domain.SeverityHigh,
				Entity:   e.ID,
				Title:    fmt.Sprintf("Region mismatch: %s", e.ID),
				Description: fmt.Sprintf("%s is in region %s but rolls up to %s, a Regional entity for %s.",
					e.ID, e.Region, parent.ID, parent.Region),
				Fix: fmt.Sprintf("Re-parent %s under the Regional entity for %s.", e.ID, e.Region),
			})
		}
	}

	return issues
}

// regionMismatch only applies to declared Regional parents with a concrete, non-Global region.
func regionMismatch(child, parent domain.Entity) bool {
	if child.Region == "" || parent.Region == "" {
		return false
	}
	if parent.Region == domain.GlobalRegion || !parent.IsRegional() {
		return false
	}
	return child.Region != parent.Region
}
