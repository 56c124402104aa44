package ingest

import (
	"fmt"
	"strings"
)

// column describes one logical field and the header spellings accepted for it.
// Aliases are written in normalized form (see normalizeHeader).
type column struct {
	name     string
	aliases  []string
	required bool
}

const (
	colID           = "id"
	colName         = "name"
	colParent       = "parent"
	colType         = "type"
	colRegion       = "region"
	colCurrency     = "currency"
	colEntity       = "entity"
	colCounterparty = "counterparty"
	colDescription  = "description"
	colAmount       = "amount"
)

var hierarchyColumns = []column{
	{name: colID, aliases: []string{"id", "entityid", "entitycode", "code"}, required: true},
	{name: colName, aliases: []string{"name", "entityname", "legalname", "legalentity"}, required: true},
	{name: colParent, aliases: []string{"parent", "parentid", "parententity", "parententityid", "parentcode"}},
	{name: colType, aliases: []string{"type", "entitytype", "level"}},
	{name: colRegion, aliases: []string{"region", "geography", "geo"}},
	{name: colCurrency, aliases: []string{"currency", "ccy", "functionalcurrency", "currencycode"}},
}

var transactionColumns = []column{
	{name: colEntity, aliases: []string{"entity", "entityid", "entitycode", "company", "companycode"}, required: true},
	{name: colCounterparty, aliases: []string{"counterparty", "counterpartyid", "counterpartyentity", "icpartner", "partner", "tradingpartner"}},
	{name: colDescription, aliases: []string{"description", "desc", "memo", "accountname"}},
	{name: colType, aliases: []string{"type", "transactiontype", "accounttype", "category"}},
	{name: colAmount, aliases: []string{"amount", "balance", "value", "amountusd"}, required: true},
	{name: colCurrency, aliases: []string{"currency", "ccy", "currencycode"}},
}

// normalizeHeader makes "EntityID", "Entity Id" and "entity_id" compare equal.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)
}

// headerIndex maps each known column to its position in the header row. When two
// headers alias the same column the first one wins.
type headerIndex map[string]int

func indexHeader(header []string, columns []column) (headerIndex, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		key := normalizeHeader(h)
		if _, exists := positions[key]; !exists {
			positions[key] = i
		}
	}

	idx := headerIndex{}
	for _, c := range columns {
		best := -1
		for _, alias := range c.aliases {
			if pos, ok := positions[alias]; ok && (best == -1 || pos < best) {
				best = pos
			}
		}
		if best >= 0 {
			idx[c.name] = best
			continue
		}
		if c.required {
			return nil, fmt.Errorf("%w: %q (accepted headers: %s)", ErrMissingColumn, c.name, strings.Join(c.aliases, ", "))
		}
	}

	return idx, nil
}

// get returns the trimmed cell for a column, or "" when the column or cell is absent.
func (h headerIndex) get(row []string, name string) string {
	pos, ok := h[name]
	if !ok || pos >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[pos])
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
