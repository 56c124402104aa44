package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/entity-atlas/pkg/adapters"
	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/de-tools/entity-atlas/pkg/money"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected text or json)", s)
	}
}

type TableConfig struct {
	IDWidth     int
	NameWidth   int
	AmountWidth int
	StatusWidth int
	TextWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IDWidth:     10,
		NameWidth:   24,
		AmountWidth: 10,
		StatusWidth: 16,
		TextWidth:   48,
	}
}

// tables returns the column widths of each table the text report draws.
func (c TableConfig) tables() map[string][]int {
	return map[string][]int{
		"issues": {c.StatusWidth / 2, c.IDWidth, c.NameWidth, c.TextWidth},
		"pairs":  {c.IDWidth, c.IDWidth, c.AmountWidth, c.AmountWidth, c.AmountWidth, c.StatusWidth},
		"risks":  {c.IDWidth, c.NameWidth, 5, 10, 3, 10, 5, c.AmountWidth},
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type view struct {
	domain.Analysis
	Summary domain.Summary
}

const reportTemplate = `
Entity Atlas analysis {{.RunID}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}
Entities: {{.Summary.Entities}}  Transactions: {{.Summary.Transactions}}

=== Structural issues ({{.Summary.Issues}}, {{.Summary.HighIssues}} high) ===
{{if .Issues}}{{separator "issues"}}
{{row "issues" "Severity" "Entity" "Title" "Fix"}}
{{separator "issues"}}
{{range .Issues}}{{row "issues" (upper .Severity.String) .Entity .Title .Fix}}
{{end}}{{separator "issues"}}
{{else}}none
{{end}}
=== Intercompany pairs ({{.Summary.Pairs}}, {{.Summary.ReconciledPairs}} reconciled, total gap {{amount .Summary.TotalGap}}) ===
{{if .Pairs}}{{separator "pairs"}}
{{row "pairs" "From" "To" "Sent" "Received" "Gap" "Status"}}
{{separator "pairs"}}
{{range .Pairs}}{{row "pairs" .From .To (amount .SenderAmt) (amount .ReceiverAmt) (amount .Gap) .Status}}
{{end}}{{separator "pairs"}}
{{else}}none
{{end}}
=== Risk ranking ({{len .Risks}} operating entities) ===
{{if .Risks}}{{separator "risks"}}
{{row "risks" "ID" "Entity" "Score" "Mismatches" "FX" "Complexity" "Churn" "Gap"}}
{{separator "risks"}}
{{range .Risks}}{{row "risks" .ID .Entity .Score .ICMismatches .FXRisk .ICComplexity .Churn (amount .TotalGap)}}
{{end}}{{separator "risks"}}
{{else}}none
{{end}}`

func (c *Reporter) Handle(a domain.Analysis, format Format) error {
	if format == FormatJSON {
		return c.handleJSON(a)
	}
	return c.handleText(a)
}

func (c *Reporter) handleJSON(a domain.Analysis) error {
	encoder := json.NewEncoder(c.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(adapters.MapAnalysisDomainToApi(a)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func (c *Reporter) handleText(a domain.Analysis) error {
	tables := c.config.tables()

	funcMap := template.FuncMap{
		"amount": money.Abbreviate,
		"upper":  strings.ToUpper,
		"row": func(table string, cells ...any) string {
			widths := tables[table]
			var b strings.Builder
			b.WriteString("|")
			for i, w := range widths {
				var cell any = ""
				if i < len(cells) {
					cell = cells[i]
				}
				fmt.Fprintf(&b, " %-*s |", w, truncate(fmt.Sprint(cell), w))
			}
			return b.String()
		},
		"separator": func(table string) string {
			var b strings.Builder
			b.WriteString("+")
			for _, w := range tables[table] {
				b.WriteString(strings.Repeat("-", w+2))
				b.WriteString("+")
			}
			return b.String()
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view{Analysis: a, Summary: a.Summary()})
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
