package brief

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/de-tools/entity-atlas/pkg/money"
)

const briefTemplate = `GROUP STRUCTURE ({{len .Entities}} entities)
{{range .Entities}}- {{.ID}} "{{.Name}}" type={{.Type}} region={{or .Region "n/a"}} ccy={{.Currency}} parent={{or .Parent "(root)"}}
{{end}}
STRUCTURAL ISSUES ({{len .Issues}})
{{range .Issues}}- [{{upper .Severity.String}}] {{.Title}} (entity {{.Entity}}): {{.Description}} Fix: {{.Fix}}
{{else}}- none
{{end}}
INTERCOMPANY PAIRS ({{len .Pairs}}, {{.Summary.ReconciledPairs}} reconciled, total gap {{amount .Summary.TotalGap}})
{{range .Pairs}}- {{.From}} -> {{.To}}{{if .Type}} [{{.Type}}]{{end}}: sent {{amount .SenderAmt}} {{.SenderCcy}}, received {{amount .ReceiverAmt}} {{.ReceiverCcy}}, gap {{amount .Gap}}, status {{status .}}
{{else}}- none
{{end}}
RISK RANKING ({{len .Risks}} operating entities)
{{range $i, $r := .Risks}}{{inc $i}}. {{$r.ID}} "{{$r.Entity}}" score={{$r.Score}} mismatches={{$r.ICMismatches}} fx={{$r.FXRisk}} complexity={{$r.ICComplexity}} churn={{$r.Churn}} gap={{amount $r.TotalGap}}
{{else}}- none
{{end}}`

var tmpl = template.Must(template.New("brief").Funcs(template.FuncMap{
	"amount": money.Abbreviate,
	"upper":  strings.ToUpper,
	"status": domain.ICPair.Status,
	"inc":    func(i int) int { return i + 1 },
}).Parse(briefTemplate))

type view struct {
	domain.Analysis
	Summary domain.Summary
}

// Render writes a plain-text brief of the analysis for a conversational agent. The
// output depends only on the analysis, so identical runs yield identical briefs.
func Render(w io.Writer, a domain.Analysis) error {
	if err := tmpl.Execute(w, view{Analysis: a, Summary: a.Summary()}); err != nil {
		return fmt.Errorf("failed to render brief: %w", err)
	}
	return nil
}

func String(a domain.Analysis) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, a); err != nil {
		return "", err
	}
	return buf.String(), nil
}
