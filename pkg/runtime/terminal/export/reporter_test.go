package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/de-tools/entity-atlas/pkg/models/api"
	"github.com/de-tools/entity-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAnalysis() domain.Analysis {
	return domain.Analysis{
		RunID:       "run-1",
		GeneratedAt: time.Date(2024, 12, 31, 9, 30, 0, 0, time.UTC),
		Entities: []domain.Entity{
			{ID: "DE", Name: "Germany GmbH", Type: "Operating", Currency: "EUR"},
			{ID: "US", Name: "US Inc", Type: "Operating", Currency: "USD"},
		},
		Pairs: []domain.ICPair{
			{ID: "DE-US", From: "DE", To: "US", SenderAmt: 1_000_000, ReceiverAmt: 1_000_000, Reconciled: true, SenderCcy: "EUR", ReceiverCcy: "USD"},
		},
		Risks: []domain.RiskProfile{
			{ID: "DE", Entity: "Germany GmbH", Score: 13, FXRisk: 1, ICComplexity: 1},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatText},
		{in: "text", want: FormatText},
		{in: " JSON ", want: FormatJSON},
		{in: "xml", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReporter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleAnalysis(), FormatText))

	out := buf.String()
	assert.Contains(t, out, "Entity Atlas analysis run-1")
	assert.Contains(t, out, "Generated: 2024-12-31 09:30:00")
	assert.Contains(t, out, "=== Structural issues (0, 0 high) ===\nnone")
	assert.Contains(t, out, "=== Intercompany pairs (1, 1 reconciled, total gap $0) ===")
	assert.Contains(t, out, "| DE         | US         | $1.00M     | $1.00M     | $0         | RECONCILED       |")
	assert.Contains(t, out, "=== Risk ranking (1 operating entities) ===")
	assert.Contains(t, out, "| DE         | Germany GmbH             | 13    |")
}

func TestReporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(sampleAnalysis(), FormatJSON))

	var report api.AnalysisReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "run-1", report.RunID)
	require.Len(t, report.Pairs, 1)
	assert.True(t, report.Pairs[0].Reconciled)
	assert.Empty(t, report.Issues)
	assert.NotNil(t, report.Issues)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
