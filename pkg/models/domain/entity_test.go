package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Acme Holdings", "acme holdings"},
		{"  ACME   holdings\t", "acme holdings"},
		{"ÉCOLE Paris", "école paris"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
}

func TestEntity_IsOperating(t *testing.T) {
	assert.True(t, Entity{Type: "Operating"}.IsOperating())
	assert.True(t, Entity{Type: "operating"}.IsOperating())
	assert.False(t, Entity{Type: "OPERATING"}.IsOperating())
	assert.False(t, Entity{Type: "Regional"}.IsOperating())
}

func TestAnalysis_Summary(t *testing.T) {
	a := Analysis{
		Entities: []Entity{{ID: "A"}, {ID: "B"}},
		Issues: []Issue{
			{Severity: SeverityHigh},
			{Severity: SeverityLow},
		},
		Pairs: []ICPair{
			{Reconciled: true},
			{Missing: true, Gap: 100},
			{OrphanPayable: true, Gap: 50},
		},
	}

	s := a.Summary()
	assert.Equal(t, 2, s.Entities)
	assert.Equal(t, 2, s.Issues)
	assert.Equal(t, 1, s.HighIssues)
	assert.Equal(t, 3, s.Pairs)
	assert.Equal(t, 1, s.ReconciledPairs)
	assert.Equal(t, 1, s.MissingPairs)
	assert.Equal(t, 1, s.OrphanPairs)
	assert.Equal(t, 150.0, s.TotalGap)
}

func TestICPair_Status(t *testing.T) {
	tests := []struct {
		name string
		pair ICPair
		want string
	}{
		{name: "reconciled", pair: ICPair{Reconciled: true}, want: "RECONCILED"},
		{name: "missing", pair: ICPair{Missing: true, Gap: 10}, want: "MISSING_PAYABLE"},
		{name: "orphan", pair: ICPair{OrphanPayable: true, Gap: 10}, want: "ORPHAN_PAYABLE"},
		{name: "mismatch", pair: ICPair{Gap: 10}, want: "MISMATCH"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.pair.Status())
		})
	}
}
