package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"2400000", 2_400_000},
		{"$2,400,000", 2_400_000},
		{" $1,250.50 ", 1250.50},
		{"-$300", -300},
		{"$-300", -300},
		{"(1,000.25)", -1000.25},
		{"£2,400,000", 2_400_000},
		{"€ 1,250.50", 1250.50},
		{"(¥300)", -300},
		{"", 0},
		{"n/a", 0},
		{"12abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseAmount(tt.in), 1e-9)
		})
	}
}
