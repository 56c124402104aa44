package commands

import (
	"fmt"

	"github.com/de-tools/entity-atlas/pkg/ingest"
	"github.com/de-tools/entity-atlas/pkg/services/analysis"
	"github.com/spf13/cobra"
)

// inputFlags holds the two file paths every command reads.
type inputFlags struct {
	hierarchy    string
	transactions string
}

func (f *inputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.hierarchy, "hierarchy", "", "Path to the entity hierarchy file (csv, tsv or xlsx)")
	cmd.Flags().StringVar(&f.transactions, "transactions", "", "Path to the intercompany ledger file (csv, tsv or xlsx)")
	_ = cmd.MarkFlagRequired("hierarchy")
	_ = cmd.MarkFlagRequired("transactions")
}

func (f *inputFlags) load() (analysis.Input, error) {
	entities, err := ingest.LoadHierarchy(f.hierarchy)
	if err != nil {
		return analysis.Input{}, fmt.Errorf("failed to load hierarchy: %w", err)
	}

	rows, err := ingest.LoadTransactions(f.transactions)
	if err != nil {
		return analysis.Input{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	return analysis.Input{Entities: entities, Transactions: rows}, nil
}
