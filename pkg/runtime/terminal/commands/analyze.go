package commands

import (
	"github.com/de-tools/entity-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/entity-atlas/pkg/services/analysis"
	"github.com/spf13/cobra"
)

func NewAnalyzeCmd(runner analysis.Runner, reporter *export.Reporter) *cobra.Command {
	var (
		input  inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Validate the hierarchy, reconcile intercompany balances and rank entity risk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(output)
			if err != nil {
				return err
			}

			in, err := input.load()
			if err != nil {
				return err
			}

			return reporter.Handle(runner.Run(cmd.Context(), in), format)
		},
	}

	input.bind(cmd)
	cmd.Flags().StringVar(&output, "format", string(export.FormatText), "Output format (text or json)")

	return cmd
}
