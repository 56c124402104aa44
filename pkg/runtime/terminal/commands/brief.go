package commands

import (
	"io"

	"github.com/de-tools/entity-atlas/pkg/services/analysis"
	"github.com/de-tools/entity-atlas/pkg/services/brief"
	"github.com/spf13/cobra"
)

func NewBriefCmd(runner analysis.Runner, out io.Writer) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "brief",
		Short: "Print a plain-text context brief of the analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in, err := input.load()
			if err != nil {
				return err
			}

			return brief.Render(out, runner.Run(cmd.Context(), in))
		},
	}

	input.bind(cmd)

	return cmd
}
