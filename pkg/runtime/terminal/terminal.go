package terminal

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/de-tools/entity-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/entity-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/entity-atlas/pkg/services/analysis"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	runner   analysis.Runner
	reporter *export.Reporter
	output   io.Writer
	debounce time.Duration
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Runner   analysis.Runner
	Output   io.Writer
	Debounce time.Duration
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Runner == nil {
		opts.Runner = analysis.NewEngine()
	}

	cli := &CLI{
		runner:   opts.Runner,
		reporter: export.NewReporter(opts.Output),
		output:   opts.Output,
		debounce: opts.Debounce,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args for the next Execute.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "atlas",
		Short:         "Legal-entity hierarchy and intercompany analysis tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(cli.output)
	cmd.AddCommand(commands.NewAnalyzeCmd(cli.runner, cli.reporter))
	cmd.AddCommand(commands.NewBriefCmd(cli.runner, cli.output))
	cmd.AddCommand(commands.NewWatchCmd(cli.runner, cli.reporter, cli.debounce))

	return cmd
}
