package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/de-tools/entity-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/entity-atlas/pkg/services/analysis"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const DefaultDebounce = 300 * time.Millisecond

func NewWatchCmd(runner analysis.Runner, reporter *export.Reporter, debounce time.Duration) *cobra.Command {
	var (
		input  inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run the analysis whenever the hierarchy or ledger file changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := export.ParseFormat(output)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			run := func() {
				in, err := input.load()
				if err != nil {
					zerolog.Ctx(ctx).Error().Err(err).Msg("skipping analysis")
					fmt.Fprintf(cmd.ErrOrStderr(), "ERROR: %v\n", err)
					return
				}
				if err := reporter.Handle(runner.Run(ctx, in), format); err != nil {
					zerolog.Ctx(ctx).Error().Err(err).Msg("failed to write report")
				}
			}

			run()
			return WatchFiles(ctx, []string{input.hierarchy, input.transactions}, debounce, run)
		},
	}

	input.bind(cmd)
	cmd.Flags().StringVar(&output, "format", string(export.FormatText), "Output format (text or json)")

	return cmd
}

// WatchFiles calls onChange once per burst of filesystem events touching any of the
// paths, after debounce of quiet. It returns when ctx is done. The parent
// directories are watched so editors that replace files atomically are still seen.
func WatchFiles(ctx context.Context, paths []string, debounce time.Duration, onChange func()) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]struct{}, len(paths))
	dirs := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", p, err)
		}
		targets[abs] = struct{}{}

		dir := filepath.Dir(abs)
		if _, seen := dirs[dir]; seen {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %q: %w", dir, err)
		}
		dirs[dir] = struct{}{}
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Strs("paths", paths).Dur("debounce", debounce).Msg("watching for changes")

	// A slow run must not overlap the next one.
	var mu sync.Mutex
	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		onChange()
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			if _, watched := targets[filepath.Clean(ev.Name)]; !watched {
				continue
			}
			logger.Debug().Str("file", ev.Name).Str("op", ev.Op.String()).Msg("change detected")
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("watch error")
		}
	}
}
