package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"accesstrack/internal/adapters/watcher"
	"accesstrack/internal/ctxlog"
)

var debounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Mark units accessed as files under the base directory change",
	Long: `Watch the base directory recursively and mark the unit of every created
or written file as accessed. Runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		t := GetTracker()
		w, err := watcher.New(t, watcher.Config{Root: t.BaseDir(), Debounce: debounce})
		if err != nil {
			return err
		}

		ctxlog.FromContext(ctx).Info("watching", "base", t.BaseDir(), "depth", t.Depth())
		return w.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "quiet period before a batch is flushed")
	rootCmd.AddCommand(watchCmd)
}
