package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"accesstrack/internal/adapters/filesystem"
	"accesstrack/internal/adapters/sqlite"
	"accesstrack/internal/application"
	"accesstrack/internal/config"
	"accesstrack/internal/ctxlog"
	"accesstrack/internal/ports"
)

var (
	baseDir       string
	depth         int
	journalPath   string
	noJournal     bool
	noMtime       bool
	ignoreMissing bool
	verbose       bool

	tracker *application.SingleDepthTracker
	journal *sqlite.Journal
)

var rootCmd = &cobra.Command{
	Use:   "accesstrack",
	Short: "Track cache usage by touching units at a fixed depth",
	Long: `accesstrack records that files in a cache directory were used by
touching the directory that contains them at a fixed depth below the
base directory, rather than the files themselves.

An eviction sweep that looks at timestamps one level of units at a time
then sees a whole unit as fresh as long as any file inside it was used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

		return setup()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return teardown()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&baseDir, "base", "b", config.BaseDir(), "base directory of the cache")
	rootCmd.PersistentFlags().IntVarP(&depth, "depth", "d", config.Depth(), "number of path components below the base that form a unit")
	rootCmd.PersistentFlags().StringVar(&journalPath, "journal", config.JournalPath(), "path of the access journal database (default: per base directory)")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "do not record access times in the journal")
	rootCmd.PersistentFlags().BoolVar(&noMtime, "no-mtime", false, "do not touch the unit on disk")
	rootCmd.PersistentFlags().BoolVar(&ignoreMissing, "ignore-missing", false, "skip units that no longer exist on disk")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func setup() error {
	if err := teardown(); err != nil {
		return err
	}

	base, err := config.ExpandHome(baseDir)
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	var writers []ports.TimestampWriter
	if !noMtime {
		var opts []filesystem.WriterOption
		if ignoreMissing {
			opts = append(opts, filesystem.IgnoreMissing())
		}
		writers = append(writers, filesystem.NewTimestampWriter(opts...))
	}
	if !noJournal {
		journal = sqlite.NewJournal()
		if err := journal.Open(base, journalPath); err != nil {
			journal = nil
			return err
		}
		writers = append(writers, journal)
	}
	if len(writers) == 0 {
		return errors.New("nothing to write: --no-mtime and --no-journal are both set")
	}

	tracker, err = application.NewSingleDepthTracker(application.MultiWriter(writers...), base, depth)
	if err != nil {
		teardown()
		return err
	}
	return nil
}

func teardown() error {
	if journal == nil {
		return nil
	}
	err := journal.Close()
	journal = nil
	return err
}

// GetTracker returns the initialized tracker
func GetTracker() *application.SingleDepthTracker {
	return tracker
}

// GetJournal returns the open journal, or an error if it is disabled
func GetJournal() (ports.AccessJournal, error) {
	if journal == nil {
		return nil, errors.New("journal is disabled")
	}
	return journal, nil
}
