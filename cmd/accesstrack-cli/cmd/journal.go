package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"accesstrack/internal/application/commands"
)

var lastCmd = &cobra.Command{
	Use:   "last <unit>",
	Short: "Show when a unit was last marked accessed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := GetJournal()
		if err != nil {
			return err
		}

		result, err := commands.NewLastAccessedCommand(GetTracker(), j, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", result.LastAccess.Format(time.RFC3339), result.Unit)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journaled units, least recently accessed first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := GetJournal()
		if err != nil {
			return err
		}

		records, err := j.List(cmd.Context())
		if err != nil {
			return err
		}
		for _, r := range records {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", r.LastAccess.Format(time.RFC3339), r.Path)
		}
		return nil
	},
}

var forgetCmd = &cobra.Command{
	Use:   "forget <unit>",
	Short: "Remove a unit from the journal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := GetJournal()
		if err != nil {
			return err
		}

		result, err := commands.NewForgetCommand(GetTracker(), j, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(forgetCmd)
}
