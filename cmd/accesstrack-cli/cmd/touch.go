package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"accesstrack/internal/application/commands"
)

var touchCmd = &cobra.Command{
	Use:   "touch <file>...",
	Short: "Mark files as accessed now",
	Long: `Mark files as accessed by touching their unit below the base directory.

Files outside the base directory, or not deep enough to belong to a unit,
are ignored.

Examples:
  accesstrack touch ~/.cache/accesstrack/org.example/lib/1.2.0/lib.jar
  accesstrack -d 3 touch /srv/cache/a/b/c/file /srv/cache/a/b/c/other`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		markCmd := commands.NewMarkAccessedCommand(GetTracker(), args)
		result, err := markCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var unitsCmd = &cobra.Command{
	Use:   "units <file>...",
	Short: "Print the units files belong to without touching them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		units, err := commands.NewResolveUnitsCommand(GetTracker(), args).Execute(cmd.Context())
		if err != nil {
			return err
		}

		for _, u := range units {
			fmt.Fprintln(cmd.OutOrStdout(), u)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(touchCmd)
	rootCmd.AddCommand(unitsCmd)
}
