package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// resetCmd deletes the database file. Destructive, so it requires the
// explicit --yes flag.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all lesson and profile data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete data without --yes")
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		if err := os.Remove(dbPath); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No database found at", dbPath)
				return nil
			}
			return fmt.Errorf("remove %s: %w", dbPath, err)
		}
		fmt.Println("Deleted", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
