package cmd

import (
	"fmt"

	"github.com/obeng/tutorhub/internal/notify"
	"github.com/obeng/tutorhub/internal/store"
	"github.com/obeng/tutorhub/internal/sweep"
	"github.com/spf13/cobra"
)

// sweepCmd runs every maintenance pass once and exits, for cron-style
// deployments that prefer not to keep the server's tickers running.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run completion, review-window and reminder sweeps once",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		dispatcher := notify.NewDispatcher(st.ProfileRepo(), &notify.LogTransport{}, st.NotificationLogRepo())
		runner := sweep.New(st.LessonRepo(), dispatcher, sweep.SystemClock())

		if err := runner.SweepCompletions(ctx); err != nil {
			return fmt.Errorf("completion sweep: %w", err)
		}
		if err := runner.SweepReviewWindows(ctx); err != nil {
			return fmt.Errorf("review-window sweep: %w", err)
		}
		if err := runner.SweepReminders(ctx); err != nil {
			return fmt.Errorf("reminder sweep: %w", err)
		}
		return nil
	},
}
