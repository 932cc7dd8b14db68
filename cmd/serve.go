package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/obeng/tutorhub/internal/notify"
	"github.com/obeng/tutorhub/internal/server"
	"github.com/obeng/tutorhub/internal/store"
	"github.com/obeng/tutorhub/internal/sweep"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and background sweeps",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func init() {
	iv := sweep.DefaultIntervals()
	serveCmd.Flags().String("addr", ":8080", "HTTP listen address")
	serveCmd.Flags().Duration("completion-sweep", iv.Completion, "How often to sweep elapsed lessons into review")
	serveCmd.Flags().Duration("review-sweep", iv.Review, "How often to close expired review windows")
	serveCmd.Flags().Duration("reminder-sweep", iv.Reminder, "How often to look for upcoming lessons to remind about")
}

// runServe opens the store, wires the dispatcher, sweeps, and HTTP
// server, and blocks serving until the listener fails or the process
// is killed.
func runServe(cmd *cobra.Command) error {
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

	lessons := st.LessonRepo()
	profiles := st.ProfileRepo()
	dispatcher := notify.NewDispatcher(profiles, &notify.LogTransport{}, st.NotificationLogRepo())

	// When launched through the bare root command the serve-specific
	// flags are absent; fall back to defaults.
	iv := sweep.DefaultIntervals()
	addr := ":8080"
	if cmd.Flags().Lookup("addr") != nil {
		addr, _ = cmd.Flags().GetString("addr")
		iv.Completion, _ = cmd.Flags().GetDuration("completion-sweep")
		iv.Review, _ = cmd.Flags().GetDuration("review-sweep")
		iv.Reminder, _ = cmd.Flags().GetDuration("reminder-sweep")
	}

	runner := sweep.New(lessons, dispatcher, sweep.SystemClock())
	go runner.Run(ctx, iv)

	srv := server.New(lessons, profiles, dispatcher, sweep.SystemClock())
	log.Printf("listening on %s (db %s)", addr, dbPath)
	return http.ListenAndServe(addr, srv)
}
