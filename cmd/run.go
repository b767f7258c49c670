package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/app"
	"github.com/abhisek/smartlearn/internal/store"
)

// runApp opens the store, builds the API client, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	events, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	client, err := buildClient(cmd, events)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Client: client,
		Events: events,
	})
}

// openStore opens the local activity database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildClient constructs the backend client from env config with the
// --api flag as the highest-priority override. When an event repo is
// given, every call is recorded in the activity log.
func buildClient(cmd *cobra.Command, events store.EventRepo) (api.Client, error) {
	cfg := api.ConfigFromEnv()
	if base, _ := cmd.Flags().GetString("api"); base != "" {
		cfg.BaseURL = base
	}

	client, err := api.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("configure API client: %w", err)
	}
	if events == nil {
		return client, nil
	}
	return api.WithLogging(client, events), nil
}

// readInputText collects text for a one-shot command: the joined args
// when given, otherwise stdin.
func readInputText(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("no input text: pass it as an argument or pipe it on stdin")
	}
	return text, nil
}
