package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the backend's saved requests",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		entries, err := client.History(cmd.Context())
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No saved requests yet.")
			return nil
		}

		fmt.Printf("%-16s  %-12s  %s\n", "Timestamp", "Type", "Text")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range entries {
			text := strings.Join(strings.Fields(e.OriginalText), " ")
			if r := []rune(text); len(r) > 48 {
				text = string(r[:47]) + "…"
			}
			fmt.Printf("%-16s  %-12s  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.ContentType,
				text)
		}
		return nil
	},
}
