package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartlearn/internal/store"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Inspect the local backend request log",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent backend requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		records, err := events.QueryRequests(context.Background(), store.QueryOpts{Limit: limit, Kind: kind})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-10s  %-6s  %-8s  %-8s  %s\n",
			"ID", "Timestamp", "Kind", "HTTP", "Ms", "Chars", "OK")
		fmt.Println(strings.Repeat("─", 72))

		for _, r := range records {
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-10s  %-6d  %-8d  %-8d  %s\n",
				r.ID,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Kind,
				r.HTTPStatus,
				r.LatencyMs,
				r.CharsIn,
				ok,
			)
		}
		return nil
	},
}

var activityStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated request counts and latency per operation",
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

		usage, err := events.RequestUsage(context.Background())
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(usage) == 0 {
			fmt.Println("No requests recorded yet.")
			return nil
		}

		fmt.Printf("%-12s  %6s  %9s  %8s\n", "Kind", "Calls", "Failures", "Avg Ms")
		fmt.Println(strings.Repeat("─", 42))

		var totalCalls, totalFailures int
		for _, u := range usage {
			fmt.Printf("%-12s  %6d  %9d  %8d\n", u.Kind, u.Calls, u.Failures, u.AvgLatencyMs)
			totalCalls += u.Calls
			totalFailures += u.Failures
		}

		fmt.Println(strings.Repeat("─", 42))
		fmt.Printf("%-12s  %6d  %9d\n", "TOTAL", totalCalls, totalFailures)
		return nil
	},
}

func init() {
	activityListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	activityListCmd.Flags().StringP("kind", "k", "", "Filter by kind (summarize, translate, quiz, history)")

	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityStatsCmd)
}
