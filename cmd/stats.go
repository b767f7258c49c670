package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartlearn/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz performance over time",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		results, err := events.QueryQuizResults(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query quiz results: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		fmt.Printf("%-19s  %9s  %7s  %8s\n", "Timestamp", "Questions", "Correct", "Score")
		fmt.Println(strings.Repeat("─", 50))

		var totalQuestions, totalCorrect int
		for _, r := range results {
			pct := 0
			if r.QuestionCount > 0 {
				pct = r.CorrectCount * 100 / r.QuestionCount
			}
			fmt.Printf("%-19s  %9d  %7d  %7d%%\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.QuestionCount,
				r.CorrectCount,
				pct)
			totalQuestions += r.QuestionCount
			totalCorrect += r.CorrectCount
		}

		fmt.Println(strings.Repeat("─", 50))
		overall := 0
		if totalQuestions > 0 {
			overall = totalCorrect * 100 / totalQuestions
		}
		fmt.Printf("%-19s  %9d  %7d  %7d%%\n", "TOTAL", totalQuestions, totalCorrect, overall)
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of quizzes to include")
}
