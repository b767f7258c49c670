package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartlearn/internal/api"
	"github.com/abhisek/smartlearn/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [text]",
	Short: "Generate a quiz without the TUI",
	Long:  "Generate multiple-choice questions from text and print them with answers, for studying on paper.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInputText(args)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")

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

		resp, err := client.GenerateQuiz(cmd.Context(), api.QuizRequest{
			Text:         text,
			NumQuestions: count,
		})
		if err != nil {
			return err
		}

		showAnswers, _ := cmd.Flags().GetBool("answers")
		for i, q := range resp.Questions {
			fmt.Printf("%d. %s\n", i+1, q.Prompt)
			for j := range q.Options {
				fmt.Printf("   %s) %s\n", quiz.LabelAt(j), q.OptionText(j))
			}
			if showAnswers {
				fmt.Printf("   Answer: %s", q.CorrectAnswer)
				if q.Explanation != "" {
					fmt.Printf(" — %s", q.Explanation)
				}
				fmt.Println()
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().IntP("count", "n", api.DefaultQuestions, "Number of questions (1-10)")
	quizCmd.Flags().Bool("answers", false, "Print the answer key")
}
