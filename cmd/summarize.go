package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartlearn/internal/api"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text]",
	Short: "Summarize study text without the TUI",
	Long:  "Summarize text passed as an argument or piped on stdin, printing the summary to stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInputText(args)
		if err != nil {
			return err
		}

		maxLen, _ := cmd.Flags().GetInt("max-length")
		minLen, _ := cmd.Flags().GetInt("min-length")

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

		resp, err := client.Summarize(cmd.Context(), api.SummarizeRequest{
			Text:      text,
			MaxLength: maxLen,
			MinLength: minLen,
		})
		if err != nil {
			return err
		}

		fmt.Println(resp.Summary)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().Int("max-length", api.DefaultMaxLength, "Upper bound on summary length")
	summarizeCmd.Flags().Int("min-length", api.DefaultMinLength, "Lower bound on summary length")
}
