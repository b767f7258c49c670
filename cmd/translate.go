package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/smartlearn/internal/api"
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate study text without the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInputText(args)
		if err != nil {
			return err
		}

		code, _ := cmd.Flags().GetString("to")
		target, ok := api.LookupTarget(code)
		if !ok {
			codes := make([]string, len(api.Targets))
			for i, l := range api.Targets {
				codes[i] = l.Code
			}
			return fmt.Errorf("unsupported target language %q (choose from: %s)", code, strings.Join(codes, ", "))
		}

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

		resp, err := client.Translate(cmd.Context(), api.TranslateRequest{
			Text:       text,
			SourceLang: api.SourceLang,
			TargetLang: target.Code,
		})
		if err != nil {
			return err
		}

		fmt.Println(resp.TranslatedText)
		return nil
	},
}

func init() {
	translateCmd.Flags().String("to", "es", "Target language code (es, fr, de, it, pt, nl, ru, zh)")
}
