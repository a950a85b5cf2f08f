package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"portfolio-assistant/service"
	"portfolio-assistant/utils"

	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var (
		showRule bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question and print the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine(conf)
			if err != nil {
				return err
			}
			return runAsk(cmd.OutOrStdout(), engine, strings.Join(args, " "), showRule, asJSON)
		},
	}
	cmd.Flags().BoolVar(&showRule, "rule", false, "print the matched rule id")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw reply as JSON")
	return cmd
}

func runAsk(out io.Writer, engine *service.Engine, question string, showRule, asJSON bool) error {
	reply := engine.Respond(question)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"rule":     reply.RuleID,
			"fallback": reply.Fallback,
			"reply":    reply.Text,
		})
	}

	if showRule {
		fmt.Fprintf(out, "rule: %s\n", reply.RuleID)
	}
	fmt.Fprintln(out, utils.PlainText(reply.Text))
	return nil
}
