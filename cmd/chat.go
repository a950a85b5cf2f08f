package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"portfolio-assistant/model"
	"portfolio-assistant/service"
	"portfolio-assistant/utils"

	"github.com/spf13/cobra"
)

func newChatCmd() *cobra.Command {
	var typing bool

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant in the terminal",
		Long: `Start an interactive chat session. Type a question, or /1, /2 ...
to pick one of the numbered quick replies. /quit exits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := buildEngine(conf)
			if err != nil {
				return err
			}
			t := service.TypingConfig{}
			if typing {
				t = typingConfig(conf)
			}
			w := service.NewWidget(engine, &model.Session{ID: "terminal"}, service.SystemClock, t)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runChat(ctx, w, os.Stdin, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&typing, "typing", false, "simulate the typing delay before each reply")
	return cmd
}

// runChat 终端聊天循环，读到 EOF 或 /quit 时结束
func runChat(ctx context.Context, w *service.Widget, in io.Reader, out io.Writer) error {
	w.Open()
	for _, t := range w.Turns() {
		printTurn(out, t)
	}
	printSuggestions(out, w.Suggestions())

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "/quit" || line == "/exit" {
			return nil
		}

		var (
			ex *service.Exchange
			ok bool
		)
		if s, picked := pickSuggestion(line, w.Suggestions()); picked {
			ex, ok = w.SelectQuickReply(s.Query)
		} else {
			ex, ok = w.Send(line)
		}
		if !ok {
			continue
		}

		if ex.TypingDelay > 0 {
			fmt.Fprintln(out, "...")
			select {
			case <-time.After(ex.TypingDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		printTurn(out, ex.Assistant)
		printSuggestions(out, ex.Suggestions)
	}
}

// pickSuggestion 解析 /N 形式的快捷回复选择，N 从 1 开始
func pickSuggestion(line string, suggestions []model.Suggestion) (model.Suggestion, bool) {
	if !strings.HasPrefix(line, "/") {
		return model.Suggestion{}, false
	}
	n, err := strconv.Atoi(line[1:])
	if err != nil || n < 1 || n > len(suggestions) {
		return model.Suggestion{}, false
	}
	return suggestions[n-1], true
}

func printTurn(out io.Writer, t model.Turn) {
	fmt.Fprintf(out, "[%s] %s:\n%s\n\n", t.DisplayTime, t.Sender, utils.PlainText(t.Text))
}

func printSuggestions(out io.Writer, suggestions []model.Suggestion) {
	labels := make([]string, 0, len(suggestions))
	for i, s := range suggestions {
		labels = append(labels, fmt.Sprintf("/%d %s", i+1, s.Label))
	}
	fmt.Fprintln(out, strings.Join(labels, "   "))
}
