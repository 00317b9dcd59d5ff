package cli

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the assistant; a proposed change is staged, not applied",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.call(cmd.Context(), http.MethodPost, apiPrefix+"/assistant/messages", nil,
				map[string]any{"message": strings.Join(args, " ")})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(a.stdout, out["reply"]); err != nil {
				return err
			}
			return a.printPending(out["pending"])
		},
	}
}

func (a *App) newPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "Show the staged proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.call(cmd.Context(), http.MethodGet, apiPrefix+"/assistant/pending", nil, nil)
			if err != nil {
				return err
			}
			if out["pending"] == nil {
				_, err = fmt.Fprintln(a.stdout, "Nothing pending.")
				return err
			}
			return a.printPending(out["pending"])
		},
	}
}

func (a *App) newConfirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Apply the staged proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.call(cmd.Context(), http.MethodPost, apiPrefix+"/assistant/confirm", nil, nil)
			if err != nil {
				return err
			}
			return a.printField(out, "reply")
		},
	}
}

func (a *App) newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel",
		Short: "Drop the staged proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.call(cmd.Context(), http.MethodPost, apiPrefix+"/assistant/cancel", nil, nil)
			if err != nil {
				return err
			}
			return a.printField(out, "reply")
		},
	}
}

func (a *App) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print the conversation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.call(cmd.Context(), http.MethodGet, apiPrefix+"/assistant/history", nil, nil)
			if err != nil {
				return err
			}
			msgs, _ := out["messages"].([]any)
			for _, m := range msgs {
				mm, _ := m.(map[string]any)
				if _, err := fmt.Fprintf(a.stdout, "%s: %s\n", mm["role"], mm["content"]); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

type logsOptions struct {
	from      string
	to        string
	eventType string
	outcome   string
}

func (a *App) newLogsCmd() *cobra.Command {
	opts := &logsOptions{}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List thermostat events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			for k, v := range map[string]string{"from": opts.from, "to": opts.to, "type": opts.eventType, "outcome": opts.outcome} {
				if v != "" {
					q.Set(k, v)
				}
			}
			out, err := a.call(cmd.Context(), http.MethodGet, apiPrefix+"/logs", q, nil)
			if err != nil {
				return err
			}
			return a.printJSON(out["events"])
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", "", "Start of range (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.to, "to", "", "End of range (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.eventType, "type", "", "Event type, e.g. ACTION_CONFIRMED")
	cmd.Flags().StringVar(&opts.outcome, "outcome", "", "Proposal outcome: proposed, confirmed or cancelled")

	return cmd
}

func (a *App) printPending(p any) error {
	pm, ok := p.(map[string]any)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(a.stdout, "%s\n%s\nRun 'thermoctl confirm' or 'thermoctl cancel'.\n", pm["description"], pm["explainer"])
	return err
}
