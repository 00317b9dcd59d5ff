package cli

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) newStateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show the current thermostat state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.call(cmd.Context(), http.MethodGet, apiPrefix+"/thermostat/state", nil, nil)
			if err != nil {
				return err
			}
			return a.printJSON(out)
		},
	}
}

func (a *App) newModeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "mode <Off|Heat|Cool|Auto|Aux>",
		Short:     "Set the HVAC mode",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"Off", "Heat", "Cool", "Auto", "Aux"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.postStatus(cmd, "/thermostat/mode", map[string]any{"mode": args[0]})
		},
	}
}

func (a *App) newFanCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "fan <Auto|On>",
		Short:     "Set the fan",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"Auto", "On"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.postStatus(cmd, "/thermostat/fan", map[string]any{"fan": args[0]})
		},
	}
}

func (a *App) newComfortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comfort <name>",
		Short: "Select an existing comfort preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.postStatus(cmd, "/thermostat/comfort", map[string]any{"comfort": args[0]})
		},
	}
}

type setpointOptions struct {
	comfort string
	target  string
}

func (a *App) newSetpointCmd() *cobra.Command {
	opts := &setpointOptions{}

	cmd := &cobra.Command{
		Use:   "setpoint <°F>",
		Short: "Set a comfort setpoint (clamped to 45..90)",
		Long: `Set one setpoint of a comfort preset. Without --comfort the active
comfort is edited; a comfort that does not exist yet is created.

Examples:
  thermoctl setpoint 70
  thermoctl setpoint 76 --target cool --comfort Home`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("setpoint must be an integer: %w", err)
			}
			body := map[string]any{"target": opts.target, "value": v}
			if opts.comfort != "" {
				body["comfort"] = opts.comfort
			}
			out, err := a.call(cmd.Context(), http.MethodPost, apiPrefix+"/thermostat/setpoint", nil, body)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(a.stdout, "%v setpoint stored: %v\n", opts.target, out["value"])
			return err
		},
	}

	cmd.Flags().StringVar(&opts.comfort, "comfort", "", "Comfort preset to edit (default: active)")
	cmd.Flags().StringVar(&opts.target, "target", "heat", "Setpoint to edit (heat or cool)")

	return cmd
}

func (a *App) newLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "location <text>",
		Short: "Set the location used for outdoor weather",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.postStatus(cmd, "/thermostat/location", map[string]any{"location": strings.Join(args, " ")})
		},
	}
}

func (a *App) newWeatherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Refresh or tune outdoor weather",
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Geocode the location and fetch current conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.call(cmd.Context(), http.MethodPost, apiPrefix+"/weather/update", nil, nil)
			if err != nil {
				return err
			}
			rep, _ := out["report"].(map[string]any)
			msg, _ := rep["message"].(string)
			if msg == "" {
				msg, _ = rep["status"].(string)
			}
			_, err = fmt.Fprintln(a.stdout, msg)
			return err
		},
	}

	pick := &cobra.Command{
		Use:   "select <index>",
		Short: "Choose which geocoding match the next update uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("index must be an integer: %w", err)
			}
			out, err := a.call(cmd.Context(), http.MethodPost, apiPrefix+"/weather/candidate", nil, map[string]any{"index": idx})
			if err != nil {
				return err
			}
			return a.printField(out, "label")
		},
	}

	cmd.AddCommand(update, pick)
	return cmd
}

// postStatus posts body and prints the returned status string.
func (a *App) postStatus(cmd *cobra.Command, path string, body map[string]any) error {
	out, err := a.call(cmd.Context(), http.MethodPost, apiPrefix+path, nil, body)
	if err != nil {
		return err
	}
	return a.printField(out, "status")
}
