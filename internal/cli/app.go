// Package cli is thermoctl, a command-line client for the thermostat API.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var Version = "dev"

const (
	defaultServer  = "http://localhost:8080"
	defaultTimeout = 90 * time.Second
	apiPrefix      = "/api/v1"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	server     string
	httpClient *http.Client
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	app.root = &cobra.Command{
		Use:   "thermoctl",
		Short: "Control a smart thermostat server",
		Long: `thermoctl talks to a running thermostat server.

Manual commands (mode, fan, comfort, setpoint, location) apply at once.
Assistant proposals (ask) are only staged; run confirm to apply one or
cancel to drop it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	app.root.PersistentFlags().StringVarP(&app.server, "server", "s", envOr("THERMOCTL_SERVER", defaultServer), "Thermostat server base URL")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newStateCmd(),
		app.newModeCmd(),
		app.newFanCmd(),
		app.newComfortCmd(),
		app.newSetpointCmd(),
		app.newLocationCmd(),
		app.newWeatherCmd(),
		app.newAskCmd(),
		app.newPendingCmd(),
		app.newConfirmCmd(),
		app.newCancelCmd(),
		app.newHistoryCmd(),
		app.newLogsCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.Execute(ctx)
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "thermoctl version %s\n", Version)
		},
	}
}

// call sends body (if any) as JSON and returns the decoded response.
// Non-2xx responses become errors carrying the server's "error" field.
func (a *App) call(ctx context.Context, method, path string, query url.Values, body any) (map[string]any, error) {
	u := strings.TrimRight(a.server, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg, ok := out["error"].(string); ok {
			return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, msg)
		}
		return nil, fmt.Errorf("server returned %d", resp.StatusCode)
	}
	return out, nil
}

// printJSON writes v indented.
func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printField prints out[key] as plain text when it is a string, else as JSON.
func (a *App) printField(out map[string]any, key string) error {
	if s, ok := out[key].(string); ok {
		_, err := fmt.Fprintln(a.stdout, s)
		return err
	}
	return a.printJSON(out[key])
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
