// Command thermoctl is a command-line client for the thermostat server.
package main

import (
	"context"
	"fmt"
	"os"

	"smart_thermostat/internal/cli"
)

func main() {
	app := cli.New()

	if err := app.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
