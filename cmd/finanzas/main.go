package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"finanzas/internal/cli"
	"finanzas/internal/log"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, app *cli.App, out io.Writer, args []string) error
}

var commands = []command{
	{"add", "Record an income or expense", runAdd},
	{"quick", "Record a frequent entry from a quick action", runQuick},
	{"delete", "Delete a transaction by id", runDelete},
	{"list", "List the transactions of a period", runList},
	{"stats", "Show income, expense, balance and savings for a period", runStats},
	{"charts", "Render the cash flow and category charts to PNG", runCharts},
	{"categories", "Show the category and payment method catalog", runCategories},
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	name := os.Args[1]
	if name == "help" || name == "-h" || name == "--help" {
		printUsage(os.Stdout)
		return
	}

	var cmd *command
	for i := range commands {
		if commands[i].name == name {
			cmd = &commands[i]
			break
		}
	}
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx, logger)

	app := cli.MustSetup(ctx, cfg, logger)
	err := cmd.run(ctx, app, os.Stdout, os.Args[2:])
	app.Close()

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Finanzas")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  finanzas <command> [options]")
	fmt.Fprintln(w, "\nCommands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-11s %s\n", c.name, c.usage)
	}
	fmt.Fprintln(w, "\nRun 'finanzas <command> -h' for more information on a command.")
}
