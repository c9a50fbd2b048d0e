package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/goliatone/go-promptgen/pkg/prompts"
	"github.com/goliatone/go-promptgen/pkg/renderers/tui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "promptgen-cli: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, options ...tui.Option) error {
	fs := flag.NewFlagSet("promptgen-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	source := fs.String("prompts", "", "TemplateSet JSON or YAML file (default embedded set)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set, err := prompts.Default()
	if *source != "" {
		set, err = prompts.Load(*source)
	}
	if err != nil {
		return err
	}

	flow, err := tui.New(set, append([]tui.Option{tui.WithOutput(stdout)}, options...)...)
	if err != nil {
		return err
	}
	return flow.Run(ctx)
}
