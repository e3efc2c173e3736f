package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/gauss/internal/cli"
)

var (
	version = "dev"
	commit  = ""
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cli.SetVersion(version, commit)
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}
