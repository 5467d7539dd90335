package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/SscSPs/money_tracker/internal/commands"
	"github.com/SscSPs/money_tracker/internal/platform/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading config:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = commands.NewRootCommand(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
