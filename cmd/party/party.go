package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tableflip.dev/party/pkg/commands"
	"tableflip.dev/party/pkg/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.New().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("error during command execution")
		stop()
		os.Exit(1)
	}
}
