package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"homeo-service/internal/app/config"
	"homeo-service/internal/app/delivery/cli"
	"homeo-service/internal/app/drivers/logger"
	"homeo-service/internal/pkg/version"
)

func main() {
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig, os.Stderr)
	log.Debugf("clinicctl %s", version.Get())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, cli.NewDependencies, os.Args[1:], os.Stdout, os.Stderr)
	if ctx.Err() != nil {
		log.Println("Interrupted, pending request cancelled")
	}
	stop()

	os.Exit(code)
}
