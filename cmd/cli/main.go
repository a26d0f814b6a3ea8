package main

import (
	"context"
	"log"
	"os"

	"github.com/vitorsaucedo/vbank-cli/internal/buildinfo"
	"github.com/vitorsaucedo/vbank-cli/internal/client/cli"
	"github.com/vitorsaucedo/vbank-cli/internal/client/config"
	"github.com/vitorsaucedo/vbank-cli/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
