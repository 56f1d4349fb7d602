// Command adminctl is the command-line back-office client of the admin API.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/galeria/admin-api/internal/cli"
	"github.com/galeria/admin-api/internal/pkg/config"
	"github.com/galeria/admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Output: os.Stderr, Service: "adminctl"})

	if err := cli.NewRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
