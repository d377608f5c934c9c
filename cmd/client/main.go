// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-staff-api/internal/adapter"
	"github.com/MKhiriev/go-staff-api/internal/client"
	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
)

func main() {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewCLILogger("go-staff-client", cfg.Adapter.Verbose)

	api, err := adapter.NewHTTPStaffAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create staff api adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var app client.Client = client.NewApp(api, os.Stdout, cfg.Adapter.Token, log)
	if err = app.Run(ctx, flag.Args()); err != nil {
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}
