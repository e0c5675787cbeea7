// Package main - Entry point for the talent-quote API server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	catalogsource "talent-quote/adapters/catalog"
	"talent-quote/api"
	"talent-quote/core/catalog"
	"talent-quote/internal/config"
	"talent-quote/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgFile := flag.String("config", "", "config file")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	var source catalog.Source
	if cfg.Catalog.Path != "" {
		source = catalogsource.NewFileSource(cfg.Catalog.Path)
	} else {
		source = catalogsource.NewStaticSource()
	}
	accessor := catalog.NewAccessor(source)

	apiServer := api.NewServer(version, accessor, cfg.Pricing)

	server := &http.Server{
		Addr:         *addr,
		Handler:      apiServer,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logging.Info("starting talent-quote server",
		zap.String("addr", *addr),
		zap.String("version", version),
	)

	if err := server.ListenAndServe(); err != nil {
		logging.Fatal("server failed", zap.Error(err))
	}
}
