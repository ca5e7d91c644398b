package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/emissions-api/worldmap-creator/internal/app"
	"github.com/emissions-api/worldmap-creator/internal/cache"
	"github.com/emissions-api/worldmap-creator/internal/config"
	"github.com/emissions-api/worldmap-creator/internal/emissions"
	"github.com/emissions-api/worldmap-creator/internal/emissions/providers"
	"github.com/emissions-api/worldmap-creator/internal/geocode"
	"github.com/emissions-api/worldmap-creator/internal/logging"
	"github.com/emissions-api/worldmap-creator/internal/scheduler"
)

func main() {
	err := run()
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(app.ExitCode(err))
	}
}

func run() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	req, err := app.ParseArgs(os.Args[1:], cfg)
	if err != nil {
		return err
	}
	logging.SetVerbose(req.Verbose)

	// Shared HTTP client for outbound API calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewEmissionsAPIProvider(httpClient, req.URL)

	// Download cache, unless disabled by flag or environment.
	var sampleCache emissions.Cache
	if !req.NoCache && !cfg.CacheDisabled {
		diskCache, err := cache.NewDiskCache(cfg.CacheDir)
		if err != nil {
			return err
		}
		sampleCache = diskCache
	}

	service := emissions.NewService(provider, sampleCache)

	a := &app.App{
		Fetcher:  service,
		Geocoder: geocode.New(cfg.GeocoderAPIKey),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	job := func() error {
		return a.Run(ctx, req)
	}

	if req.Every > 0 {
		// Repeat mode: render now, then on every tick until interrupted.
		if err := job(); err != nil {
			log.Printf("ERROR: initial render failed: %v", err)
		}
		sched := scheduler.New(req.Every, job)
		defer sched.Stop()

		go func() {
			<-ctx.Done()
			sched.Stop()
		}()
		return sched.Run()
	}

	return job()
}
