package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vacature-scout/internal/config"
	"vacature-scout/internal/pipeline"
	"vacature-scout/internal/translate"
	"vacature-scout/pkg/utils"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	mode := flag.String("mode", "single", "run mode: single, pages, bulk, inspect-list, inspect-detail or diagnose")
	listURL := flag.String("url", "", "listing search URL to start from")
	numPages := flag.Int("pages", 3, "number of listing pages to scrape (pages mode)")
	maxJobs := flag.Int("max-jobs", 10, "number of jobs to translate (bulk mode)")
	outputFile := flag.String("out", "", "override the JSON output file (single mode)")
	flag.Parse()

	if *listURL == "" {
		fmt.Fprintln(os.Stderr, "usage: vacature-scout -url <listing search URL> [-mode single|pages|bulk|inspect-list|inspect-detail|diagnose]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *outputFile != "" {
		cfg.Output.File = *outputFile
	}

	logger := utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	logger.WithField("mode", *mode).Info("Starting vacature-scout")

	translator, err := translate.NewTranslator(cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create translator")
	}

	runner := pipeline.NewRunner(cfg, translator)

	// SIGINT/SIGTERM aborts between items; in-flight calls are canceled
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch *mode {
	case "single":
		_, err = runner.RunSingle(ctx, *listURL)
	case "pages":
		_, err = runner.RunPages(ctx, *listURL, *numPages)
	case "bulk":
		_, err = runner.RunBulk(ctx, *listURL, *maxJobs)
	case "inspect-list":
		err = runner.InspectListing(ctx, *listURL)
	case "inspect-detail":
		err = runner.InspectDetailPage(ctx, *listURL)
	case "diagnose":
		err = runner.DiagnoseSelectors(ctx, *listURL)
	default:
		logger.WithField("mode", *mode).Fatal("Unknown run mode")
	}

	if err != nil {
		logger.WithError(err).Fatal("Run failed")
	}

	logger.Info("Run completed")
}
