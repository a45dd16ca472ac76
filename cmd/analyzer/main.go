package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bidscli/internal/config"
	"bidscli/internal/dataprocessing"
	"bidscli/internal/exporter"
	"bidscli/internal/infrastructure"
)

func main() {
	inFile := flag.String("in", "", "path to the bid workbook (.xlsx)")
	outDir := flag.String("out", "reports", "output directory for summary files")
	origin := flag.String("origin", "", "origin airport for a route recommendation (optional)")
	destination := flag.String("destination", "", "destination airport for a route recommendation (optional)")
	flag.Parse()

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "usage: analyzer -in bids.xlsx [-out reports] [-origin JFK -destination LHR]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	source, err := os.ReadFile(*inFile)
	if err != nil {
		logger.ErrorContext(ctx, "failed to read workbook", "path", *inFile, "error", err)
		os.Exit(1)
	}

	layout := dataprocessing.SheetLayout{
		SheetName:    cfg.Sheet.Name,
		HeaderRow:    cfg.Sheet.HeaderRow,
		DataStartRow: cfg.Sheet.DataStartRow,
		StartColumn:  cfg.Sheet.StartColumn,
	}
	loader := dataprocessing.NewLoader(layout, logger, nil)

	set, err := loader.Load(ctx, source)
	if err != nil {
		logger.ErrorContext(ctx, "ingestion failed", "path", *inFile, "error", err)
		os.Exit(1)
	}

	overview := dataprocessing.Overview(set.Records)
	routeSummaries := dataprocessing.SummarizeByRoute(set.Records)
	carrierSummaries := dataprocessing.SummarizeByCarrier(set.Records)

	logger.InfoContext(ctx, "bid sheet analyzed",
		slog.String("source", *inFile),
		slog.Int("valid_bids", overview.TotalBids),
		slog.Int("routes", overview.TotalRoutes),
		slog.Int("carriers", overview.TotalCarriers),
		slog.Float64("average_price", overview.AveragePrice),
		slog.Float64("best_rate_pct", overview.BestRatePct))

	exp := exporter.New(logger)
	if err := exp.WriteRouteSummariesCSV(ctx, filepath.Join(*outDir, "route_summaries.csv"), routeSummaries); err != nil {
		logger.ErrorContext(ctx, "failed to write route summaries", "error", err)
		os.Exit(1)
	}
	if err := exp.WriteCarrierSummariesCSV(ctx, filepath.Join(*outDir, "carrier_summaries.csv"), carrierSummaries); err != nil {
		logger.ErrorContext(ctx, "failed to write carrier summaries", "error", err)
		os.Exit(1)
	}
	if err := exp.WriteSummariesJSON(ctx, filepath.Join(*outDir, "analytics.json"), overview, routeSummaries, carrierSummaries); err != nil {
		logger.ErrorContext(ctx, "failed to write analytics JSON", "error", err)
		os.Exit(1)
	}

	if *origin != "" && *destination != "" {
		rec, found := dataprocessing.Recommend(set.Records, *origin, *destination)
		if !found {
			logger.InfoContext(ctx, "no carriers serve the requested route",
				slog.String("origin", *origin),
				slog.String("destination", *destination))
		} else {
			logger.InfoContext(ctx, "route recommendation",
				slog.String("route", rec.Recommended.Route),
				slog.String("recommended", rec.Recommended.Airline),
				slog.Float64("recommended_price", rec.Recommended.Price()),
				slog.String("baseline", rec.Baseline.Airline),
				slog.Float64("baseline_price", rec.Baseline.Price()),
				slog.Float64("savings", rec.Savings),
				slog.Float64("savings_pct", rec.SavingsPct))

			bids := dataprocessing.RouteBids(set.Records, *origin, *destination)
			routeFile := fmt.Sprintf("route_%s_%s.csv", *origin, *destination)
			if err := exp.WriteRouteBidsCSV(ctx, filepath.Join(*outDir, routeFile), bids); err != nil {
				logger.ErrorContext(ctx, "failed to write route bids", "error", err)
				os.Exit(1)
			}
		}
	}
}
