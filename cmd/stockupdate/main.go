package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/exporter"
	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
	"github.com/mihalio25/yandex-market-partner-api/internal/updater"
	"github.com/mihalio25/yandex-market-partner-api/internal/utils"
)

func main() {
	campaign := pflag.String("campaign", "", "campaign id or configured name")
	adjust := pflag.Int64("adjust", 0, "count delta applied to every stocked offer")
	stockType := pflag.String("type", "AVAILABLE", "stock type the delta applies to")
	batchSize := pflag.Int("batch-size", 0, "items per update request")
	delay := pflag.Duration("delay", 0, "pause between update requests")
	apply := pflag.Bool("apply", false, "send the updates, default is a dry run")
	logDir := pflag.String("log-dir", "", "directory for the change log csv")
	pflag.Parse()

	closeLogs := utils.SetupLogger()
	defer closeLogs()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}

	conf.APIConfig.ApplyOverrides(config.Overrides{BatchSize: *batchSize, Delay: *delay})

	tp, err := utils.TracerProvider(conf.TraceConfig)
	if err != nil {
		log.Error().Err(err).Msg("init tracer failed")
	}

	campaignID, err := conf.APIConfig.ResolveCampaign(*campaign)
	if err != nil {
		log.Fatal().Err(err).Str("campaign", *campaign).Msg("resolve campaign failed")
	}

	typ, err := model.ParseStockType(*stockType)
	if err != nil {
		log.Fatal().Err(err).Str("type", *stockType).Msg("parse stock type failed")
	}

	api, err := market.NewClient(&http.Client{Timeout: conf.APIConfig.ClientTimeout}, &conf.APIConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("create client failed")
	}

	stockUpdater := updater.NewStockUpdater(api, updater.Config{
		BatchSize: conf.APIConfig.BatchSize,
		Delay:     conf.APIConfig.Delay,
		DryRun:    !*apply,
	})

	ctx := log.Logger.WithContext(context.Background())

	stats, changes, err := stockUpdater.Run(ctx, campaignID, *adjust, typ, updater.Filters{})
	if err != nil {
		log.Fatal().Err(err).Msg("stock update failed")
	}

	log.Info().
		Int("total", stats.Total).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Bool("dry_run", !*apply).
		Msg("stock update done")

	if len(changes) > 0 {
		writeChangeLog(*logDir, changes)
	}

	if tp != nil {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown tracer failed")
		}
	}
}

func writeChangeLog(dir string, changes []updater.StockChange) {
	path := filepath.Join(dir, exporter.Filename("stock_changes", time.Now()))

	file, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("create change log failed")

		return
	}
	defer file.Close()

	if err := exporter.WriteStockChangesCSV(file, changes); err != nil {
		log.Error().Err(err).Str("path", path).Msg("write change log failed")

		return
	}

	log.Info().Str("path", path).Int("changes", len(changes)).Msg("change log written")
}
