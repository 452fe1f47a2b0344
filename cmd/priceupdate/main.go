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
	"github.com/mihalio25/yandex-market-partner-api/internal/pricing"
	"github.com/mihalio25/yandex-market-partner-api/internal/updater"
	"github.com/mihalio25/yandex-market-partner-api/internal/utils"
)

func main() {
	campaign := pflag.String("campaign", "", "campaign id or configured name")
	strategy := pflag.String("strategy", "percentage", "percentage, fixed_amount, round_up or competitive")
	value := pflag.Float64("value", 0, "strategy value, percent delta for percentage and round_up")
	minPrice := pflag.Float64("min-price", 0, "lowest allowed price, 0 for no floor")
	maxPrice := pflag.Float64("max-price", 0, "highest allowed price, 0 for no ceiling")
	category := pflag.String("category", "", "only items whose category contains this")
	name := pflag.String("name", "", "only items whose name contains this")
	exclude := pflag.StringSlice("exclude", nil, "SKUs to leave untouched")
	limit := pflag.Int("limit", 0, "max catalog items examined, 0 for all")
	batchSize := pflag.Int("batch-size", 0, "items per update request")
	delay := pflag.Duration("delay", 0, "pause between update requests")
	apply := pflag.Bool("apply", false, "send the updates, default is a dry run")
	input := pflag.String("input", "", "CSV price list, switches to list mode")
	skuColumn := pflag.String("sku-column", "sku", "price list column holding the SKU")
	priceColumn := pflag.String("price-column", "price", "price list column holding the target price")
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

	api, err := market.NewClient(&http.Client{Timeout: conf.APIConfig.ClientTimeout}, &conf.APIConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("create client failed")
	}

	priceUpdater := updater.NewPriceUpdater(api, updater.Config{
		BatchSize: conf.APIConfig.BatchSize,
		Delay:     conf.APIConfig.Delay,
		DryRun:    !*apply,
		Limit:     *limit,
	})

	ctx := log.Logger.WithContext(context.Background())

	var (
		stats   *updater.Stats
		changes []updater.Change
	)

	if *input != "" {
		stats, changes, err = runPriceList(ctx, priceUpdater, campaignID, *input, *skuColumn, *priceColumn)
	} else {
		stats, changes, err = runStrategy(
			ctx, priceUpdater, campaignID,
			*strategy, *value,
			pricing.Limits{Min: *minPrice, Max: *maxPrice},
			updater.Filters{
				Category:    *category,
				Name:        *name,
				ExcludeSKUs: *exclude,
			},
		)
	}

	if err != nil {
		log.Fatal().Err(err).Msg("price update failed")
	}

	log.Info().
		Int("total", stats.Total).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Bool("dry_run", !*apply).
		Msg("price update done")

	if len(changes) > 0 {
		writeChangeLog(*logDir, changes)
	}

	if tp != nil {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown tracer failed")
		}
	}
}

func runStrategy(
	ctx context.Context,
	priceUpdater *updater.PriceUpdater,
	campaignID int64,
	rawStrategy string,
	value float64,
	lim pricing.Limits,
	filters updater.Filters,
) (*updater.Stats, []updater.Change, error) {
	strategy, err := pricing.ParseStrategy(rawStrategy)
	if err != nil {
		return nil, nil, err
	}

	return priceUpdater.Run(ctx, campaignID, strategy, value, lim, filters)
}

func runPriceList(
	ctx context.Context,
	priceUpdater *updater.PriceUpdater,
	campaignID int64,
	path, skuColumn, priceColumn string,
) (*updater.Stats, []updater.Change, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	prices, err := updater.LoadPriceList(file, skuColumn, priceColumn)
	if err != nil {
		return nil, nil, err
	}

	return priceUpdater.RunPriceList(ctx, campaignID, prices)
}

func writeChangeLog(dir string, changes []updater.Change) {
	path := filepath.Join(dir, exporter.Filename("price_changes", time.Now()))

	file, err := os.Create(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("create change log failed")

		return
	}
	defer file.Close()

	if err := exporter.WriteChangesCSV(file, changes); err != nil {
		log.Error().Err(err).Str("path", path).Msg("write change log failed")

		return
	}

	log.Info().Str("path", path).Int("changes", len(changes)).Msg("change log written")
}
