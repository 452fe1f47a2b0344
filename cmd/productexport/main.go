package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/exporter"
	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/utils"
)

func main() {
	campaign := pflag.String("campaign", "", "campaign id or configured name")
	detailed := pflag.Bool("detailed", false, "merge campaign prices, statuses and issues into the rows")
	limit := pflag.Int("limit", 0, "max rows, 0 for all")
	output := pflag.String("output", "", "output csv path, defaults to products_<timestamp>.csv")
	pflag.Parse()

	closeLogs := utils.SetupLogger()
	defer closeLogs()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("load config failed")
	}

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

	ctx := log.Logger.WithContext(context.Background())

	rows, err := exporter.Products(ctx, api, campaignID, exporter.Options{
		Detailed: *detailed,
		Limit:    *limit,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("export products failed")
	}

	path := *output
	if path == "" {
		path = exporter.Filename("products", time.Now())
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("create output failed")
	}
	defer file.Close()

	if err := exporter.WriteProductsCSV(file, rows); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("write csv failed")
	}

	log.Info().Int("rows", len(rows)).Str("path", path).Msg("products exported")

	if tp != nil {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown tracer failed")
		}
	}
}
