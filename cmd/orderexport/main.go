package main

import (
	"context"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/exporter"
	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
	"github.com/mihalio25/yandex-market-partner-api/internal/utils"
)

func main() {
	campaign := pflag.String("campaign", "", "campaign id or configured name")
	status := pflag.String("status", "", "only orders in this status")
	days := pflag.Int("days", 30, "lookback window in days when --from is not set")
	from := pflag.String("from", "", "orders created on or after this date, 2006-01-02")
	to := pflag.String("to", "", "orders created on or before this date, 2006-01-02")
	fake := pflag.Bool("fake", false, "include test orders")
	output := pflag.String("output", "", "output csv path, defaults to orders_<timestamp>.csv")
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

	params := market.OrderListParams{Fake: *fake}

	if *status != "" {
		parsed, parseErr := model.ParseOrderStatus(*status)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Str("status", *status).Msg("parse status failed")
		}

		params.Status = parsed
	}

	switch {
	case *from != "":
		fromDate, parseErr := time.Parse(time.DateOnly, *from)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Str("from", *from).Msg("parse from date failed")
		}

		params.FromDate = fromDate
	case *days > 0:
		params.FromDate = time.Now().AddDate(0, 0, -*days)
	}

	if *to != "" {
		toDate, parseErr := time.Parse(time.DateOnly, *to)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Str("to", *to).Msg("parse to date failed")
		}

		params.ToDate = toDate
	}

	api, err := market.NewClient(&http.Client{Timeout: conf.APIConfig.ClientTimeout}, &conf.APIConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("create client failed")
	}

	ctx := log.Logger.WithContext(context.Background())

	rows, err := exporter.Orders(ctx, api, campaignID, params)
	if err != nil {
		log.Fatal().Err(err).Msg("export orders failed")
	}

	path := *output
	if path == "" {
		path = exporter.Filename("orders", time.Now())
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("create output failed")
	}
	defer file.Close()

	if err := exporter.WriteOrdersCSV(file, rows); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("write csv failed")
	}

	log.Info().Int("rows", len(rows)).Str("path", path).Msg("orders exported")

	summary := exporter.SummarizeByPayment(rows)

	methods := make([]string, 0, len(summary))
	for method := range summary {
		methods = append(methods, string(method))
	}
	sort.Strings(methods)

	for _, method := range methods {
		bucket := summary[model.PaymentMethod(method)]

		log.Info().
			Str("method", method).
			Int("orders", bucket.Count).
			Float64("total", bucket.Total).
			Msg("payment summary")
	}

	if tp != nil {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown tracer failed")
		}
	}
}
