package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
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
	reportType := pflag.String("type", "", "report type, e.g. prices or united-orders")
	campaign := pflag.String("campaign", "", "campaign id or configured name, optional")
	business := pflag.Int64("business", 0, "business id, defaults to YANDEX_BUSINESS_ID")
	from := pflag.String("from", "", "report period start, 2006-01-02")
	to := pflag.String("to", "", "report period end, 2006-01-02")
	format := pflag.String("format", "CSV", "report format")
	output := pflag.String("output", "", "output path, defaults to report_<type>_<timestamp>.csv")
	pollInterval := pflag.Duration("poll-interval", 5*time.Second, "pause between status polls")
	timeout := pflag.Duration("timeout", 5*time.Minute, "give up waiting after this long")
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

	typ, err := model.ParseReportType(*reportType)
	if err != nil {
		log.Fatal().Err(err).Str("type", *reportType).Msg("parse report type failed")
	}

	params := market.ReportParams{
		BusinessID: conf.APIConfig.BusinessID,
		Format:     model.ReportFormat(*format),
	}

	if *business != 0 {
		params.BusinessID = *business
	}

	if *campaign != "" {
		campaignID, resolveErr := conf.APIConfig.ResolveCampaign(*campaign)
		if resolveErr != nil {
			log.Fatal().Err(resolveErr).Str("campaign", *campaign).Msg("resolve campaign failed")
		}

		params.CampaignID = campaignID
	}

	if *from != "" {
		fromDate, parseErr := time.Parse(time.DateOnly, *from)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Str("from", *from).Msg("parse from date failed")
		}

		params.DateFrom = fromDate
	}

	if *to != "" {
		toDate, parseErr := time.Parse(time.DateOnly, *to)
		if parseErr != nil {
			log.Fatal().Err(parseErr).Str("to", *to).Msg("parse to date failed")
		}

		params.DateTo = toDate
	}

	api, err := market.NewClient(&http.Client{Timeout: conf.APIConfig.ClientTimeout}, &conf.APIConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("create client failed")
	}

	ctx := log.Logger.WithContext(context.Background())

	reportID, err := api.GenerateReport(ctx, typ, params)
	if err != nil {
		log.Fatal().Err(err).Msg("generate report failed")
	}

	log.Info().Str("report_id", reportID).Str("type", string(typ)).Msg("report queued")

	info, err := api.WaitReport(ctx, reportID, *pollInterval, *timeout)
	if err != nil {
		log.Fatal().Err(err).Str("report_id", reportID).Msg("wait report failed")
	}

	log.Info().
		Str("report_id", reportID).
		Str("status", string(info.Status)).
		Str("finished_at", info.GenerationFinishedAt).
		Msg("report ready")

	data, err := api.DownloadReport(ctx, reportID)
	if err != nil {
		log.Fatal().Err(err).Str("report_id", reportID).Msg("download report failed")
	}

	path := *output
	if path == "" {
		path = exporter.Filename(fmt.Sprintf("report_%s", typ), time.Now())
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("write report failed")
	}

	log.Info().Str("path", path).Int("bytes", len(data)).Msg("report downloaded")

	if tp != nil {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown tracer failed")
		}
	}
}
