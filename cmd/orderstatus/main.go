package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
	"github.com/mihalio25/yandex-market-partner-api/internal/updater"
	"github.com/mihalio25/yandex-market-partner-api/internal/utils"
)

func main() {
	campaign := pflag.String("campaign", "", "campaign id or configured name")
	orderID := pflag.Int64("order", 0, "single order to update, 0 for bulk mode")
	from := pflag.String("from", "", "bulk mode, move orders sitting in this status")
	toStatus := pflag.String("to-status", "", "target status")
	substatus := pflag.String("substatus", "", "target substatus")
	limit := pflag.Int("limit", 0, "bulk mode, max orders to move, 0 for all")
	apply := pflag.Bool("apply", false, "send the updates, default is a dry run")
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

	to, err := model.ParseOrderStatus(*toStatus)
	if err != nil {
		log.Fatal().Err(err).Str("to-status", *toStatus).Msg("parse target status failed")
	}

	api, err := market.NewClient(&http.Client{Timeout: conf.APIConfig.ClientTimeout}, &conf.APIConfig)
	if err != nil {
		log.Fatal().Err(err).Msg("create client failed")
	}

	ctx := log.Logger.WithContext(context.Background())

	if *orderID != 0 {
		updateSingle(ctx, api, campaignID, *orderID, to, *substatus, *apply)
	} else {
		updateBulk(ctx, api, conf, campaignID, *from, to, *substatus, *limit, *apply)
	}

	if tp != nil {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("shutdown tracer failed")
		}
	}
}

func updateSingle(
	ctx context.Context,
	api market.API,
	campaignID, orderID int64,
	to model.OrderStatus,
	substatus string,
	apply bool,
) {
	if !apply {
		log.Info().
			Int64("order_id", orderID).
			Str("to", string(to)).
			Msg("dry run, no update sent")

		return
	}

	order, err := api.UpdateOrderStatus(ctx, campaignID, orderID, to, substatus)
	if err != nil {
		log.Fatal().Err(err).Int64("order_id", orderID).Msg("update order status failed")
	}

	log.Info().
		Int64("order_id", order.ID).
		Str("status", string(order.Status)).
		Str("substatus", order.Substatus).
		Msg("order status updated")
}

func updateBulk(
	ctx context.Context,
	api market.API,
	conf *config.Config,
	campaignID int64,
	rawFrom string,
	to model.OrderStatus,
	substatus string,
	limit int,
	apply bool,
) {
	fromStatus, err := model.ParseOrderStatus(rawFrom)
	if err != nil {
		log.Fatal().Err(err).Str("from", rawFrom).Msg("parse source status failed")
	}

	statusUpdater := updater.NewOrderStatusUpdater(api, updater.Config{
		Delay:  conf.APIConfig.Delay,
		DryRun: !apply,
	})

	stats, changes, err := statusUpdater.Run(ctx, campaignID, fromStatus, to, substatus, limit)
	if err != nil {
		log.Fatal().Err(err).Msg("bulk order status update failed")
	}

	for _, change := range changes {
		log.Info().
			Int64("order_id", change.OrderID).
			Str("from", string(change.From)).
			Str("to", string(change.To)).
			Str("result", string(change.Status)).
			Msg("order status change")
	}

	log.Info().
		Int("total", stats.Total).
		Int("updated", stats.Updated).
		Int("errors", stats.Errors).
		Bool("dry_run", !apply).
		Msg("order status update done")
}
