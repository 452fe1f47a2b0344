package updater

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

const orderPageSize = 50

// OrderStatusUpdater moves orders between statuses one request at a time.
type OrderStatusUpdater struct {
	api  market.API
	conf Config
}

func NewOrderStatusUpdater(api market.API, conf Config) *OrderStatusUpdater {
	return &OrderStatusUpdater{api: api, conf: conf.normalized()}
}

// Run pages the orders sitting in the from status and updates up to limit of
// them to the to status. A failed order is recorded and the loop continues.
// Delay is slept between consecutive update requests; a dry run sends
// nothing.
func (updater *OrderStatusUpdater) Run(
	ctx context.Context,
	campaignID int64,
	from, to model.OrderStatus,
	substatus string,
	limit int,
) (*Stats, []StatusChange, error) {
	tr := otel.Tracer(updaterTracer)
	ctx, span := tr.Start(ctx, "Update Order Statuses")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("campaign_id", campaignID),
		attribute.String("from", string(from)),
		attribute.String("to", string(to)),
		attribute.Bool("dry_run", updater.conf.DryRun),
	)

	orders, err := updater.ordersInStatus(ctx, campaignID, from, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, nil, err
	}

	stats := new(Stats)
	changes := make([]StatusChange, 0, len(orders))

	for i, order := range orders {
		stats.Total++

		if updater.conf.DryRun {
			stats.Updated++
			changes = append(changes, StatusChange{
				OrderID: order.ID,
				From:    from,
				To:      to,
				Status:  ChangePlanned,
			})

			continue
		}

		if i > 0 && updater.conf.Delay > 0 {
			time.Sleep(updater.conf.Delay)
		}

		if _, err := updater.api.UpdateOrderStatus(ctx, campaignID, order.ID, to, substatus); err != nil {
			zerolog.Ctx(ctx).Error().
				Err(err).
				Int64("order_id", order.ID).
				Msg("order status update failed")

			stats.Errors++
			changes = append(changes, StatusChange{
				OrderID: order.ID,
				From:    from,
				To:      to,
				Note:    err.Error(),
				Status:  ChangeFailed,
			})

			continue
		}

		stats.Updated++
		changes = append(changes, StatusChange{
			OrderID: order.ID,
			From:    from,
			To:      to,
			Status:  ChangeUpdated,
		})
	}

	zerolog.Ctx(ctx).Info().
		Int64("campaign_id", campaignID).
		Int("total", stats.Total).
		Int("updated", stats.Updated).
		Int("errors", stats.Errors).
		Msg("order status run finished")

	return stats, changes, nil
}

func (updater *OrderStatusUpdater) ordersInStatus(
	ctx context.Context, campaignID int64, status model.OrderStatus, limit int,
) (model.Orders, error) {
	var orders model.Orders

	for page := 1; ; page++ {
		resp, err := updater.api.Orders(ctx, campaignID, market.OrderListParams{
			Status:   status,
			Page:     page,
			PageSize: orderPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}

		orders = append(orders, resp.Orders...)

		if limit > 0 && len(orders) >= limit {
			return orders[:limit], nil
		}

		if resp.Pager == nil || page >= resp.Pager.PagesCount || len(resp.Orders) == 0 {
			return orders, nil
		}
	}
}
