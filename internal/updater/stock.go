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

// StockUpdater adjusts warehouse stock counts in paced batches.
type StockUpdater struct {
	api  market.API
	conf Config
	now  func() time.Time
}

func NewStockUpdater(api market.API, conf Config) *StockUpdater {
	return &StockUpdater{api: api, conf: conf.normalized(), now: time.Now}
}

type pendingStock struct {
	sku         string
	warehouseID int64
	oldCount    int64
	newCount    int64
}

func (pend pendingStock) change(status ChangeStatus) StockChange {
	return StockChange{
		SKU:         pend.sku,
		WarehouseID: pend.warehouseID,
		OldCount:    pend.oldCount,
		NewCount:    pend.newCount,
		Status:      status,
	}
}

// Run adds adjust to the count of the selected stock type of every offer in
// every warehouse, flooring at zero, and pushes the new counts with the same
// batching and dry run contract as price runs. Stock rows carry no price or
// name, so only the SKU exclusion filter applies.
func (updater *StockUpdater) Run(
	ctx context.Context,
	campaignID int64,
	adjust int64,
	only model.StockType,
	filters Filters,
) (*Stats, []StockChange, error) {
	tr := otel.Tracer(updaterTracer)
	ctx, span := tr.Start(ctx, "Update Stocks")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("campaign_id", campaignID),
		attribute.Int64("adjust", adjust),
		attribute.Bool("dry_run", updater.conf.DryRun),
	)

	warehouses, err := updater.stocks(ctx, campaignID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, nil, err
	}

	stats := new(Stats)

	var (
		changes []StockChange
		pending []pendingStock
	)

	for _, warehouse := range warehouses {
		for _, offer := range warehouse.Offers {
			if updater.conf.Limit > 0 && stats.Total >= updater.conf.Limit {
				break
			}

			stats.Total++

			if filters.Excluded(offer.OfferID) {
				stats.Skipped++

				continue
			}

			oldCount := offer.Count(only)

			newCount := oldCount + adjust
			if newCount < 0 {
				newCount = 0
			}

			if newCount == oldCount {
				stats.Skipped++
				changes = append(changes, StockChange{
					SKU:         offer.OfferID,
					WarehouseID: warehouse.WarehouseID,
					OldCount:    oldCount,
					NewCount:    newCount,
					Status:      ChangeSkipped,
				})

				continue
			}

			pending = append(pending, pendingStock{
				sku:         offer.OfferID,
				warehouseID: warehouse.WarehouseID,
				oldCount:    oldCount,
				newCount:    newCount,
			})
		}
	}

	if updater.conf.DryRun {
		for _, pend := range pending {
			stats.Updated++
			changes = append(changes, pend.change(ChangePlanned))
		}
	} else {
		updatedAt := updater.now().UTC().Format(time.RFC3339)

		forEachBatch(len(pending), updater.conf.BatchSize, updater.conf.Delay, func(start, end int) {
			batch := pending[start:end]

			updates := make([]market.StockUpdate, 0, len(batch))
			for _, pend := range batch {
				updates = append(updates, market.StockUpdate{
					SKU:         pend.sku,
					WarehouseID: pend.warehouseID,
					Items: []market.StockItem{
						{Count: pend.newCount, UpdatedAt: updatedAt},
					},
				})
			}

			if err := updater.api.UpdateStocks(ctx, campaignID, updates); err != nil {
				zerolog.Ctx(ctx).Error().
					Err(err).
					Int("batch_start", start).
					Int("batch_size", len(batch)).
					Msg("stock batch failed")

				stats.Errors += len(batch)
				for _, pend := range batch {
					changes = append(changes, pend.change(ChangeFailed))
				}

				return
			}

			stats.Updated += len(batch)
			for _, pend := range batch {
				changes = append(changes, pend.change(ChangeUpdated))
			}
		})
	}

	zerolog.Ctx(ctx).Info().
		Int64("campaign_id", campaignID).
		Int("total", stats.Total).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("stock run finished")

	return stats, changes, nil
}

func (updater *StockUpdater) stocks(
	ctx context.Context, campaignID int64,
) ([]model.WarehouseStocks, error) {
	var (
		warehouses []model.WarehouseStocks
		pageToken  string
	)

	for {
		resp, err := updater.api.WarehouseStocks(ctx, campaignID, market.StocksParams{
			PageToken: pageToken,
			Limit:     catalogPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list warehouse stocks: %w", err)
		}

		warehouses = append(warehouses, resp.Warehouses...)

		if resp.Paging.NextPageToken == "" {
			return warehouses, nil
		}

		pageToken = resp.Paging.NextPageToken
	}
}
