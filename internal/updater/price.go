package updater

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/pricing"
)

// PriceUpdater recalculates catalog prices and pushes them in paced batches.
type PriceUpdater struct {
	api  market.API
	conf Config
}

func NewPriceUpdater(api market.API, conf Config) *PriceUpdater {
	return &PriceUpdater{api: api, conf: conf.normalized()}
}

type pendingPrice struct {
	sku      string
	name     string
	oldPrice float64
	newPrice float64
	currency string
	reason   string
}

func (pend pendingPrice) change(status ChangeStatus) Change {
	return Change{
		SKU:      pend.sku,
		Name:     pend.name,
		OldPrice: pend.oldPrice,
		NewPrice: pend.newPrice,
		Reason:   pend.reason,
		Status:   status,
	}
}

// Run recalculates the basic price of every accepted catalog item with the
// given strategy and pushes the result business-wide. Items without a basic
// price and items the filters reject are counted as skipped. Accepted items
// go out in ceil(N/BatchSize) requests with Delay slept between consecutive
// requests; a dry run sends nothing.
func (updater *PriceUpdater) Run(
	ctx context.Context,
	campaignID int64,
	strategy pricing.Strategy,
	value float64,
	lim pricing.Limits,
	filters Filters,
) (*Stats, []Change, error) {
	tr := otel.Tracer(updaterTracer)
	ctx, span := tr.Start(ctx, "Update Prices")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("campaign_id", campaignID),
		attribute.String("strategy", string(strategy)),
		attribute.Bool("dry_run", updater.conf.DryRun),
	)

	campaign, err := updater.api.Campaign(ctx, campaignID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, nil, fmt.Errorf("resolve campaign: %w", err)
	}

	if campaign.Business == nil || campaign.Business.ID == 0 {
		span.SetStatus(codes.Error, market.ErrNoBusiness.Error())

		return nil, nil, fmt.Errorf("resolve campaign: %w", market.ErrNoBusiness)
	}

	businessID := campaign.Business.ID

	items, err := updater.catalog(ctx, businessID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, nil, err
	}

	stats := new(Stats)
	changes := make([]Change, 0, len(items))
	pending := make([]pendingPrice, 0, len(items))

	for _, item := range items {
		stats.Total++

		if item.Price <= 0 {
			stats.Skipped++
			changes = append(changes, Change{
				SKU:    item.SKU,
				Name:   item.Name,
				Reason: "no base price",
				Status: ChangeSkipped,
			})

			continue
		}

		if !filters.Match(item) {
			stats.Skipped++

			continue
		}

		newPrice, reason := pricing.Calculate(item.Price, strategy, value, lim)
		if math.Abs(newPrice-item.Price) < priceEpsilon {
			stats.Skipped++
			changes = append(changes, Change{
				SKU:      item.SKU,
				Name:     item.Name,
				OldPrice: item.Price,
				NewPrice: newPrice,
				Reason:   "unchanged",
				Status:   ChangeSkipped,
			})

			continue
		}

		pending = append(pending, pendingPrice{
			sku:      item.SKU,
			name:     item.Name,
			oldPrice: item.Price,
			newPrice: newPrice,
			currency: item.Currency,
			reason:   reason,
		})
	}

	changes = append(changes, updater.pushBusinessPrices(ctx, businessID, pending, stats)...)

	zerolog.Ctx(ctx).Info().
		Int64("campaign_id", campaignID).
		Int("total", stats.Total).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("price run finished")

	return stats, changes, nil
}

// RunPriceList pushes explicit target prices onto the campaign. Only SKUs
// whose current campaign price differs from the target by at least a kopeck
// are sent, through the same batching path as Run.
func (updater *PriceUpdater) RunPriceList(
	ctx context.Context,
	campaignID int64,
	prices map[string]float64,
) (*Stats, []Change, error) {
	tr := otel.Tracer(updaterTracer)
	ctx, span := tr.Start(ctx, "Update Prices From List")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("campaign_id", campaignID),
		attribute.Int("list_size", len(prices)),
		attribute.Bool("dry_run", updater.conf.DryRun),
	)

	current, err := updater.campaignCatalog(ctx, campaignID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, nil, err
	}

	skus := make([]string, 0, len(prices))
	for sku := range prices {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	stats := new(Stats)
	changes := make([]Change, 0, len(skus))
	pending := make([]pendingPrice, 0, len(skus))

	for _, sku := range skus {
		stats.Total++

		item, ok := current[sku]
		if !ok {
			stats.Skipped++
			changes = append(changes, Change{
				SKU:    sku,
				Reason: "not in campaign catalog",
				Status: ChangeSkipped,
			})

			continue
		}

		target := prices[sku]
		if math.Abs(target-item.Price) < priceEpsilon {
			stats.Skipped++
			changes = append(changes, Change{
				SKU:      sku,
				Name:     item.Name,
				OldPrice: item.Price,
				NewPrice: target,
				Reason:   "unchanged",
				Status:   ChangeSkipped,
			})

			continue
		}

		pending = append(pending, pendingPrice{
			sku:      sku,
			name:     item.Name,
			oldPrice: item.Price,
			newPrice: target,
			currency: item.Currency,
			reason:   "price list",
		})
	}

	changes = append(changes, updater.pushCampaignPrices(ctx, campaignID, pending, stats)...)

	zerolog.Ctx(ctx).Info().
		Int64("campaign_id", campaignID).
		Int("total", stats.Total).
		Int("updated", stats.Updated).
		Int("skipped", stats.Skipped).
		Int("errors", stats.Errors).
		Msg("price list run finished")

	return stats, changes, nil
}

func (updater *PriceUpdater) pushBusinessPrices(
	ctx context.Context, businessID int64, pending []pendingPrice, stats *Stats,
) []Change {
	return updater.push(ctx, pending, stats, func(batch []pendingPrice) error {
		updates := make([]market.BusinessPriceUpdate, 0, len(batch))
		for _, pend := range batch {
			updates = append(updates, market.BusinessPriceUpdate{
				OfferID: pend.sku,
				Price:   priceOf(pend),
			})
		}

		return updater.api.UpdateBusinessPrices(ctx, businessID, updates)
	})
}

func (updater *PriceUpdater) pushCampaignPrices(
	ctx context.Context, campaignID int64, pending []pendingPrice, stats *Stats,
) []Change {
	return updater.push(ctx, pending, stats, func(batch []pendingPrice) error {
		updates := make([]market.PriceUpdate, 0, len(batch))
		for _, pend := range batch {
			updates = append(updates, market.PriceUpdate{
				OfferID: pend.sku,
				Price:   priceOf(pend),
			})
		}

		return updater.api.UpdatePrices(ctx, campaignID, updates)
	})
}

func priceOf(pend pendingPrice) market.Price {
	currency := pend.currency
	if currency == "" {
		currency = market.CurrencyRUR
	}

	return market.Price{Value: pend.newPrice, CurrencyID: currency}
}

// push sends pending changes in paced batches through send. A failed batch
// marks its whole slice failed and the run continues with the next batch.
func (updater *PriceUpdater) push(
	ctx context.Context, pending []pendingPrice, stats *Stats, send func([]pendingPrice) error,
) []Change {
	changes := make([]Change, 0, len(pending))

	if updater.conf.DryRun {
		for _, pend := range pending {
			stats.Updated++
			changes = append(changes, pend.change(ChangePlanned))
		}

		return changes
	}

	forEachBatch(len(pending), updater.conf.BatchSize, updater.conf.Delay, func(start, end int) {
		batch := pending[start:end]

		if err := send(batch); err != nil {
			zerolog.Ctx(ctx).Error().
				Err(err).
				Int("batch_start", start).
				Int("batch_size", len(batch)).
				Msg("price batch failed")

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

	return changes
}

// catalog pages the business offer mappings into flat catalog rows, up to
// the configured limit. Unpriced offers come back with a zero price.
func (updater *PriceUpdater) catalog(ctx context.Context, businessID int64) ([]CatalogItem, error) {
	var (
		items     []CatalogItem
		pageToken string
	)

	for {
		resp, err := updater.api.OfferMappings(ctx, businessID, market.OfferMappingsParams{
			PageToken: pageToken,
			Limit:     catalogPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list offer mappings: %w", err)
		}

		for _, mapping := range resp.OfferMappings {
			item := CatalogItem{
				SKU:      mapping.Offer.OfferID,
				Name:     mapping.Offer.Name,
				Category: mapping.CategoryName(),
			}
			if mapping.Offer.BasicPrice != nil {
				item.Price = mapping.Offer.BasicPrice.Value
				item.Currency = mapping.Offer.BasicPrice.CurrencyID
			}

			items = append(items, item)
		}

		if updater.conf.Limit > 0 && len(items) >= updater.conf.Limit {
			return items[:updater.conf.Limit], nil
		}

		if resp.Paging.NextPageToken == "" {
			return items, nil
		}

		pageToken = resp.Paging.NextPageToken
	}
}

// campaignCatalog pages the campaign offers into a SKU index carrying the
// current campaign price.
func (updater *PriceUpdater) campaignCatalog(
	ctx context.Context, campaignID int64,
) (map[string]CatalogItem, error) {
	items := make(map[string]CatalogItem)

	var pageToken string

	for {
		resp, err := updater.api.CampaignOffers(ctx, campaignID, market.CampaignOffersParams{
			PageToken: pageToken,
			Limit:     catalogPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list campaign offers: %w", err)
		}

		for _, offer := range resp.Offers {
			item := CatalogItem{SKU: offer.OfferID, Name: offer.Name}

			switch {
			case offer.CampaignPrice != nil:
				item.Price = offer.CampaignPrice.Value
				item.Currency = offer.CampaignPrice.Currency
			case offer.BasicPrice != nil:
				item.Price = offer.BasicPrice.Value
				item.Currency = offer.BasicPrice.CurrencyID
			}

			items[offer.OfferID] = item
		}

		if resp.Paging.NextPageToken == "" {
			return items, nil
		}

		pageToken = resp.Paging.NextPageToken
	}
}
