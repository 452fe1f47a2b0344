package exporter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

const exporterTracer = "mihalio25/yandex-market-partner-api/exporter"

const (
	catalogPageSize = 200
	orderPageSize   = 50
)

// Options control a product export.
type Options struct {
	// Detailed merges campaign-level prices, statuses and issues into the
	// rows with extra requests.
	Detailed bool
	// Limit caps the number of rows. Zero means all.
	Limit int
}

type ProductRow struct {
	SKU        string
	Name       string
	Vendor     string
	Category   string
	Price      float64
	Currency   string
	CardStatus string
	Issues     string
}

type OrderRow struct {
	ID            int64
	Created       string
	Status        model.OrderStatus
	Substatus     string
	PaymentType   model.PaymentType
	PaymentMethod model.PaymentMethod
	Total         float64
	Currency      string
	Items         int
	Buyer         string
	Region        string
}

// Filename builds the timestamped name export files are written under.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("20060102_150405"))
}

// Products pages the business catalog behind the campaign into flat rows.
func Products(ctx context.Context, api market.API, campaignID int64, opts Options) ([]ProductRow, error) {
	tr := otel.Tracer(exporterTracer)
	ctx, span := tr.Start(ctx, "Export Products")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("campaign_id", campaignID),
		attribute.Bool("detailed", opts.Detailed),
	)

	campaign, err := api.Campaign(ctx, campaignID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, fmt.Errorf("resolve campaign: %w", err)
	}

	if campaign.Business == nil || campaign.Business.ID == 0 {
		span.SetStatus(codes.Error, market.ErrNoBusiness.Error())

		return nil, fmt.Errorf("resolve campaign: %w", market.ErrNoBusiness)
	}

	rows, err := productRows(ctx, api, campaign.Business.ID, opts.Limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	if opts.Detailed && len(rows) > 0 {
		if err := mergeCampaignOffers(ctx, api, campaignID, rows); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return nil, err
		}
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))

	return rows, nil
}

func productRows(ctx context.Context, api market.API, businessID int64, limit int) ([]ProductRow, error) {
	var (
		rows      []ProductRow
		pageToken string
	)

	for {
		resp, err := api.OfferMappings(ctx, businessID, market.OfferMappingsParams{
			PageToken: pageToken,
			Limit:     catalogPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("list offer mappings: %w", err)
		}

		for _, mapping := range resp.OfferMappings {
			row := ProductRow{
				SKU:        mapping.Offer.OfferID,
				Name:       mapping.Offer.Name,
				Vendor:     mapping.Offer.Vendor,
				Category:   mapping.CategoryName(),
				CardStatus: mapping.Offer.CardStatus,
			}
			if mapping.Offer.BasicPrice != nil {
				row.Price = mapping.Offer.BasicPrice.Value
				row.Currency = mapping.Offer.BasicPrice.CurrencyID
			}

			rows = append(rows, row)
		}

		if limit > 0 && len(rows) >= limit {
			return rows[:limit], nil
		}

		if resp.Paging.NextPageToken == "" {
			return rows, nil
		}

		pageToken = resp.Paging.NextPageToken
	}
}

// mergeCampaignOffers overlays campaign prices, offer statuses and issue
// summaries onto the rows, requesting them in SKU blocks.
func mergeCampaignOffers(ctx context.Context, api market.API, campaignID int64, rows []ProductRow) error {
	index := make(map[string]int, len(rows))
	skus := make([]string, 0, len(rows))

	for i, row := range rows {
		index[row.SKU] = i
		skus = append(skus, row.SKU)
	}

	for start := 0; start < len(skus); start += catalogPageSize {
		end := start + catalogPageSize
		if end > len(skus) {
			end = len(skus)
		}

		resp, err := api.CampaignOffers(ctx, campaignID, market.CampaignOffersParams{
			OfferIDs: skus[start:end],
			Limit:    catalogPageSize,
		})
		if err != nil {
			return fmt.Errorf("list campaign offers: %w", err)
		}

		for _, offer := range resp.Offers {
			i, ok := index[offer.OfferID]
			if !ok {
				continue
			}

			if offer.CampaignPrice != nil {
				rows[i].Price = offer.CampaignPrice.Value
				rows[i].Currency = offer.CampaignPrice.Currency
			}

			if offer.Status != "" {
				rows[i].CardStatus = offer.Status
			}

			rows[i].Issues = issueSummary(offer)
		}
	}

	return nil
}

func issueSummary(offer model.CampaignOffer) string {
	parts := make([]string, 0, len(offer.Errors)+len(offer.Warnings))

	for _, issue := range offer.Errors {
		parts = append(parts, issue.Message)
	}

	for _, issue := range offer.Warnings {
		parts = append(parts, issue.Message)
	}

	return strings.Join(parts, "; ")
}

// Orders pages every order matching the params into flat rows.
func Orders(ctx context.Context, api market.API, campaignID int64, params market.OrderListParams) ([]OrderRow, error) {
	tr := otel.Tracer(exporterTracer)
	ctx, span := tr.Start(ctx, "Export Orders")
	defer span.End()

	span.SetAttributes(attribute.Int64("campaign_id", campaignID))

	if params.PageSize <= 0 {
		params.PageSize = orderPageSize
	}

	var rows []OrderRow

	for page := 1; ; page++ {
		params.Page = page

		resp, err := api.Orders(ctx, campaignID, params)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())

			return nil, fmt.Errorf("list orders: %w", err)
		}

		for _, order := range resp.Orders {
			rows = append(rows, orderRow(order))
		}

		if resp.Pager == nil || page >= resp.Pager.PagesCount || len(resp.Orders) == 0 {
			break
		}
	}

	span.SetAttributes(attribute.Int("rows", len(rows)))

	return rows, nil
}

func orderRow(order model.Order) OrderRow {
	row := OrderRow{
		ID:            order.ID,
		Created:       order.CreationDate,
		Status:        order.Status,
		Substatus:     order.Substatus,
		PaymentType:   order.PaymentType,
		PaymentMethod: order.PaymentMethod,
		Total:         order.Total(),
		Currency:      order.Currency,
		Items:         order.ItemCount(),
	}

	if order.Buyer != nil {
		row.Buyer = buyerName(*order.Buyer)
	}

	if order.Delivery != nil && order.Delivery.Region != nil {
		row.Region = order.Delivery.Region.Name
	}

	return row
}

func buyerName(buyer model.Buyer) string {
	parts := make([]string, 0, 3)

	for _, part := range []string{buyer.LastName, buyer.FirstName, buyer.MiddleName} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, " ")
}

// PaymentBucket aggregates orders sharing a payment method.
type PaymentBucket struct {
	Count int
	Total float64
}

// SummarizeByPayment groups rows by payment method. Values outside the known
// set land in the UNKNOWN bucket.
func SummarizeByPayment(rows []OrderRow) map[model.PaymentMethod]PaymentBucket {
	buckets := make(map[model.PaymentMethod]PaymentBucket)

	for _, row := range rows {
		method := model.ParsePaymentMethod(string(row.PaymentMethod))

		bucket := buckets[method]
		bucket.Count++
		bucket.Total += row.Total
		buckets[method] = bucket
	}

	return buckets
}
