package sandbox

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

// ReportCSV renders the report body for a finished job. Only the types the
// toolkit downloads get real rows, the rest produce a stub with the job
// metadata.
func (store *Store) ReportCSV(reportID string) ([]byte, bool) {
	value, ok := store.reports.Get(reportID)
	if !ok {
		return nil, false
	}

	job := value.(reportJob)

	store.mu.RLock()
	defer store.mu.RUnlock()

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch job.Type {
	case model.ReportPrices:
		writer.Write([]string{"sku", "name", "price", "currency"})
		for _, mapping := range store.offers {
			if mapping.Offer.BasicPrice == nil {
				continue
			}

			writer.Write([]string{
				mapping.Offer.OfferID,
				mapping.Offer.Name,
				strconv.FormatFloat(mapping.Offer.BasicPrice.Value, 'f', 2, 64),
				mapping.Offer.BasicPrice.CurrencyID,
			})
		}
	case model.ReportUnitedOrders:
		writer.Write([]string{"id", "campaign_id", "status", "payment_type", "payment_method", "total"})
		for _, campaign := range store.campaigns {
			for _, order := range store.orders[campaign.ID] {
				writer.Write([]string{
					strconv.FormatInt(order.ID, 10),
					strconv.FormatInt(campaign.ID, 10),
					string(order.Status),
					string(order.PaymentType),
					string(order.PaymentMethod),
					strconv.FormatFloat(order.Total(), 'f', 2, 64),
				})
			}
		}
	case model.ReportStocksOnWarehouses:
		writer.Write([]string{"warehouse_id", "sku", "type", "count"})
		for _, campaign := range store.campaigns {
			for _, warehouse := range store.stocks[campaign.ID] {
				for _, offer := range warehouse.Offers {
					for _, stock := range offer.Stocks {
						writer.Write([]string{
							strconv.FormatInt(warehouse.WarehouseID, 10),
							offer.OfferID,
							string(stock.Type),
							strconv.FormatInt(stock.Count, 10),
						})
					}
				}
			}
		}
	default:
		writer.Write([]string{"report_id", "type", "generated_at"})
		writer.Write([]string{job.ID, string(job.Type), store.now().UTC().Format(time.RFC3339)})
	}

	writer.Flush()
	if writer.Error() != nil {
		return nil, false
	}

	return buf.Bytes(), true
}
