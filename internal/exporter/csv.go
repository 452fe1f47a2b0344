package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mihalio25/yandex-market-partner-api/internal/updater"
)

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', 2, 64)
}

func writeAll(w io.Writer, name string, header []string, records [][]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write %s csv: %w", name, err)
	}

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write %s csv: %w", name, err)
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("write %s csv: %w", name, err)
	}

	return nil
}

func WriteProductsCSV(w io.Writer, rows []ProductRow) error {
	header := []string{"sku", "name", "vendor", "category", "price", "currency", "card_status", "issues"}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			row.SKU,
			row.Name,
			row.Vendor,
			row.Category,
			formatPrice(row.Price),
			row.Currency,
			row.CardStatus,
			row.Issues,
		})
	}

	return writeAll(w, "products", header, records)
}

func WriteOrdersCSV(w io.Writer, rows []OrderRow) error {
	header := []string{
		"id", "created", "status", "substatus", "payment_type", "payment_method",
		"total", "currency", "items", "buyer", "region",
	}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			strconv.FormatInt(row.ID, 10),
			row.Created,
			string(row.Status),
			row.Substatus,
			string(row.PaymentType),
			string(row.PaymentMethod),
			formatPrice(row.Total),
			row.Currency,
			strconv.Itoa(row.Items),
			row.Buyer,
			row.Region,
		})
	}

	return writeAll(w, "orders", header, records)
}

func WriteChangesCSV(w io.Writer, changes []updater.Change) error {
	header := []string{"sku", "name", "old_price", "new_price", "reason", "status"}

	records := make([][]string, 0, len(changes))
	for _, change := range changes {
		records = append(records, []string{
			change.SKU,
			change.Name,
			formatPrice(change.OldPrice),
			formatPrice(change.NewPrice),
			change.Reason,
			string(change.Status),
		})
	}

	return writeAll(w, "changes", header, records)
}

func WriteStockChangesCSV(w io.Writer, changes []updater.StockChange) error {
	header := []string{"sku", "warehouse_id", "old_count", "new_count", "status"}

	records := make([][]string, 0, len(changes))
	for _, change := range changes {
		records = append(records, []string{
			change.SKU,
			strconv.FormatInt(change.WarehouseID, 10),
			strconv.FormatInt(change.OldCount, 10),
			strconv.FormatInt(change.NewCount, 10),
			string(change.Status),
		})
	}

	return writeAll(w, "stock changes", header, records)
}
