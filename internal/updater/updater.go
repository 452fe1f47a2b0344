package updater

import (
	"strings"
	"time"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

const updaterTracer = "mihalio25/yandex-market-partner-api/updater"

// catalogPageSize is the page size used when walking catalogs and stocks.
const catalogPageSize = 200

// priceEpsilon is the smallest price difference worth sending. Anything
// below one kopeck is treated as unchanged.
const priceEpsilon = 0.01

// Config controls batching and pacing shared by all updaters.
type Config struct {
	// BatchSize is the number of items per update request.
	BatchSize int
	// Delay is slept between consecutive update requests.
	Delay time.Duration
	// DryRun plans changes without sending any update request.
	DryRun bool
	// Limit caps the number of catalog items examined. Zero means all.
	Limit int
}

func (conf Config) normalized() Config {
	if conf.BatchSize <= 0 {
		conf.BatchSize = 1
	}

	return conf
}

type Stats struct {
	Total   int
	Updated int
	Skipped int
	Errors  int
}

type ChangeStatus string

const (
	ChangeUpdated ChangeStatus = "updated"
	ChangePlanned ChangeStatus = "planned"
	ChangeSkipped ChangeStatus = "skipped"
	ChangeFailed  ChangeStatus = "failed"
)

// Change records one price decision for the change log.
type Change struct {
	SKU      string
	Name     string
	OldPrice float64
	NewPrice float64
	Reason   string
	Status   ChangeStatus
}

// StockChange records one stock decision for the change log.
type StockChange struct {
	SKU         string
	WarehouseID int64
	OldCount    int64
	NewCount    int64
	Status      ChangeStatus
}

// StatusChange records one order status transition.
type StatusChange struct {
	OrderID int64
	From    model.OrderStatus
	To      model.OrderStatus
	Note    string
	Status  ChangeStatus
}

// CatalogItem is the flattened catalog row updaters and filters work on.
type CatalogItem struct {
	SKU      string
	Name     string
	Category string
	Price    float64
	Currency string
}

// Filters narrow the set of catalog items an updater touches. Zero values
// mean no restriction. Category and Name match case-insensitive substrings.
type Filters struct {
	MinPrice    float64
	MaxPrice    float64
	Category    string
	Name        string
	ExcludeSKUs []string
}

func (filters Filters) Match(item CatalogItem) bool {
	if filters.MinPrice > 0 && item.Price < filters.MinPrice {
		return false
	}

	if filters.MaxPrice > 0 && item.Price > filters.MaxPrice {
		return false
	}

	if filters.Category != "" &&
		!strings.Contains(strings.ToLower(item.Category), strings.ToLower(filters.Category)) {
		return false
	}

	if filters.Name != "" &&
		!strings.Contains(strings.ToLower(item.Name), strings.ToLower(filters.Name)) {
		return false
	}

	return !filters.Excluded(item.SKU)
}

func (filters Filters) Excluded(sku string) bool {
	for _, excluded := range filters.ExcludeSKUs {
		if excluded == sku {
			return true
		}
	}

	return false
}

// forEachBatch walks [0, total) in chunks of size, sleeping delay between
// consecutive calls.
func forEachBatch(total, size int, delay time.Duration, fn func(start, end int)) {
	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}

		if start > 0 && delay > 0 {
			time.Sleep(delay)
		}

		fn(start, end)
	}
}
