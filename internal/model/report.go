package model

import (
	"errors"
	"fmt"
	"strings"
)

// ReportType values double as the path segment of the generate endpoint.
type ReportType string

const (
	ReportUnitedOrders       ReportType = "united-orders"
	ReportUnitedReturns      ReportType = "united-returns"
	ReportGoodsTurnover      ReportType = "goods-turnover"
	ReportGoodsRealization   ReportType = "goods-realization"
	ReportStocksOnWarehouses ReportType = "stocks-on-warehouses"
	ReportShowsSales         ReportType = "shows-sales"
	ReportPrices             ReportType = "prices"
)

var ErrUnknownReportType = errors.New("unknown report type")

func ParseReportType(raw string) (ReportType, error) {
	typ := ReportType(strings.ToLower(raw))
	switch typ {
	case ReportUnitedOrders, ReportUnitedReturns, ReportGoodsTurnover,
		ReportGoodsRealization, ReportStocksOnWarehouses, ReportShowsSales,
		ReportPrices:
		return typ, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownReportType, raw)
	}
}

type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "PENDING"
	ReportStatusProcessing ReportStatus = "PROCESSING"
	ReportStatusDone       ReportStatus = "DONE"
	ReportStatusFailed     ReportStatus = "FAILED"
)

func (status ReportStatus) Terminal() bool {
	return status == ReportStatusDone || status == ReportStatusFailed
}

type ReportFormat string

const (
	ReportFormatFile ReportFormat = "FILE"
	ReportFormatCSV  ReportFormat = "CSV"
)

type ReportInfo struct {
	Status                  ReportStatus `json:"status"`
	SubStatus               string       `json:"subStatus,omitempty"`
	GenerationRequestedAt   string       `json:"generationRequestedAt,omitempty"`
	GenerationFinishedAt    string       `json:"generationFinishedAt,omitempty"`
	File                    string       `json:"file,omitempty"`
	EstimatedGenerationTime int64        `json:"estimatedGenerationTime,omitempty"`
}
