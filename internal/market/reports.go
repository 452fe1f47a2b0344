package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

var (
	ErrReportFailed  = fmt.Errorf("report generation failed")
	ErrReportTimeout = fmt.Errorf("report generation timed out")
)

type ReportParams struct {
	CampaignID int64
	BusinessID int64
	DateFrom   time.Time
	DateTo     time.Time
	Format     model.ReportFormat
}

func (params ReportParams) body() map[string]any {
	body := make(map[string]any)
	if params.CampaignID != 0 {
		body["campaignId"] = params.CampaignID
	}
	if params.BusinessID != 0 {
		body["businessId"] = params.BusinessID
	}
	if !params.DateFrom.IsZero() {
		body["dateFrom"] = params.DateFrom.Format(time.DateOnly)
	}
	if !params.DateTo.IsZero() {
		body["dateTo"] = params.DateTo.Format(time.DateOnly)
	}

	return body
}

// GenerateReport asks for an async report and returns its id. Progress goes
// through ReportInfo.
func (cli *Client) GenerateReport(ctx context.Context, typ model.ReportType, params ReportParams) (string, error) {
	query := url.Values{}
	if params.Format != "" {
		query.Set("format", string(params.Format))
	}

	var resp struct {
		ReportID                string `json:"reportId"`
		EstimatedGenerationTime int64  `json:"estimatedGenerationTime,omitempty"`
	}

	path := fmt.Sprintf("/reports/%s/generate", typ)
	if err := cli.doResult(ctx, http.MethodPost, path, query, params.body(), &resp); err != nil {
		return "", fmt.Errorf("generate report: %w", err)
	}

	return resp.ReportID, nil
}

func (cli *Client) ReportInfo(ctx context.Context, reportID string) (*model.ReportInfo, error) {
	var resp model.ReportInfo

	path := fmt.Sprintf("/reports/info/%s", url.PathEscape(reportID))
	if err := cli.doResult(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get report info: %w", err)
	}

	return &resp, nil
}

func (cli *Client) DownloadReport(ctx context.Context, reportID string) ([]byte, error) {
	info, infoErr := cli.ReportInfo(ctx, reportID)
	if infoErr != nil {
		return nil, infoErr
	}

	if info.Status != model.ReportStatusDone || info.File == "" {
		return nil, fmt.Errorf("download report: %w: status %s", ErrReportFailed, info.Status)
	}

	data, fetchErr := cli.fetch(ctx, info.File)
	if fetchErr != nil {
		return nil, fmt.Errorf("download report: %w", fetchErr)
	}

	return data, nil
}

// WaitReport polls the report info until it reaches a terminal status. It is
// a plain loop, bounded by timeout and the caller's ctx.
func (cli *Client) WaitReport(ctx context.Context, reportID string, pollInterval, timeout time.Duration) (*model.ReportInfo, error) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		info, infoErr := cli.ReportInfo(ctx, reportID)
		if infoErr != nil {
			return nil, infoErr
		}

		if info.Status.Terminal() {
			if info.Status == model.ReportStatusFailed {
				return info, fmt.Errorf("wait report: %w: %s", ErrReportFailed, info.SubStatus)
			}

			return info, nil
		}

		if time.Now().After(deadline) {
			return info, fmt.Errorf("wait report: %w after %s", ErrReportTimeout, timeout)
		}

		select {
		case <-ctx.Done():
			return info, ctx.Err()
		case <-ticker.C:
		}
	}
}
