package market

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/semaphore"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
)

// QueryDateFormat is the dd-MM-yyyy form the partner API expects in query
// parameters.
const QueryDateFormat = "02-01-2006"

const CurrencyRUR = "RUR"

var ErrInvalidStatusCode = fmt.Errorf("invalid status code")

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// APIError carries the HTTP status and the vendor error payload of a failed
// call. It unwraps to ErrInvalidStatusCode so callers can errors.Is across
// every endpoint.
type APIError struct {
	StatusCode int           `json:"-"`
	Status     string        `json:"status,omitempty"`
	Errors     []ErrorDetail `json:"errors,omitempty"`
	Body       string        `json:"-"`
}

func (err *APIError) Error() string {
	detail := err.Body
	if len(err.Errors) > 0 {
		parts := make([]string, 0, len(err.Errors))
		for _, e := range err.Errors {
			parts = append(parts, fmt.Sprintf("%s: %s", e.Code, e.Message))
		}
		detail = strings.Join(parts, "; ")
	}

	if detail == "" {
		return fmt.Sprintf("request failed: %v (%d)", ErrInvalidStatusCode, err.StatusCode)
	}

	return fmt.Sprintf("request failed: %v (%d): %s", ErrInvalidStatusCode, err.StatusCode, detail)
}

func (err *APIError) Unwrap() error {
	return ErrInvalidStatusCode
}

// Pager is the page-number paging block of the older endpoints.
type Pager struct {
	Total       int `json:"total,omitempty"`
	From        int `json:"from,omitempty"`
	To          int `json:"to,omitempty"`
	CurrentPage int `json:"currentPage,omitempty"`
	PagesCount  int `json:"pagesCount,omitempty"`
	PageSize    int `json:"pageSize,omitempty"`
}

// Paging is the token paging block of the newer endpoints.
type Paging struct {
	NextPageToken string `json:"nextPageToken,omitempty"`
	PrevPageToken string `json:"prevPageToken,omitempty"`
}

// Client issues paced, authenticated requests against the partner API. One
// logical operation issues exactly one HTTP request: there is no retry.
type Client struct {
	cli        *http.Client
	baseURL    string
	authHeader string
	authValue  string
	lock       *semaphore.Weighted
	interval   time.Duration
}

var _ API = (*Client)(nil)

func getTracer() trace.Tracer {
	return otel.Tracer("mihalio25/yandex-market-partner-api/market")
}

func NewClient(cli *http.Client, conf *config.APIConfig) (*Client, error) {
	header, value, credErr := conf.Credential()
	if credErr != nil {
		return nil, fmt.Errorf("new client: %w", credErr)
	}

	maxConcurrency := conf.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	return &Client{
		cli:        cli,
		baseURL:    strings.TrimRight(conf.BaseURL, "/"),
		authHeader: header,
		authValue:  value,
		lock:       semaphore.NewWeighted(maxConcurrency),
		interval:   conf.RequestInterval,
	}, nil
}

func (cli *Client) do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	if cli.lock.Acquire(ctx, 1) == nil {
		defer func() {
			time.Sleep(cli.interval)
			cli.lock.Release(1)
		}()
	}

	reqURL := cli.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("marshal request: %w", marshalErr)
		}

		reqBody = bytes.NewReader(data)
	}

	req, reqErr := http.NewRequest(method, reqURL, reqBody)
	if reqErr != nil {
		return reqErr
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(cli.authHeader, cli.authValue)

	_, span := getTracer().Start(ctx, fmt.Sprintf("%s %s", method, path))
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.url", reqURL),
	)
	defer span.End()

	resp, respErr := cli.cli.Do(req.WithContext(ctx))
	if respErr != nil {
		span.RecordError(respErr)
		span.SetStatus(codes.Error, respErr.Error())

		return fmt.Errorf("send request: %w", respErr)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	data, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		span.RecordError(bodyErr)
		span.SetStatus(codes.Error, bodyErr.Error())

		return fmt.Errorf("read response: %w", bodyErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseAPIError(resp.StatusCode, data)
		span.RecordError(apiErr)
		span.SetStatus(codes.Error, apiErr.Error())

		return apiErr
	}

	if result != nil && len(data) > 0 {
		if unmarshalErr := json.Unmarshal(data, result); unmarshalErr != nil {
			return fmt.Errorf("decode response: %w", unmarshalErr)
		}
	}

	return nil
}

// doResult unwraps the {"status","result"} envelope the newer endpoints use.
func (cli *Client) doResult(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var envelope struct {
		Status string          `json:"status,omitempty"`
		Result json.RawMessage `json:"result,omitempty"`
	}

	if err := cli.do(ctx, method, path, query, body, &envelope); err != nil {
		return err
	}

	if result != nil && len(envelope.Result) > 0 {
		if unmarshalErr := json.Unmarshal(envelope.Result, result); unmarshalErr != nil {
			return fmt.Errorf("decode response: %w", unmarshalErr)
		}
	}

	return nil
}

// fetch downloads a raw resource, usually a generated report file. The file
// URL may point at a storage host outside the API, so auth only goes on
// same-host requests.
func (cli *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if cli.lock.Acquire(ctx, 1) == nil {
		defer func() {
			time.Sleep(cli.interval)
			cli.lock.Release(1)
		}()
	}

	req, reqErr := http.NewRequest(http.MethodGet, rawURL, nil)
	if reqErr != nil {
		return nil, reqErr
	}

	if strings.HasPrefix(rawURL, cli.baseURL) {
		req.Header.Set(cli.authHeader, cli.authValue)
	}

	resp, respErr := cli.cli.Do(req.WithContext(ctx))
	if respErr != nil {
		return nil, fmt.Errorf("send request: %w", respErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch file failed: %w (%d)", ErrInvalidStatusCode, resp.StatusCode)
	}

	data, bodyErr := io.ReadAll(resp.Body)
	if bodyErr != nil {
		return nil, fmt.Errorf("read response: %w", bodyErr)
	}

	return data, nil
}

func parseAPIError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if json.Unmarshal(data, apiErr) != nil || (apiErr.Status == "" && len(apiErr.Errors) == 0) {
		apiErr.Body = strings.TrimSpace(string(data))
	}

	return apiErr
}
