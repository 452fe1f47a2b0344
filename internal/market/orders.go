package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

type OrderListParams struct {
	Status    model.OrderStatus
	Substatus string
	FromDate  time.Time
	ToDate    time.Time
	Page      int
	PageSize  int
	Fake      bool
}

func (params OrderListParams) query() url.Values {
	query := url.Values{}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.Substatus != "" {
		query.Set("substatus", params.Substatus)
	}
	if !params.FromDate.IsZero() {
		query.Set("fromDate", params.FromDate.Format(QueryDateFormat))
	}
	if !params.ToDate.IsZero() {
		query.Set("toDate", params.ToDate.Format(QueryDateFormat))
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(params.PageSize))
	}
	if params.Fake {
		query.Set("fake", "true")
	}

	return query
}

type OrdersResponse struct {
	Orders model.Orders `json:"orders"`
	Pager  *Pager       `json:"pager,omitempty"`
}

func (cli *Client) Orders(ctx context.Context, campaignID int64, params OrderListParams) (*OrdersResponse, error) {
	var resp OrdersResponse

	path := fmt.Sprintf("/campaigns/%d/orders", campaignID)
	if err := cli.do(ctx, http.MethodGet, path, params.query(), nil, &resp); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return &resp, nil
}

func (cli *Client) Order(ctx context.Context, campaignID, orderID int64) (*model.Order, error) {
	var resp struct {
		Order model.Order `json:"order"`
	}

	path := fmt.Sprintf("/campaigns/%d/orders/%d", campaignID, orderID)
	if err := cli.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return &resp.Order, nil
}

func (cli *Client) UpdateOrderStatus(ctx context.Context, campaignID, orderID int64, status model.OrderStatus, substatus string) (*model.Order, error) {
	type orderStatus struct {
		Status    model.OrderStatus `json:"status"`
		Substatus string            `json:"substatus,omitempty"`
	}

	body := struct {
		Order orderStatus `json:"order"`
	}{Order: orderStatus{Status: status, Substatus: substatus}}

	var resp struct {
		Order model.Order `json:"order"`
	}

	path := fmt.Sprintf("/campaigns/%d/orders/%d/status", campaignID, orderID)
	if err := cli.do(ctx, http.MethodPut, path, nil, body, &resp); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	return &resp.Order, nil
}

func (cli *Client) AcceptOrderCancellation(ctx context.Context, campaignID, orderID int64, accepted bool) error {
	body := struct {
		Accepted bool `json:"accepted"`
	}{Accepted: accepted}

	path := fmt.Sprintf("/campaigns/%d/orders/%d/cancellation/accept", campaignID, orderID)
	if err := cli.do(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("accept order cancellation: %w", err)
	}

	return nil
}

func (cli *Client) OrderBuyer(ctx context.Context, campaignID, orderID int64) (*model.Buyer, error) {
	var resp model.Buyer

	path := fmt.Sprintf("/campaigns/%d/orders/%d/buyer", campaignID, orderID)
	if err := cli.doResult(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get order buyer: %w", err)
	}

	return &resp, nil
}
