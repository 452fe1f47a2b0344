package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

type OfferMappingsParams struct {
	PageToken   string
	Limit       int
	OfferIDs    []string
	CategoryIDs []int64
}

type OfferMappingsResponse struct {
	OfferMappings []model.OfferMapping `json:"offerMappings"`
	Paging        Paging               `json:"paging,omitempty"`
}

type CampaignOffersParams struct {
	PageToken string
	Limit     int
	OfferIDs  []string
	Statuses  []string
}

type CampaignOffersResponse struct {
	Offers []model.CampaignOffer `json:"offers"`
	Paging Paging                `json:"paging,omitempty"`
}

type OfferPrice struct {
	OfferID string `json:"offerId"`
	Price   Price  `json:"price"`
}

type OfferPricesResponse struct {
	Offers []OfferPrice `json:"offers"`
	Paging Paging       `json:"paging,omitempty"`
}

type Price struct {
	Value        float64 `json:"value"`
	CurrencyID   string  `json:"currencyId"`
	DiscountBase float64 `json:"discountBase,omitempty"`
}

// PriceUpdate sets a campaign-level price for one offer.
type PriceUpdate struct {
	OfferID string `json:"offerId"`
	Price   Price  `json:"price"`
}

// BusinessPriceUpdate sets the basic price shared by every campaign of the
// business.
type BusinessPriceUpdate struct {
	OfferID string `json:"offerId"`
	Price   Price  `json:"price"`
}

type StockItem struct {
	Count     int64  `json:"count"`
	Type      string `json:"type,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type StockUpdate struct {
	SKU         string      `json:"sku"`
	WarehouseID int64       `json:"warehouseId,omitempty"`
	Items       []StockItem `json:"items"`
}

type StocksParams struct {
	PageToken    string
	Limit        int
	WithTurnover bool
	Archived     bool
	OfferIDs     []string
}

type WarehouseStocksResponse struct {
	Warehouses []model.WarehouseStocks `json:"warehouses"`
	Paging     Paging                  `json:"paging,omitempty"`
}

type HiddenOffer struct {
	OfferID string `json:"offerId"`
}

type HiddenOffersResponse struct {
	HiddenOffers []HiddenOffer `json:"hiddenOffers"`
	Paging       Paging        `json:"paging,omitempty"`
}

func pageQuery(pageToken string, limit int) url.Values {
	query := url.Values{}
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	return query
}

func (cli *Client) OfferMappings(ctx context.Context, businessID int64, params OfferMappingsParams) (*OfferMappingsResponse, error) {
	body := struct {
		OfferIDs    []string `json:"offerIds,omitempty"`
		CategoryIDs []int64  `json:"categoryIds,omitempty"`
	}{OfferIDs: params.OfferIDs, CategoryIDs: params.CategoryIDs}

	var resp OfferMappingsResponse

	path := fmt.Sprintf("/businesses/%d/offer-mappings", businessID)
	if err := cli.doResult(ctx, http.MethodPost, path, pageQuery(params.PageToken, params.Limit), body, &resp); err != nil {
		return nil, fmt.Errorf("list offer mappings: %w", err)
	}

	return &resp, nil
}

func (cli *Client) UpdateOfferMappings(ctx context.Context, businessID int64, mappings []model.OfferMapping) error {
	body := struct {
		OfferMappings []model.OfferMapping `json:"offerMappings"`
	}{OfferMappings: mappings}

	path := fmt.Sprintf("/businesses/%d/offer-mappings/update", businessID)
	if err := cli.doResult(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("update offer mappings: %w", err)
	}

	return nil
}

func (cli *Client) CampaignOffers(ctx context.Context, campaignID int64, params CampaignOffersParams) (*CampaignOffersResponse, error) {
	body := struct {
		OfferIDs []string `json:"offerIds,omitempty"`
		Statuses []string `json:"statuses,omitempty"`
	}{OfferIDs: params.OfferIDs, Statuses: params.Statuses}

	var resp CampaignOffersResponse

	path := fmt.Sprintf("/campaigns/%d/offers", campaignID)
	if err := cli.doResult(ctx, http.MethodPost, path, pageQuery(params.PageToken, params.Limit), body, &resp); err != nil {
		return nil, fmt.Errorf("list campaign offers: %w", err)
	}

	return &resp, nil
}

func (cli *Client) OfferPrices(ctx context.Context, campaignID int64, pageToken string, limit int) (*OfferPricesResponse, error) {
	var resp OfferPricesResponse

	path := fmt.Sprintf("/campaigns/%d/offer-prices", campaignID)
	if err := cli.doResult(ctx, http.MethodGet, path, pageQuery(pageToken, limit), nil, &resp); err != nil {
		return nil, fmt.Errorf("list offer prices: %w", err)
	}

	return &resp, nil
}

func (cli *Client) UpdatePrices(ctx context.Context, campaignID int64, updates []PriceUpdate) error {
	body := struct {
		Offers []PriceUpdate `json:"offers"`
	}{Offers: updates}

	path := fmt.Sprintf("/campaigns/%d/offer-prices/updates", campaignID)
	if err := cli.doResult(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("update prices: %w", err)
	}

	return nil
}

func (cli *Client) UpdateBusinessPrices(ctx context.Context, businessID int64, updates []BusinessPriceUpdate) error {
	body := struct {
		Offers []BusinessPriceUpdate `json:"offers"`
	}{Offers: updates}

	path := fmt.Sprintf("/businesses/%d/offer-prices/updates", businessID)
	if err := cli.doResult(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("update business prices: %w", err)
	}

	return nil
}

func (cli *Client) UpdateStocks(ctx context.Context, campaignID int64, updates []StockUpdate) error {
	body := struct {
		SKUs []StockUpdate `json:"skus"`
	}{SKUs: updates}

	path := fmt.Sprintf("/campaigns/%d/offers/stocks", campaignID)
	if err := cli.do(ctx, http.MethodPut, path, nil, body, nil); err != nil {
		return fmt.Errorf("update stocks: %w", err)
	}

	return nil
}

func (cli *Client) WarehouseStocks(ctx context.Context, campaignID int64, params StocksParams) (*WarehouseStocksResponse, error) {
	body := struct {
		WithTurnover bool     `json:"withTurnover,omitempty"`
		Archived     bool     `json:"archived,omitempty"`
		OfferIDs     []string `json:"offerIds,omitempty"`
	}{WithTurnover: params.WithTurnover, Archived: params.Archived, OfferIDs: params.OfferIDs}

	var resp WarehouseStocksResponse

	path := fmt.Sprintf("/campaigns/%d/offers/stocks", campaignID)
	if err := cli.doResult(ctx, http.MethodPost, path, pageQuery(params.PageToken, params.Limit), body, &resp); err != nil {
		return nil, fmt.Errorf("list warehouse stocks: %w", err)
	}

	return &resp, nil
}

func (cli *Client) HiddenOffers(ctx context.Context, campaignID int64, pageToken string, limit int) (*HiddenOffersResponse, error) {
	var resp HiddenOffersResponse

	path := fmt.Sprintf("/campaigns/%d/hidden-offers", campaignID)
	if err := cli.doResult(ctx, http.MethodGet, path, pageQuery(pageToken, limit), nil, &resp); err != nil {
		return nil, fmt.Errorf("list hidden offers: %w", err)
	}

	return &resp, nil
}

func (cli *Client) AddHiddenOffers(ctx context.Context, campaignID int64, offerIDs []string) error {
	body := struct {
		HiddenOffers []HiddenOffer `json:"hiddenOffers"`
	}{HiddenOffers: toHiddenOffers(offerIDs)}

	path := fmt.Sprintf("/campaigns/%d/hidden-offers", campaignID)
	if err := cli.doResult(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("add hidden offers: %w", err)
	}

	return nil
}

func (cli *Client) DeleteHiddenOffers(ctx context.Context, campaignID int64, offerIDs []string) error {
	body := struct {
		HiddenOffers []HiddenOffer `json:"hiddenOffers"`
	}{HiddenOffers: toHiddenOffers(offerIDs)}

	path := fmt.Sprintf("/campaigns/%d/hidden-offers/delete", campaignID)
	if err := cli.doResult(ctx, http.MethodPost, path, nil, body, nil); err != nil {
		return fmt.Errorf("delete hidden offers: %w", err)
	}

	return nil
}

func toHiddenOffers(offerIDs []string) []HiddenOffer {
	hidden := make([]HiddenOffer, 0, len(offerIDs))
	for _, offerID := range offerIDs {
		hidden = append(hidden, HiddenOffer{OfferID: offerID})
	}

	return hidden
}
