package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

type DeliveryService struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type TariffsParams struct {
	CampaignID     int64         `json:"campaignId,omitempty"`
	SellingProgram string        `json:"sellingProgram,omitempty"`
	Frequency      string        `json:"frequency,omitempty"`
	Offers         []TariffOffer `json:"offers"`
}

type TariffOffer struct {
	CategoryID int64   `json:"categoryId,omitempty"`
	Price      float64 `json:"price"`
	Length     float64 `json:"length,omitempty"`
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	Weight     float64 `json:"weight,omitempty"`
	Quantity   int     `json:"quantity,omitempty"`
}

type Tariff struct {
	Type       string  `json:"type,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Currency   string  `json:"currency,omitempty"`
	Parameters []struct {
		Name  string `json:"name,omitempty"`
		Value string `json:"value,omitempty"`
	} `json:"parameters,omitempty"`
}

type TariffedOffer struct {
	Offer   TariffOffer `json:"offer"`
	Tariffs []Tariff    `json:"tariffs,omitempty"`
}

type TariffsResponse struct {
	Offers []TariffedOffer `json:"offers"`
}

func (cli *Client) SearchRegions(ctx context.Context, name string) ([]model.Region, error) {
	query := url.Values{}
	query.Set("name", name)

	var resp struct {
		Regions []model.Region `json:"regions"`
	}

	if err := cli.do(ctx, http.MethodGet, "/regions", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("search regions: %w", err)
	}

	return resp.Regions, nil
}

func (cli *Client) DeliveryServices(ctx context.Context) ([]DeliveryService, error) {
	var resp struct {
		Result struct {
			DeliveryService []DeliveryService `json:"deliveryService"`
		} `json:"result"`
	}

	if err := cli.do(ctx, http.MethodGet, "/delivery/services", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("list delivery services: %w", err)
	}

	return resp.Result.DeliveryService, nil
}

func (cli *Client) CalculateTariffs(ctx context.Context, params TariffsParams) (*TariffsResponse, error) {
	body := struct {
		Parameters TariffsParams `json:"parameters"`
	}{Parameters: params}

	var resp TariffsResponse
	if err := cli.doResult(ctx, http.MethodPost, "/tariffs/calculate", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("calculate tariffs: %w", err)
	}

	return &resp, nil
}
