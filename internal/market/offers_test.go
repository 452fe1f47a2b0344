package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

func TestClient_OfferMappings(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/businesses/789/offer-mappings", r.URL.Path)
		assert.Equal(t, "token-1", r.URL.Query().Get("page_token"))
		assert.Equal(t, "200", r.URL.Query().Get("limit"))

		fmt.Fprint(w, `{"status":"OK","result":{"offerMappings":[{"offer":{"offerId":"sku-1","name":"Widget","basicPrice":{"value":990,"currencyId":"RUR"}},"mapping":{"marketCategoryName":"Widgets"}}],"paging":{"nextPageToken":"token-2"}}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	resp, err := cli.OfferMappings(context.Background(), 789, OfferMappingsParams{PageToken: "token-1", Limit: 200})
	require.NoError(t, err)

	assert.Equal(t, &OfferMappingsResponse{
		OfferMappings: []model.OfferMapping{
			{
				Offer: model.Offer{
					OfferID:    "sku-1",
					Name:       "Widget",
					BasicPrice: &model.BasicPrice{Value: 990, CurrencyID: CurrencyRUR},
				},
				Mapping: &model.Mapping{MarketCategoryName: "Widgets"},
			},
		},
		Paging: Paging{NextPageToken: "token-2"},
	}, resp)
}

func TestClient_OfferMappings_Filter(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			OfferIDs []string `json:"offerIds"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"sku-1", "sku-2"}, body.OfferIDs)

		fmt.Fprint(w, `{"status":"OK","result":{"offerMappings":[]}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	_, err := cli.OfferMappings(context.Background(), 789, OfferMappingsParams{OfferIDs: []string{"sku-1", "sku-2"}})
	require.NoError(t, err)
}

func TestClient_CampaignOffers(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaigns/123/offers", r.URL.Path)

		fmt.Fprint(w, `{"status":"OK","result":{"offers":[{"offerId":"sku-1","campaignPrice":{"value":1290,"currency":"RUR"},"status":"PUBLISHED"}],"paging":{}}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	resp, err := cli.CampaignOffers(context.Background(), 123, CampaignOffersParams{})
	require.NoError(t, err)

	require.Len(t, resp.Offers, 1)
	assert.Equal(t, "sku-1", resp.Offers[0].OfferID)
	assert.Equal(t, &model.CampaignPrice{Value: 1290, Currency: CurrencyRUR}, resp.Offers[0].CampaignPrice)
	assert.Equal(t, "PUBLISHED", resp.Offers[0].Status)
}

func TestClient_OfferPrices(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaigns/123/offer-prices", r.URL.Path)

		fmt.Fprint(w, `{"status":"OK","result":{"offers":[{"offerId":"sku-1","price":{"value":990,"currencyId":"RUR"}}],"paging":{"nextPageToken":"next"}}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	resp, err := cli.OfferPrices(context.Background(), 123, "", 100)
	require.NoError(t, err)

	assert.Equal(t, &OfferPricesResponse{
		Offers: []OfferPrice{{OfferID: "sku-1", Price: Price{Value: 990, CurrencyID: CurrencyRUR}}},
		Paging: Paging{NextPageToken: "next"},
	}, resp)
}

func TestClient_UpdatePrices(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaigns/123/offer-prices/updates", r.URL.Path)

		var body struct {
			Offers []PriceUpdate `json:"offers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []PriceUpdate{
			{OfferID: "sku-1", Price: Price{Value: 1049.99, CurrencyID: CurrencyRUR}},
		}, body.Offers)

		fmt.Fprint(w, `{"status":"OK"}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	err := cli.UpdatePrices(context.Background(), 123, []PriceUpdate{
		{OfferID: "sku-1", Price: Price{Value: 1049.99, CurrencyID: CurrencyRUR}},
	})
	assert.NoError(t, err)
}

func TestClient_UpdateBusinessPrices(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/businesses/789/offer-prices/updates", r.URL.Path)

		var body struct {
			Offers []BusinessPriceUpdate `json:"offers"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Offers, 1)
		assert.Equal(t, "sku-1", body.Offers[0].OfferID)

		fmt.Fprint(w, `{"status":"OK"}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	err := cli.UpdateBusinessPrices(context.Background(), 789, []BusinessPriceUpdate{
		{OfferID: "sku-1", Price: Price{Value: 990, CurrencyID: CurrencyRUR}},
	})
	assert.NoError(t, err)
}

func TestClient_UpdateStocks(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/campaigns/123/offers/stocks", r.URL.Path)

		var body struct {
			SKUs []StockUpdate `json:"skus"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []StockUpdate{
			{SKU: "sku-1", Items: []StockItem{{Count: 25}}},
		}, body.SKUs)

		fmt.Fprint(w, `{"status":"OK"}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	err := cli.UpdateStocks(context.Background(), 123, []StockUpdate{
		{SKU: "sku-1", Items: []StockItem{{Count: 25}}},
	})
	assert.NoError(t, err)
}

func TestClient_WarehouseStocks(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/campaigns/123/offers/stocks", r.URL.Path)

		fmt.Fprint(w, `{"status":"OK","result":{"warehouses":[{"warehouseId":7,"offers":[{"offerId":"sku-1","stocks":[{"type":"FIT","count":10}]}]}],"paging":{}}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	resp, err := cli.WarehouseStocks(context.Background(), 123, StocksParams{WithTurnover: true})
	require.NoError(t, err)

	assert.Equal(t, &WarehouseStocksResponse{
		Warehouses: []model.WarehouseStocks{
			{
				WarehouseID: 7,
				Offers: []model.OfferStocks{
					{OfferID: "sku-1", Stocks: []model.StockCount{{Type: model.StockTypeFit, Count: 10}}},
				},
			},
		},
	}, resp)
}

func TestClient_HiddenOffers(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/campaigns/123/hidden-offers", r.URL.Path)
			fmt.Fprint(w, `{"status":"OK","result":{"hiddenOffers":[{"offerId":"sku-1"}],"paging":{}}}`)
		case http.MethodPost:
			var body struct {
				HiddenOffers []HiddenOffer `json:"hiddenOffers"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, []HiddenOffer{{OfferID: "sku-2"}}, body.HiddenOffers)
			fmt.Fprint(w, `{"status":"OK"}`)
		}
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	resp, err := cli.HiddenOffers(context.Background(), 123, "", 0)
	require.NoError(t, err)
	assert.Equal(t, []HiddenOffer{{OfferID: "sku-1"}}, resp.HiddenOffers)

	assert.NoError(t, cli.AddHiddenOffers(context.Background(), 123, []string{"sku-2"}))
	assert.NoError(t, cli.DeleteHiddenOffers(context.Background(), 123, []string{"sku-2"}))
}
