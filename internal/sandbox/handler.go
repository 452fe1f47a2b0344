package sandbox

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

func int64Param(req *http.Request, key string) (int64, error) {
	value, err := strconv.ParseInt(chi.URLParam(req, key), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidParams, key)
	}

	return value, nil
}

func pageParams(req *http.Request, fallback int) (string, int, error) {
	query := req.URL.Query()

	limit := fallback
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return "", 0, fmt.Errorf("%w: limit %q", ErrInvalidParams, raw)
		}

		limit = parsed
	}

	return query.Get("page_token"), limit, nil
}

// decodeBody tolerates an empty body, which bare curl calls against the
// POST list endpoints tend to send.
func decodeBody(req *http.Request, target any) error {
	err := json.NewDecoder(req.Body).Decode(target)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	return nil
}

func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidParams):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// @Summary		List campaigns
// @description	list the seeded campaigns
// @Tags			campaigns
// @Produce		json
// @Param			Api-Key	header		string	true	"any non-empty key"
// @Success		200		{object}	market.CampaignsResponse
// @Failure		401		{object}	errResp
// @Router			/campaigns [get]
func getCampaignsHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaigns := store.Campaigns()

		json.NewEncoder(res).Encode(market.CampaignsResponse{
			Campaigns: campaigns,
			Pager: &market.Pager{
				Total:       len(campaigns),
				From:        1,
				To:          len(campaigns),
				CurrentPage: 1,
				PagesCount:  1,
				PageSize:    len(campaigns),
			},
		})
	}
}

// @Summary		Get campaign
// @description	get one campaign by id
// @Tags			campaigns
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Success		200			{object}	campaignResp
// @Failure		404			{object}	errResp
// @Router			/campaigns/{campaignID} [get]
func getCampaignHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		campaign, err := store.Campaign(campaignID)
		if err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		json.NewEncoder(res).Encode(campaignResp{campaign})
	}
}

// @Summary		Get campaign settings
// @Tags			campaigns
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Success		200			{object}	campaignSettingsResp
// @Failure		404			{object}	errResp
// @Router			/campaigns/{campaignID}/settings [get]
func getCampaignSettingsHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		campaign, err := store.Campaign(campaignID)
		if err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		json.NewEncoder(res).Encode(campaignSettingsResp{market.CampaignSettings{
			CountryRegion: 225,
			ShopName:      campaign.Domain,
			IsOnline:      true,
		}})
	}
}

// @Summary		List orders
// @description	list campaign orders, optionally narrowed to one status
// @Tags			orders
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			status		query		string	false	"order status"
// @Param			page		query		int		false	"page number"
// @Param			pageSize	query		int		false	"page size"
// @Success		200			{object}	market.OrdersResponse
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/orders [get]
func listOrdersHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		query := req.URL.Query()

		var status model.OrderStatus
		if raw := query.Get("status"); raw != "" {
			status, err = model.ParseOrderStatus(raw)
			if err != nil {
				writeError(res, http.StatusBadRequest, err)
				return
			}
		}

		page, _ := strconv.Atoi(query.Get("page"))
		pageSize, _ := strconv.Atoi(query.Get("pageSize"))

		orders, pager, err := store.Orders(campaignID, status, page, pageSize)
		if err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("list orders failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		json.NewEncoder(res).Encode(market.OrdersResponse{Orders: orders, Pager: pager})
	}
}

// @Summary		Get order
// @Tags			orders
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			orderID		path		int		true	"order id"
// @Success		200			{object}	orderResp
// @Failure		404			{object}	errResp
// @Router			/campaigns/{campaignID}/orders/{orderID} [get]
func getOrderHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		orderID, err := int64Param(req, "orderID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		order, err := store.Order(campaignID, orderID)
		if err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		json.NewEncoder(res).Encode(orderResp{order})
	}
}

// @Summary		Update order status
// @description	move an order to a new status; terminal orders refuse
// @Tags			orders
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			orderID		path		int		true	"order id"
// @Success		200			{object}	orderResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/orders/{orderID}/status [put]
func updateOrderStatusHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		orderID, err := int64Param(req, "orderID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			Order struct {
				Status    string `json:"status"`
				Substatus string `json:"substatus"`
			} `json:"order"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		status, err := model.ParseOrderStatus(body.Order.Status)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		order, err := store.SetOrderStatus(campaignID, orderID, status, body.Order.Substatus)
		if err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).
				Int64("order_id", orderID).
				Msg("update order status failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		json.NewEncoder(res).Encode(orderResp{order})
	}
}

// @Summary		Get order buyer
// @Tags			orders
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			orderID		path		int		true	"order id"
// @Success		200			{object}	resultResp
// @Failure		404			{object}	errResp
// @Router			/campaigns/{campaignID}/orders/{orderID}/buyer [get]
func getOrderBuyerHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		orderID, err := int64Param(req, "orderID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		order, err := store.Order(campaignID, orderID)
		if err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		buyer := model.Buyer{}
		if order.Buyer != nil {
			buyer = *order.Buyer
		}

		writeResult(res, buyer)
	}
}

// @Summary		List offer mappings
// @description	page through the business catalog
// @Tags			offers
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			businessID	path		int		true	"business id"
// @Param			page_token	query		string	false	"page token"
// @Param			limit		query		int		false	"page size"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/businesses/{businessID}/offer-mappings [post]
func offerMappingsHandler(store *Store, pageSize int) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		businessID, err := int64Param(req, "businessID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		pageToken, limit, err := pageParams(req, pageSize)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			OfferIDs []string `json:"offerIds"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		mappings, next, err := store.OfferMappings(businessID, pageToken, limit, body.OfferIDs)
		if err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("list offer mappings failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		writeResult(res, market.OfferMappingsResponse{
			OfferMappings: mappings,
			Paging:        market.Paging{NextPageToken: next},
		})
	}
}

// @Summary		Update offer mappings
// @Tags			offers
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			businessID	path		int		true	"business id"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/businesses/{businessID}/offer-mappings/update [post]
func updateOfferMappingsHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		businessID, err := int64Param(req, "businessID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			OfferMappings []model.OfferMapping `json:"offerMappings"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		if err := store.UpsertOfferMappings(businessID, body.OfferMappings); err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("update offer mappings failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		writeResult(res, nil)
	}
}

// @Summary		Update business prices
// @description	set basic prices shared by every campaign of the business
// @Tags			prices
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			businessID	path		int		true	"business id"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/businesses/{businessID}/offer-prices/updates [post]
func updateBusinessPricesHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		businessID, err := int64Param(req, "businessID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			Offers []market.BusinessPriceUpdate `json:"offers"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		if err := store.SetBusinessPrices(businessID, body.Offers); err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("update business prices failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		zerolog.Ctx(req.Context()).Info().
			Int("offers", len(body.Offers)).
			Msg("business prices updated")

		writeResult(res, nil)
	}
}

// @Summary		Get business settings
// @Tags			campaigns
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			businessID	path		int		true	"business id"
// @Success		200			{object}	resultResp
// @Failure		404			{object}	errResp
// @Router			/businesses/{businessID}/settings [post]
func businessSettingsHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		businessID, err := int64Param(req, "businessID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		if businessID != store.BusinessID() {
			writeError(res, http.StatusNotFound, fmt.Errorf("%w: business %d", ErrRecordNotFound, businessID))
			return
		}

		settings := market.BusinessSettings{CurrentCurrency: market.CurrencyRUR}
		settings.Info.ID = businessID
		settings.Info.Name = "Sandbox Business"

		writeResult(res, settings)
	}
}

// @Summary		List campaign offers
// @description	catalog with campaign price overlay and card issues
// @Tags			offers
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			page_token	query		string	false	"page token"
// @Param			limit		query		int		false	"page size"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/offers [post]
func campaignOffersHandler(store *Store, pageSize int) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		pageToken, limit, err := pageParams(req, pageSize)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			OfferIDs []string `json:"offerIds"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		offers, next, err := store.CampaignOffers(campaignID, pageToken, limit, body.OfferIDs)
		if err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("list campaign offers failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		writeResult(res, market.CampaignOffersResponse{
			Offers: offers,
			Paging: market.Paging{NextPageToken: next},
		})
	}
}

// @Summary		List offer prices
// @Tags			prices
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			page_token	query		string	false	"page token"
// @Param			limit		query		int		false	"page size"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/offer-prices [get]
func offerPricesHandler(store *Store, pageSize int) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		pageToken, limit, err := pageParams(req, pageSize)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		prices, next, err := store.OfferPrices(campaignID, pageToken, limit)
		if err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		writeResult(res, market.OfferPricesResponse{
			Offers: prices,
			Paging: market.Paging{NextPageToken: next},
		})
	}
}

// @Summary		Update campaign prices
// @Tags			prices
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/offer-prices/updates [post]
func updatePricesHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			Offers []market.PriceUpdate `json:"offers"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		if err := store.SetCampaignPrices(campaignID, body.Offers); err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("update prices failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		zerolog.Ctx(req.Context()).Info().
			Int("offers", len(body.Offers)).
			Msg("campaign prices updated")

		writeResult(res, nil)
	}
}

// @Summary		List warehouse stocks
// @Tags			stocks
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			page_token	query		string	false	"page token"
// @Param			limit		query		int		false	"page size"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/offers/stocks [post]
func stocksHandler(store *Store, pageSize int) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		pageToken, limit, err := pageParams(req, pageSize)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			WithTurnover bool     `json:"withTurnover"`
			Archived     bool     `json:"archived"`
			OfferIDs     []string `json:"offerIds"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		warehouses, next, err := store.WarehouseStocks(campaignID, pageToken, limit)
		if err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("list stocks failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		writeResult(res, market.WarehouseStocksResponse{
			Warehouses: warehouses,
			Paging:     market.Paging{NextPageToken: next},
		})
	}
}

// @Summary		Update stocks
// @description	set stock counts per sku; items without a type set AVAILABLE
// @Tags			stocks
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/offers/stocks [put]
func updateStocksHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body struct {
			SKUs []market.StockUpdate `json:"skus"`
		}
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		if err := store.SetStocks(campaignID, body.SKUs); err != nil {
			zerolog.Ctx(req.Context()).Error().Err(err).Msg("update stocks failed")
			writeError(res, storeErrorStatus(err), err)

			return
		}

		zerolog.Ctx(req.Context()).Info().
			Int("skus", len(body.SKUs)).
			Msg("stocks updated")

		writeResult(res, nil)
	}
}

// @Summary		List hidden offers
// @Tags			offers
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Param			page_token	query		string	false	"page token"
// @Param			limit		query		int		false	"page size"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/hidden-offers [get]
func hiddenOffersHandler(store *Store, pageSize int) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		pageToken, limit, err := pageParams(req, pageSize)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		hidden, next, err := store.HiddenOffers(campaignID, pageToken, limit)
		if err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		writeResult(res, market.HiddenOffersResponse{
			HiddenOffers: hidden,
			Paging:       market.Paging{NextPageToken: next},
		})
	}
}

// @Summary		Hide offers
// @Tags			offers
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/hidden-offers [post]
func addHiddenOffersHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		offerIDs, err := hiddenOfferIDs(req)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		if err := store.AddHiddenOffers(campaignID, offerIDs); err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		writeResult(res, nil)
	}
}

// @Summary		Show hidden offers again
// @Tags			offers
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			campaignID	path		int		true	"campaign id"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/campaigns/{campaignID}/hidden-offers/delete [post]
func deleteHiddenOffersHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		campaignID, err := int64Param(req, "campaignID")
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		offerIDs, err := hiddenOfferIDs(req)
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		if err := store.DeleteHiddenOffers(campaignID, offerIDs); err != nil {
			writeError(res, storeErrorStatus(err), err)
			return
		}

		writeResult(res, nil)
	}
}

func hiddenOfferIDs(req *http.Request) ([]string, error) {
	var body struct {
		HiddenOffers []market.HiddenOffer `json:"hiddenOffers"`
	}
	if err := decodeBody(req, &body); err != nil {
		return nil, err
	}

	offerIDs := make([]string, 0, len(body.HiddenOffers))
	for _, hidden := range body.HiddenOffers {
		offerIDs = append(offerIDs, hidden.OfferID)
	}

	return offerIDs, nil
}

// @Summary		Generate report
// @description	queue an async report job; it flips to DONE after the configured latency
// @Tags			reports
// @Accept			json
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			reportType	path		string	true	"report type"
// @Param			format		query		string	false	"FILE or CSV"
// @Success		200			{object}	resultResp
// @Failure		400			{object}	errResp
// @Router			/reports/{reportType}/generate [post]
func generateReportHandler(store *Store, metrics *Metrics) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		typ, err := model.ParseReportType(chi.URLParam(req, "reportType"))
		if err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		var body map[string]any
		if err := decodeBody(req, &body); err != nil {
			writeError(res, http.StatusBadRequest, err)
			return
		}

		format := model.ReportFormat(req.URL.Query().Get("format"))
		if format == "" {
			format = model.ReportFormatFile
		}

		reportID := store.CreateReport(typ, format)
		metrics.ReportJobsTotal.WithLabelValues(string(typ)).Inc()

		zerolog.Ctx(req.Context()).Info().
			Str("report_id", reportID).
			Str("type", string(typ)).
			Msg("report queued")

		writeResult(res, generateReportResult{
			ReportID:                reportID,
			EstimatedGenerationTime: int64(store.reportLatency / time.Millisecond),
		})
	}
}

// @Summary		Get report info
// @Tags			reports
// @Produce		json
// @Param			Api-Key		header		string	true	"any non-empty key"
// @Param			reportID	path		string	true	"report id"
// @Success		200			{object}	resultResp
// @Failure		404			{object}	errResp
// @Router			/reports/info/{reportID} [get]
func reportInfoHandler(store *Store, prefix string) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		reportID := chi.URLParam(req, "reportID")

		info, ok := store.Report(reportID)
		if !ok {
			writeError(res, http.StatusNotFound, fmt.Errorf("%w: report %s", ErrRecordNotFound, reportID))
			return
		}

		if info.Status == model.ReportStatusDone {
			info.File = reportFileURL(req, prefix, reportID)
		}

		writeResult(res, info)
	}
}

func reportFileURL(req *http.Request, prefix, reportID string) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}

	return fmt.Sprintf("%s://%s%s/reports/files/%s", scheme, req.Host, prefix, reportID)
}

func reportFileHandler(store *Store) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {
		reportID := chi.URLParam(req, "reportID")

		info, ok := store.Report(reportID)
		if !ok || info.Status != model.ReportStatusDone {
			writeError(res, http.StatusNotFound, fmt.Errorf("%w: report %s", ErrRecordNotFound, reportID))
			return
		}

		data, ok := store.ReportCSV(reportID)
		if !ok {
			writeError(res, http.StatusNotFound, fmt.Errorf("%w: report %s", ErrRecordNotFound, reportID))
			return
		}

		res.Header().Set("Content-Type", "text/csv; charset=utf-8")
		res.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportID+".csv"))
		res.Write(data)
	}
}
