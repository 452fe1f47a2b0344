package sandbox

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/market"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidParams  = errors.New("invalid params")
	ErrRecordNotFound = errors.New("record not found")
)

const (
	seedBusinessID     int64 = 9000
	seedMainCampaign   int64 = 1001
	seedExpresCampaign int64 = 1002

	mainWarehouseID   int64 = 301
	expresWarehouseID int64 = 302

	// orderDateFormat is the dd-MM-yyyy HH:mm:ss form order timestamps use.
	orderDateFormat = "02-01-2006 15:04:05"

	reportTTL = time.Hour
)

var (
	seedNames      = []string{"Лампа настольная", "Стол письменный", "Плед шерстяной", "Кружка керамическая", "Ваза стеклянная"}
	seedVendors    = []string{"Lumen", "Loft&Co", "Домтекс", "Керамика+", "Ателье"}
	seedCategories = []string{"Освещение", "Мебель", "Текстиль", "Посуда", "Декор"}

	seedBuyers = []model.Buyer{
		{FirstName: "Иван", LastName: "Иванов"},
		{FirstName: "Анна", LastName: "Петрова", MiddleName: "Сергеевна"},
		{FirstName: "Олег", LastName: "Смирнов"},
		{FirstName: "Мария", LastName: "Кузнецова"},
	}

	seedRegions = []model.Region{
		{ID: 213, Name: "Москва", Type: "CITY"},
		{ID: 2, Name: "Санкт-Петербург", Type: "CITY"},
		{ID: 54, Name: "Екатеринбург", Type: "CITY"},
	}

	seedStatuses = []model.OrderStatus{
		model.OrderStatusProcessing,
		model.OrderStatusDelivery,
		model.OrderStatusProcessing,
		model.OrderStatusDelivered,
		model.OrderStatusPickup,
		model.OrderStatusUnpaid,
		model.OrderStatusCancelled,
	}

	seedPaymentMethods = []model.PaymentMethod{
		model.PaymentYandex,
		model.PaymentCashOnDelivery,
		model.PaymentCardOnDelivery,
		model.PaymentBoundCardOnDelivery,
		model.PaymentCredit,
		model.PaymentTinkoffCredit,
		model.PaymentTinkoffInstallments,
		model.PaymentApplePay,
		model.PaymentGooglePay,
		model.PaymentSBP,
		model.PaymentB2BAccountPrepayment,
		model.PaymentB2BAccountPostpayment,
	}
)

type reportJob struct {
	ID          string
	Type        model.ReportType
	Format      model.ReportFormat
	RequestedAt time.Time
}

// Store is the seeded in-memory state behind the emulator. Every read hands
// out copies, and mutations replace pointers instead of writing through
// them, so pages returned earlier stay stable.
type Store struct {
	mu sync.RWMutex

	campaigns      []model.Campaign
	offers         []model.OfferMapping
	campaignPrices map[int64]map[string]market.Price
	orders         map[int64][]model.Order
	stocks         map[int64][]model.WarehouseStocks
	hidden         map[int64]map[string]struct{}

	reports       *cache.Cache
	reportLatency time.Duration
	now           func() time.Time
}

func NewStore(conf *config.SandboxBinConfig) *Store {
	store := &Store{
		campaignPrices: map[int64]map[string]market.Price{
			seedMainCampaign:   make(map[string]market.Price),
			seedExpresCampaign: make(map[string]market.Price),
		},
		orders: make(map[int64][]model.Order),
		stocks: make(map[int64][]model.WarehouseStocks),
		hidden: map[int64]map[string]struct{}{
			seedMainCampaign:   make(map[string]struct{}),
			seedExpresCampaign: make(map[string]struct{}),
		},
		reports:       cache.New(reportTTL, 0),
		reportLatency: conf.ReportLatency,
		now:           time.Now,
	}

	rng := rand.New(rand.NewSource(conf.Seed))

	business := &model.Business{ID: seedBusinessID, Name: "Sandbox Business"}
	store.campaigns = []model.Campaign{
		{ID: seedMainCampaign, Domain: "sandbox-main.market.yandex.ru", ClientID: 1, Business: business, PlacementType: "FBS"},
		{ID: seedExpresCampaign, Domain: "sandbox-expres.market.yandex.ru", ClientID: 1, Business: business, PlacementType: "DBS"},
	}

	store.seedOffers(rng, conf.OfferCount)
	store.seedOrders(rng, conf.OrderCount)
	store.seedStocks(rng)

	return store
}

func (store *Store) seedOffers(rng *rand.Rand, count int) {
	store.offers = make([]model.OfferMapping, 0, count)

	for i := 0; i < count; i++ {
		idx := i % len(seedNames)
		sku := fmt.Sprintf("SB-%04d", i+1)

		offer := model.Offer{
			OfferID:    sku,
			Name:       fmt.Sprintf("%s %d", seedNames[idx], i+1),
			Vendor:     seedVendors[idx],
			Category:   seedCategories[idx],
			CardStatus: "PUBLISHED",
		}

		// every 8th offer has no basic price yet
		if (i+1)%8 == 0 {
			offer.CardStatus = "NO_CARD_NEED_CONTENT"
		} else {
			offer.BasicPrice = &model.BasicPrice{
				Value:      float64(rng.Intn(950)+50) * 10,
				CurrencyID: market.CurrencyRUR,
			}
		}

		store.offers = append(store.offers, model.OfferMapping{
			Offer: offer,
			Mapping: &model.Mapping{
				MarketSKU:          int64(100000 + i),
				MarketCategoryID:   int64(90 + idx),
				MarketCategoryName: seedCategories[idx],
			},
		})

		if offer.BasicPrice != nil && i%5 == 0 {
			store.campaignPrices[seedMainCampaign][sku] = market.Price{
				Value:      math.Round(offer.BasicPrice.Value*0.95*100) / 100,
				CurrencyID: market.CurrencyRUR,
			}
		}
	}
}

func (store *Store) seedOrders(rng *rand.Rand, count int) {
	base := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < count; i++ {
		campaignID := seedMainCampaign
		if i%4 == 3 {
			campaignID = seedExpresCampaign
		}

		method := seedPaymentMethods[i%len(seedPaymentMethods)]
		paymentType := model.PaymentTypePrepaid
		if method.OnDelivery() || method == model.PaymentB2BAccountPostpayment {
			paymentType = model.PaymentTypePostpaid
		}

		items := store.seedItems(rng)
		var total float64
		for _, item := range items {
			total += item.Price * float64(item.Count)
		}

		buyer := seedBuyers[i%len(seedBuyers)]
		buyer.ID = fmt.Sprintf("buyer-%03d", i+1)
		buyer.Type = "PERSON"

		region := seedRegions[i%len(seedRegions)]

		order := model.Order{
			ID:            int64(500001 + i),
			Status:        seedStatuses[i%len(seedStatuses)],
			CreationDate:  base.Add(time.Duration(i) * 3 * time.Hour).Format(orderDateFormat),
			Currency:      market.CurrencyRUR,
			ItemsTotal:    total,
			PaymentType:   paymentType,
			PaymentMethod: method,
			Buyer:         &buyer,
			Delivery: &model.Delivery{
				Type:              "DELIVERY",
				ServiceName:       "Маркет Доставка",
				Price:             99,
				DeliveryServiceID: 1003937,
				Region:            &region,
			},
			Items: items,
		}
		if order.Status == model.OrderStatusProcessing {
			order.Substatus = "STARTED"
		}

		store.orders[campaignID] = append(store.orders[campaignID], order)
	}
}

func (store *Store) seedItems(rng *rand.Rand) []model.OrderItem {
	count := 1 + rng.Intn(3)
	items := make([]model.OrderItem, 0, count)

	for n := 0; n < count; n++ {
		mapping := store.offers[rng.Intn(len(store.offers))]

		price := 990.0
		if mapping.Offer.BasicPrice != nil {
			price = mapping.Offer.BasicPrice.Value
		}

		items = append(items, model.OrderItem{
			ID:        int64(n + 1),
			OfferID:   mapping.Offer.OfferID,
			OfferName: mapping.Offer.Name,
			Price:     price,
			Count:     1 + rng.Intn(2),
		})
	}

	return items
}

func (store *Store) seedStocks(rng *rand.Rand) {
	warehouses := map[int64]int64{
		seedMainCampaign:   mainWarehouseID,
		seedExpresCampaign: expresWarehouseID,
	}

	for campaignID, warehouseID := range warehouses {
		stocks := model.WarehouseStocks{WarehouseID: warehouseID}

		for i, mapping := range store.offers {
			// a third of the catalog has no stock records
			if i%3 == 2 {
				continue
			}

			available := int64(rng.Intn(80))
			stocks.Offers = append(stocks.Offers, model.OfferStocks{
				OfferID: mapping.Offer.OfferID,
				Stocks: []model.StockCount{
					{Type: model.StockTypeAvailable, Count: available},
					{Type: model.StockTypeFit, Count: available + int64(rng.Intn(5))},
					{Type: model.StockTypeDefect, Count: int64(rng.Intn(3))},
				},
			})
		}

		store.stocks[campaignID] = []model.WarehouseStocks{stocks}
	}
}

// pageBounds turns a page_token into a window over total items. Tokens are
// plain offsets, the same opaque-string contract production follows.
func pageBounds(token string, limit, total int) (int, int, string, error) {
	start := 0
	if token != "" {
		parsed, err := strconv.Atoi(token)
		if err != nil || parsed < 0 {
			return 0, 0, "", fmt.Errorf("%w: page_token %q", ErrInvalidParams, token)
		}

		start = parsed
	}

	if start > total {
		start = total
	}

	end := start + limit
	if end >= total {
		return start, total, "", nil
	}

	return start, end, strconv.Itoa(end), nil
}

func (store *Store) BusinessID() int64 {
	return seedBusinessID
}

func (store *Store) Campaigns() []model.Campaign {
	store.mu.RLock()
	defer store.mu.RUnlock()

	campaigns := make([]model.Campaign, len(store.campaigns))
	copy(campaigns, store.campaigns)

	return campaigns
}

func (store *Store) Campaign(campaignID int64) (model.Campaign, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, campaign := range store.campaigns {
		if campaign.ID == campaignID {
			return campaign, nil
		}
	}

	return model.Campaign{}, fmt.Errorf("%w: campaign %d", ErrRecordNotFound, campaignID)
}

func (store *Store) checkCampaign(campaignID int64) error {
	for _, campaign := range store.campaigns {
		if campaign.ID == campaignID {
			return nil
		}
	}

	return fmt.Errorf("%w: campaign %d", ErrRecordNotFound, campaignID)
}

func (store *Store) checkBusiness(businessID int64) error {
	if businessID != seedBusinessID {
		return fmt.Errorf("%w: business %d", ErrRecordNotFound, businessID)
	}

	return nil
}

func (store *Store) OfferMappings(businessID int64, pageToken string, limit int, offerIDs []string) ([]model.OfferMapping, string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if err := store.checkBusiness(businessID); err != nil {
		return nil, "", err
	}

	matched := store.offers
	if len(offerIDs) > 0 {
		wanted := make(map[string]struct{}, len(offerIDs))
		for _, offerID := range offerIDs {
			wanted[offerID] = struct{}{}
		}

		matched = make([]model.OfferMapping, 0, len(offerIDs))
		for _, mapping := range store.offers {
			if _, ok := wanted[mapping.Offer.OfferID]; ok {
				matched = append(matched, mapping)
			}
		}
	}

	start, end, next, err := pageBounds(pageToken, limit, len(matched))
	if err != nil {
		return nil, "", err
	}

	page := make([]model.OfferMapping, end-start)
	copy(page, matched[start:end])

	return page, next, nil
}

// UpsertOfferMappings replaces matching offers and appends new ones, the way
// the offer-mappings/update endpoint behaves.
func (store *Store) UpsertOfferMappings(businessID int64, mappings []model.OfferMapping) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkBusiness(businessID); err != nil {
		return err
	}

	for _, mapping := range mappings {
		if mapping.Offer.OfferID == "" {
			return fmt.Errorf("%w: offer without offerId", ErrInvalidParams)
		}

		replaced := false
		for i := range store.offers {
			if store.offers[i].Offer.OfferID == mapping.Offer.OfferID {
				store.offers[i] = mapping
				replaced = true

				break
			}
		}

		if !replaced {
			store.offers = append(store.offers, mapping)
		}
	}

	return nil
}

func (store *Store) SetBusinessPrices(businessID int64, updates []market.BusinessPriceUpdate) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkBusiness(businessID); err != nil {
		return err
	}

	for _, update := range updates {
		found := false
		for i := range store.offers {
			if store.offers[i].Offer.OfferID != update.OfferID {
				continue
			}

			store.offers[i].Offer.BasicPrice = &model.BasicPrice{
				Value:        update.Price.Value,
				CurrencyID:   update.Price.CurrencyID,
				DiscountBase: update.Price.DiscountBase,
				UpdatedAt:    store.now().UTC().Format(time.RFC3339),
			}
			found = true

			break
		}

		if !found {
			return fmt.Errorf("%w: offer %s", ErrRecordNotFound, update.OfferID)
		}
	}

	return nil
}

func (store *Store) CampaignOffers(campaignID int64, pageToken string, limit int, offerIDs []string) ([]model.CampaignOffer, string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return nil, "", err
	}

	var wanted map[string]struct{}
	if len(offerIDs) > 0 {
		wanted = make(map[string]struct{}, len(offerIDs))
		for _, offerID := range offerIDs {
			wanted[offerID] = struct{}{}
		}
	}

	matched := make([]model.CampaignOffer, 0, len(store.offers))
	for i, mapping := range store.offers {
		if wanted != nil {
			if _, ok := wanted[mapping.Offer.OfferID]; !ok {
				continue
			}
		}

		matched = append(matched, store.campaignOffer(campaignID, i))
	}

	start, end, next, err := pageBounds(pageToken, limit, len(matched))
	if err != nil {
		return nil, "", err
	}

	return matched[start:end], next, nil
}

func (store *Store) campaignOffer(campaignID int64, idx int) model.CampaignOffer {
	mapping := store.offers[idx]

	offer := model.CampaignOffer{
		OfferID: mapping.Offer.OfferID,
		Name:    mapping.Offer.Name,
		Status:  "PUBLISHED",
	}

	if mapping.Offer.BasicPrice != nil {
		basic := *mapping.Offer.BasicPrice
		offer.BasicPrice = &basic
	} else {
		offer.Status = "NO_CARD_NEED_CONTENT"
		offer.Warnings = []model.OfferIssue{{Message: "не заполнена карточка товара"}}
	}

	if price, ok := store.campaignPrices[campaignID][mapping.Offer.OfferID]; ok {
		offer.CampaignPrice = &model.CampaignPrice{
			Value:        price.Value,
			Currency:     price.CurrencyID,
			DiscountBase: price.DiscountBase,
		}
	}

	if _, ok := store.hidden[campaignID][mapping.Offer.OfferID]; ok {
		offer.Status = "DISABLED_BY_PARTNER"
	}

	return offer
}

func (store *Store) OfferPrices(campaignID int64, pageToken string, limit int) ([]market.OfferPrice, string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return nil, "", err
	}

	priced := make([]market.OfferPrice, 0, len(store.offers))
	for _, mapping := range store.offers {
		if price, ok := store.campaignPrices[campaignID][mapping.Offer.OfferID]; ok {
			priced = append(priced, market.OfferPrice{OfferID: mapping.Offer.OfferID, Price: price})

			continue
		}

		if mapping.Offer.BasicPrice != nil {
			priced = append(priced, market.OfferPrice{
				OfferID: mapping.Offer.OfferID,
				Price: market.Price{
					Value:      mapping.Offer.BasicPrice.Value,
					CurrencyID: mapping.Offer.BasicPrice.CurrencyID,
				},
			})
		}
	}

	start, end, next, err := pageBounds(pageToken, limit, len(priced))
	if err != nil {
		return nil, "", err
	}

	return priced[start:end], next, nil
}

func (store *Store) SetCampaignPrices(campaignID int64, updates []market.PriceUpdate) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return err
	}

	for _, update := range updates {
		found := false
		for _, mapping := range store.offers {
			if mapping.Offer.OfferID == update.OfferID {
				found = true

				break
			}
		}

		if !found {
			return fmt.Errorf("%w: offer %s", ErrRecordNotFound, update.OfferID)
		}

		store.campaignPrices[campaignID][update.OfferID] = update.Price
	}

	return nil
}

func (store *Store) Orders(campaignID int64, status model.OrderStatus, page, pageSize int) ([]model.Order, *market.Pager, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return nil, nil, err
	}

	matched := make([]model.Order, 0, len(store.orders[campaignID]))
	for _, order := range store.orders[campaignID] {
		if status != "" && order.Status != status {
			continue
		}

		matched = append(matched, order)
	}

	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}

	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	pager := &market.Pager{
		Total:       len(matched),
		From:        start + 1,
		To:          end,
		CurrentPage: page,
		PagesCount:  (len(matched) + pageSize - 1) / pageSize,
		PageSize:    pageSize,
	}

	return matched[start:end], pager, nil
}

func (store *Store) Order(campaignID, orderID int64) (model.Order, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return model.Order{}, err
	}

	for _, order := range store.orders[campaignID] {
		if order.ID == orderID {
			return order, nil
		}
	}

	return model.Order{}, fmt.Errorf("%w: order %d", ErrRecordNotFound, orderID)
}

// SetOrderStatus moves an order to the given status. Terminal orders stay
// where they are, the same refusal production answers with.
func (store *Store) SetOrderStatus(campaignID, orderID int64, status model.OrderStatus, substatus string) (model.Order, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return model.Order{}, err
	}

	if status == "" {
		return model.Order{}, fmt.Errorf("%w: empty status", ErrInvalidParams)
	}

	orders := store.orders[campaignID]
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}

		current := orders[i].Status
		if current == model.OrderStatusCancelled || current == model.OrderStatusDelivered {
			return model.Order{}, fmt.Errorf("%w: order %d is already %s", ErrInvalidParams, orderID, current)
		}

		orders[i].Status = status
		orders[i].Substatus = substatus
		orders[i].UpdatedAt = store.now().UTC().Format(orderDateFormat)

		return orders[i], nil
	}

	return model.Order{}, fmt.Errorf("%w: order %d", ErrRecordNotFound, orderID)
}

func (store *Store) WarehouseStocks(campaignID int64, pageToken string, limit int) ([]model.WarehouseStocks, string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return nil, "", err
	}

	warehouses := store.stocks[campaignID]

	start, end, next, err := pageBounds(pageToken, limit, len(warehouses))
	if err != nil {
		return nil, "", err
	}

	page := make([]model.WarehouseStocks, end-start)
	copy(page, warehouses[start:end])

	return page, next, nil
}

func (store *Store) SetStocks(campaignID int64, updates []market.StockUpdate) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return err
	}

	for _, update := range updates {
		if update.SKU == "" {
			return fmt.Errorf("%w: stock update without sku", ErrInvalidParams)
		}

		warehouse := store.warehouse(campaignID, update.WarehouseID)
		if warehouse == nil {
			return fmt.Errorf("%w: warehouse %d", ErrRecordNotFound, update.WarehouseID)
		}

		offers := warehouse.Offers
		idx := -1
		for i := range offers {
			if offers[i].OfferID == update.SKU {
				idx = i

				break
			}
		}

		if idx < 0 {
			warehouse.Offers = append(warehouse.Offers, model.OfferStocks{OfferID: update.SKU})
			idx = len(warehouse.Offers) - 1
		}

		for _, item := range update.Items {
			typ := model.StockType(item.Type)
			if typ == "" {
				typ = model.StockTypeAvailable
			}

			setStockCount(&warehouse.Offers[idx], typ, item.Count)
		}
	}

	return nil
}

// warehouse resolves an update target, defaulting to the campaign's only
// warehouse when the caller leaves the id zero. Must run under lock.
func (store *Store) warehouse(campaignID, warehouseID int64) *model.WarehouseStocks {
	warehouses := store.stocks[campaignID]
	if len(warehouses) == 0 {
		return nil
	}

	if warehouseID == 0 {
		return &warehouses[0]
	}

	for i := range warehouses {
		if warehouses[i].WarehouseID == warehouseID {
			return &warehouses[i]
		}
	}

	return nil
}

func setStockCount(stocks *model.OfferStocks, typ model.StockType, count int64) {
	counts := make([]model.StockCount, len(stocks.Stocks))
	copy(counts, stocks.Stocks)

	for i := range counts {
		if counts[i].Type == typ {
			counts[i].Count = count
			stocks.Stocks = counts

			return
		}
	}

	stocks.Stocks = append(counts, model.StockCount{Type: typ, Count: count})
}

func (store *Store) HiddenOffers(campaignID int64, pageToken string, limit int) ([]market.HiddenOffer, string, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return nil, "", err
	}

	skus := make([]string, 0, len(store.hidden[campaignID]))
	for sku := range store.hidden[campaignID] {
		skus = append(skus, sku)
	}

	sort.Strings(skus)

	start, end, next, err := pageBounds(pageToken, limit, len(skus))
	if err != nil {
		return nil, "", err
	}

	hidden := make([]market.HiddenOffer, 0, end-start)
	for _, sku := range skus[start:end] {
		hidden = append(hidden, market.HiddenOffer{OfferID: sku})
	}

	return hidden, next, nil
}

func (store *Store) AddHiddenOffers(campaignID int64, offerIDs []string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return err
	}

	for _, offerID := range offerIDs {
		store.hidden[campaignID][offerID] = struct{}{}
	}

	return nil
}

func (store *Store) DeleteHiddenOffers(campaignID int64, offerIDs []string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.checkCampaign(campaignID); err != nil {
		return err
	}

	for _, offerID := range offerIDs {
		delete(store.hidden[campaignID], offerID)
	}

	return nil
}

func (store *Store) CreateReport(typ model.ReportType, format model.ReportFormat) string {
	job := reportJob{
		ID:          uuid.New().String(),
		Type:        typ,
		Format:      format,
		RequestedAt: store.now(),
	}

	store.reports.Set(job.ID, job, cache.DefaultExpiration)

	return job.ID
}

// Report tells where a job stands. Jobs start PENDING and flip to DONE once
// the configured latency has passed; expired jobs fall out of the cache.
func (store *Store) Report(reportID string) (model.ReportInfo, bool) {
	value, ok := store.reports.Get(reportID)
	if !ok {
		return model.ReportInfo{}, false
	}

	job := value.(reportJob)
	info := model.ReportInfo{
		Status:                model.ReportStatusPending,
		GenerationRequestedAt: job.RequestedAt.UTC().Format(time.RFC3339),
	}

	if store.now().Sub(job.RequestedAt) >= store.reportLatency {
		info.Status = model.ReportStatusDone
		info.GenerationFinishedAt = job.RequestedAt.Add(store.reportLatency).UTC().Format(time.RFC3339)
	} else {
		info.EstimatedGenerationTime = int64(store.reportLatency / time.Millisecond)
	}

	return info, true
}
