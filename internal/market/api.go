package market

import (
	"context"
	"time"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

//go:generate go tool mockgen -destination=../mock/market/api.go -package=mockmarket . API
type API interface {
	Campaigns(ctx context.Context, page, pageSize int) (*CampaignsResponse, error)
	Campaign(ctx context.Context, campaignID int64) (*model.Campaign, error)
	CampaignSettings(ctx context.Context, campaignID int64) (*CampaignSettings, error)

	Orders(ctx context.Context, campaignID int64, params OrderListParams) (*OrdersResponse, error)
	Order(ctx context.Context, campaignID, orderID int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, campaignID, orderID int64, status model.OrderStatus, substatus string) (*model.Order, error)
	AcceptOrderCancellation(ctx context.Context, campaignID, orderID int64, accepted bool) error
	OrderBuyer(ctx context.Context, campaignID, orderID int64) (*model.Buyer, error)

	OfferMappings(ctx context.Context, businessID int64, params OfferMappingsParams) (*OfferMappingsResponse, error)
	UpdateOfferMappings(ctx context.Context, businessID int64, mappings []model.OfferMapping) error
	CampaignOffers(ctx context.Context, campaignID int64, params CampaignOffersParams) (*CampaignOffersResponse, error)
	OfferPrices(ctx context.Context, campaignID int64, pageToken string, limit int) (*OfferPricesResponse, error)
	UpdatePrices(ctx context.Context, campaignID int64, updates []PriceUpdate) error
	UpdateBusinessPrices(ctx context.Context, businessID int64, updates []BusinessPriceUpdate) error
	UpdateStocks(ctx context.Context, campaignID int64, updates []StockUpdate) error
	WarehouseStocks(ctx context.Context, campaignID int64, params StocksParams) (*WarehouseStocksResponse, error)
	HiddenOffers(ctx context.Context, campaignID int64, pageToken string, limit int) (*HiddenOffersResponse, error)
	AddHiddenOffers(ctx context.Context, campaignID int64, offerIDs []string) error
	DeleteHiddenOffers(ctx context.Context, campaignID int64, offerIDs []string) error

	GenerateReport(ctx context.Context, typ model.ReportType, params ReportParams) (string, error)
	ReportInfo(ctx context.Context, reportID string) (*model.ReportInfo, error)
	DownloadReport(ctx context.Context, reportID string) ([]byte, error)
	WaitReport(ctx context.Context, reportID string, pollInterval, timeout time.Duration) (*model.ReportInfo, error)

	BusinessSettings(ctx context.Context, businessID int64) (*BusinessSettings, error)

	SearchRegions(ctx context.Context, name string) ([]model.Region, error)
	DeliveryServices(ctx context.Context) ([]DeliveryService, error)
	CalculateTariffs(ctx context.Context, params TariffsParams) (*TariffsResponse, error)
}
