package market

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

// ErrNoBusiness reports a campaign that is not linked to a business, which
// business-level operations cannot work without.
var ErrNoBusiness = errors.New("campaign has no business")

type CampaignsResponse struct {
	Campaigns []model.Campaign `json:"campaigns"`
	Pager     *Pager           `json:"pager,omitempty"`
}

type CampaignSettings struct {
	CountryRegion   int64  `json:"countryRegion,omitempty"`
	ShopName        string `json:"shopName,omitempty"`
	ShowInContext   bool   `json:"showInContext,omitempty"`
	ShowInPremium   bool   `json:"showInPremium,omitempty"`
	UseOpenStat     bool   `json:"useOpenStat,omitempty"`
	LocalRegionID   int64  `json:"localRegion,omitempty"`
	IsOnline        bool   `json:"isOnline,omitempty"`
	PlacementRegion int64  `json:"placementRegion,omitempty"`
}

func (cli *Client) Campaigns(ctx context.Context, page, pageSize int) (*CampaignsResponse, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("pageSize", strconv.Itoa(pageSize))
	}

	var resp CampaignsResponse
	if err := cli.do(ctx, http.MethodGet, "/campaigns", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	return &resp, nil
}

func (cli *Client) Campaign(ctx context.Context, campaignID int64) (*model.Campaign, error) {
	var resp struct {
		Campaign model.Campaign `json:"campaign"`
	}

	path := fmt.Sprintf("/campaigns/%d", campaignID)
	if err := cli.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get campaign: %w", err)
	}

	return &resp.Campaign, nil
}

func (cli *Client) CampaignSettings(ctx context.Context, campaignID int64) (*CampaignSettings, error) {
	var resp struct {
		Settings CampaignSettings `json:"settings"`
	}

	path := fmt.Sprintf("/campaigns/%d/settings", campaignID)
	if err := cli.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get campaign settings: %w", err)
	}

	return &resp.Settings, nil
}
