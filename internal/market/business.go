package market

import (
	"context"
	"fmt"
	"net/http"
)

type BusinessSettings struct {
	Info struct {
		ID   int64  `json:"id,omitempty"`
		Name string `json:"name,omitempty"`
	} `json:"info,omitempty"`
	OnlyDefaultPrice bool   `json:"onlyDefaultPrice,omitempty"`
	CurrentCurrency  string `json:"currentCurrency,omitempty"`
}

func (cli *Client) BusinessSettings(ctx context.Context, businessID int64) (*BusinessSettings, error) {
	var resp BusinessSettings

	path := fmt.Sprintf("/businesses/%d/settings", businessID)
	if err := cli.doResult(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get business settings: %w", err)
	}

	return &resp, nil
}
