package market

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/semaphore"

	"github.com/mihalio25/yandex-market-partner-api/internal/config"
	"github.com/mihalio25/yandex-market-partner-api/internal/model"
)

func TestMain(m *testing.M) {
	leak := flag.Bool("leak", false, "check for memory leaks")
	flag.Parse()

	if *leak {
		goleak.VerifyTestMain(m)
	} else {
		os.Exit(m.Run())
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	cli, err := NewClient(http.DefaultClient, &config.APIConfig{
		APIKey:         "key",
		BaseURL:        baseURL,
		MaxConcurrency: 1,
	})
	require.NoError(t, err)

	return cli
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		conf      *config.APIConfig
		want      *Client
		wantError error
	}{
		{
			name: "happy flow with api key",
			conf: &config.APIConfig{
				APIKey:         "key",
				BaseURL:        "https://api.partner.market.yandex.ru/",
				MaxConcurrency: 2,
			},
			want: &Client{
				cli:        http.DefaultClient,
				baseURL:    "https://api.partner.market.yandex.ru",
				authHeader: "Api-Key",
				authValue:  "key",
				lock:       semaphore.NewWeighted(2),
			},
			wantError: nil,
		},
		{
			name: "oauth token",
			conf: &config.APIConfig{
				OAuthToken:      "token",
				BaseURL:         "http://localhost:8080",
				MaxConcurrency:  1,
				RequestInterval: time.Second,
			},
			want: &Client{
				cli:        http.DefaultClient,
				baseURL:    "http://localhost:8080",
				authHeader: "Authorization",
				authValue:  "OAuth token",
				lock:       semaphore.NewWeighted(1),
				interval:   time.Second,
			},
			wantError: nil,
		},
		{
			name: "zero concurrency falls back to one",
			conf: &config.APIConfig{
				APIKey:  "key",
				BaseURL: "http://localhost:8080",
			},
			want: &Client{
				cli:        http.DefaultClient,
				baseURL:    "http://localhost:8080",
				authHeader: "Api-Key",
				authValue:  "key",
				lock:       semaphore.NewWeighted(1),
			},
			wantError: nil,
		},
		{
			name:      "missing credential",
			conf:      &config.APIConfig{BaseURL: "http://localhost:8080"},
			want:      nil,
			wantError: config.ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NewClient(http.DefaultClient, tt.conf)
			assert.Equal(t, tt.want, got)
			assert.ErrorIs(t, err, tt.wantError)
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "vendor envelope",
			err: &APIError{
				StatusCode: 420,
				Status:     "ERROR",
				Errors: []ErrorDetail{
					{Code: "LIMIT", Message: "too many requests"},
					{Code: "OTHER", Message: "something else"},
				},
			},
			want: "request failed: invalid status code (420): LIMIT: too many requests; OTHER: something else",
		},
		{
			name: "raw body",
			err:  &APIError{StatusCode: 502, Body: "bad gateway"},
			want: "request failed: invalid status code (502): bad gateway",
		},
		{
			name: "empty payload",
			err:  &APIError{StatusCode: 500},
			want: "request failed: invalid status code (500)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrInvalidStatusCode)
		})
	}
}

func Test_parseAPIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		data       string
		want       *APIError
	}{
		{
			name:       "vendor envelope",
			statusCode: 401,
			data:       `{"status":"ERROR","errors":[{"code":"UNAUTHORIZED","message":"bad key"}]}`,
			want: &APIError{
				StatusCode: 401,
				Status:     "ERROR",
				Errors:     []ErrorDetail{{Code: "UNAUTHORIZED", Message: "bad key"}},
			},
		},
		{
			name:       "plain text body",
			statusCode: 502,
			data:       "bad gateway\n",
			want:       &APIError{StatusCode: 502, Body: "bad gateway"},
		},
		{
			name:       "json without envelope fields",
			statusCode: 500,
			data:       `{"message":"oops"}`,
			want:       &APIError{StatusCode: 500, Body: `{"message":"oops"}`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, parseAPIError(tt.statusCode, []byte(tt.data)))
		})
	}
}

func TestClient_Campaigns(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Api-Key") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"status":"ERROR","errors":[{"code":"UNAUTHORIZED","message":"bad key"}]}`)

			return
		}

		assert.Equal(t, "/campaigns", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("pageSize"))

		fmt.Fprint(w, `{"campaigns":[{"id":123,"domain":"shop.example","business":{"id":789,"name":"Example"}}],"pager":{"currentPage":2,"pagesCount":3}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	resp, err := cli.Campaigns(context.Background(), 2, 10)
	require.NoError(t, err)

	assert.Equal(t, &CampaignsResponse{
		Campaigns: []model.Campaign{
			{ID: 123, Domain: "shop.example", Business: &model.Business{ID: 789, Name: "Example"}},
		},
		Pager: &Pager{CurrentPage: 2, PagesCount: 3},
	}, resp)
}

func TestClient_Campaigns_APIError(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status":"ERROR","errors":[{"code":"UNAUTHORIZED","message":"bad key"}]}`)
	}))
	t.Cleanup(serv.Close)

	cli, err := NewClient(http.DefaultClient, &config.APIConfig{APIKey: "wrong", BaseURL: serv.URL})
	require.NoError(t, err)

	resp, err := cli.Campaigns(context.Background(), 0, 0)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidStatusCode)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "ERROR", apiErr.Status)
	assert.Equal(t, []ErrorDetail{{Code: "UNAUTHORIZED", Message: "bad key"}}, apiErr.Errors)
}

func TestClient_Campaign(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/123", r.URL.Path)
		fmt.Fprint(w, `{"campaign":{"id":123,"business":{"id":789}}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	campaign, err := cli.Campaign(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, &model.Campaign{ID: 123, Business: &model.Business{ID: 789}}, campaign)
}

func TestClient_CampaignSettings(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaigns/123/settings", r.URL.Path)
		fmt.Fprint(w, `{"settings":{"shopName":"Example","countryRegion":225}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	settings, err := cli.CampaignSettings(context.Background(), 123)
	require.NoError(t, err)
	assert.Equal(t, &CampaignSettings{ShopName: "Example", CountryRegion: 225}, settings)
}

func TestClient_SearchRegions(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/regions", r.URL.Path)
		assert.Equal(t, "Москва", r.URL.Query().Get("name"))
		fmt.Fprint(w, `{"regions":[{"id":213,"name":"Москва","type":"CITY"}]}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	regions, err := cli.SearchRegions(context.Background(), "Москва")
	require.NoError(t, err)
	assert.Equal(t, []model.Region{{ID: 213, Name: "Москва", Type: "CITY"}}, regions)
}

func TestClient_BusinessSettings(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/businesses/789/settings", r.URL.Path)
		fmt.Fprint(w, `{"status":"OK","result":{"info":{"id":789,"name":"Example"},"onlyDefaultPrice":true}}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	settings, err := cli.BusinessSettings(context.Background(), 789)
	require.NoError(t, err)
	assert.Equal(t, int64(789), settings.Info.ID)
	assert.True(t, settings.OnlyDefaultPrice)
}

func TestClient_RequestPacing(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"campaigns":[]}`)
	}))
	t.Cleanup(serv.Close)

	interval := 30 * time.Millisecond
	cli, err := NewClient(http.DefaultClient, &config.APIConfig{
		APIKey:          "key",
		BaseURL:         serv.URL,
		MaxConcurrency:  1,
		RequestInterval: interval,
	})
	require.NoError(t, err)

	start := time.Now()
	_, err = cli.Campaigns(context.Background(), 0, 0)
	require.NoError(t, err)
	_, err = cli.Campaigns(context.Background(), 0, 0)
	require.NoError(t, err)

	// the first release sleeps the interval before the second acquire
	assert.GreaterOrEqual(t, time.Since(start), interval)
}

func TestClient_CancelledContext(t *testing.T) {
	t.Parallel()

	serv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"campaigns":[]}`)
	}))
	t.Cleanup(serv.Close)

	cli := newTestClient(t, serv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := cli.Campaigns(ctx, 0, 0)
	assert.ErrorIs(t, err, context.Canceled)
}
