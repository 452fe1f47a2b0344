package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"
)

// EnvFile is looked up in the working directory on load. Entries fill
// variables the real environment does not already define.
const EnvFile = "config.env"

const (
	CampaignMain   = "main"
	CampaignExpres = "expres"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrUnknownCampaign   = errors.New("unknown campaign")
)

type APIConfig struct {
	APIKey     string `env:"YANDEX_API_KEY"`
	OAuthToken string `env:"YANDEX_OAUTH_TOKEN"`

	CampaignID       int64 `env:"YANDEX_CAMPAIGN_ID"`
	CampaignIDExpres int64 `env:"YANDEX_CAMPAIGN_ID_EXPRES"`
	BusinessID       int64 `env:"YANDEX_BUSINESS_ID"`

	BaseURL         string        `env:"YANDEX_API_BASE_URL" envDefault:"https://api.partner.market.yandex.ru"`
	ClientTimeout   time.Duration `env:"CLIENT_TIMEOUT" envDefault:"30s"`
	MaxConcurrency  int64         `env:"MAX_CONCURRENCY" envDefault:"1"`
	RequestInterval time.Duration `env:"REQUEST_INTERVAL"`

	// BatchSize and Delay pace chunked update calls: ceil(n/BatchSize)
	// requests with Delay slept between consecutive requests.
	BatchSize int           `env:"DEFAULT_BATCH_SIZE" envDefault:"10"`
	Delay     time.Duration `env:"DEFAULT_DELAY" envDefault:"1s"`

	// CampaignsFile points to a yaml map of campaign name -> id. The
	// YANDEX_CAMPAIGN_ID_EXPRES variable wins over an "expres" file entry.
	CampaignsFile string           `env:"CAMPAIGNS_FILE"`
	Campaigns     map[string]int64 `env:"-"`
}

type TraceConfig struct {
	TraceURL         string `env:"TRACE_URL"`
	TraceServiceName string `env:"TRACE_SERVICE_NAME"`
}

type SandboxBinConfig struct {
	Addr          string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout   time.Duration `env:"SANDBOX_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout  time.Duration `env:"SANDBOX_WRITE_TIMEOUT" envDefault:"5s"`
	IdleTimeout   time.Duration `env:"SANDBOX_IDLE_TIMEOUT" envDefault:"5s"`
	ReportLatency time.Duration `env:"SANDBOX_REPORT_LATENCY" envDefault:"3s"`
	PageSize      int           `env:"SANDBOX_PAGE_SIZE" envDefault:"20"`
	Seed          int64         `env:"SANDBOX_SEED" envDefault:"1"`
	OfferCount    int           `env:"SANDBOX_OFFER_COUNT" envDefault:"120"`
	OrderCount    int           `env:"SANDBOX_ORDER_COUNT" envDefault:"60"`
	RoutePrefix   string        `env:"SANDBOX_ROUTE_PREFIX"`
}

type Config struct {
	APIConfig   APIConfig
	TraceConfig TraceConfig
}

type SandboxConfig struct {
	BinConfig   SandboxBinConfig
	TraceConfig TraceConfig
}

// Overrides carries explicit values, usually from CLI flags. A non-zero
// field takes precedence over whatever the environment resolved.
type Overrides struct {
	APIKey     string
	OAuthToken string
	CampaignID int64
	BusinessID int64
	BatchSize  int
	Delay      time.Duration
}

func LoadConfig() (*Config, error) {
	var conf Config

	loadConfigFuncs := []func() error{
		loadEnvFile,
		func() error { return env.Parse(&conf.APIConfig) },
		func() error { return env.Parse(&conf.TraceConfig) },
		func() error { return loadCampaigns(&conf.APIConfig) },
		func() error {
			if conf.APIConfig.APIKey == "" && conf.APIConfig.OAuthToken == "" {
				return ErrMissingCredential
			}

			return nil
		},
	}

	for _, f := range loadConfigFuncs {
		if err := f(); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	return &conf, nil
}

func LoadSandboxConfig() (*SandboxConfig, error) {
	var conf SandboxConfig

	loadConfigFuncs := []func() error{
		loadEnvFile,
		func() error { return env.Parse(&conf.BinConfig) },
		func() error { return env.Parse(&conf.TraceConfig) },
	}

	for _, f := range loadConfigFuncs {
		if err := f(); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	return &conf, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(EnvFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}

	return gotenv.Load(EnvFile)
}

func loadCampaigns(conf *APIConfig) error {
	conf.Campaigns = make(map[string]int64)

	if conf.CampaignsFile != "" {
		contentBytes, err := os.ReadFile(conf.CampaignsFile)
		if err != nil {
			return err
		}

		yamlErr := yaml.Unmarshal(contentBytes, &conf.Campaigns)
		if yamlErr != nil {
			return yamlErr
		}
	}

	if conf.CampaignIDExpres != 0 {
		conf.Campaigns[CampaignExpres] = conf.CampaignIDExpres
	}

	return nil
}

func (conf *APIConfig) ApplyOverrides(o Overrides) {
	if o.APIKey != "" {
		conf.APIKey = o.APIKey
	}

	if o.OAuthToken != "" {
		conf.OAuthToken = o.OAuthToken
	}

	if o.CampaignID != 0 {
		conf.CampaignID = o.CampaignID
	}

	if o.BusinessID != 0 {
		conf.BusinessID = o.BusinessID
	}

	if o.BatchSize != 0 {
		conf.BatchSize = o.BatchSize
	}

	if o.Delay != 0 {
		conf.Delay = o.Delay
	}
}

// Credential returns the auth header the partner API expects. Api-Key wins
// when both credentials are set.
func (conf *APIConfig) Credential() (string, string, error) {
	switch {
	case conf.APIKey != "":
		return "Api-Key", conf.APIKey, nil
	case conf.OAuthToken != "":
		return "Authorization", "OAuth " + conf.OAuthToken, nil
	default:
		return "", "", ErrMissingCredential
	}
}

// ResolveCampaign accepts either a literal campaign id or a configured
// campaign name.
func (conf *APIConfig) ResolveCampaign(selector string) (int64, error) {
	if id, err := strconv.ParseInt(selector, 10, 64); err == nil && id > 0 {
		return id, nil
	}

	return conf.CampaignByName(selector)
}

// CampaignByName resolves a campaign selector to a numeric id. Empty string
// and "main" mean the default campaign; any other name goes through the
// registry. Unconfigured names fail, they never fall back to the default.
func (conf *APIConfig) CampaignByName(name string) (int64, error) {
	switch name {
	case "", CampaignMain:
		if conf.CampaignID == 0 {
			return 0, fmt.Errorf("%w: %s", ErrUnknownCampaign, CampaignMain)
		}

		return conf.CampaignID, nil
	case CampaignExpres:
		if conf.CampaignIDExpres != 0 {
			return conf.CampaignIDExpres, nil
		}

		if id, ok := conf.Campaigns[CampaignExpres]; ok && id != 0 {
			return id, nil
		}

		return 0, fmt.Errorf("%w: %s", ErrUnknownCampaign, CampaignExpres)
	default:
		id, ok := conf.Campaigns[name]
		if !ok || id == 0 {
			return 0, fmt.Errorf("%w: %s", ErrUnknownCampaign, name)
		}

		return id, nil
	}
}
