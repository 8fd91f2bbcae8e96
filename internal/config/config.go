package config

import (
	"strings"
	"time"

	"gitlab.com/TitanInd/sprcalc/internal/estimator"
)

// Validation tags described here: https://pkg.go.dev/github.com/go-playground/validator/v10
type Config struct {
	Environment string `env:"ENVIRONMENT" flag:"environment"`
	Farm        struct {
		APIURL           string `env:"HIVE_OS_API_URL"            flag:"hive-os-api-url"            validate:"required,url"`
		APIKey           string `env:"HIVE_OS_API_KEY"            flag:"hive-os-api-key"                                    desc:"bearer token of the farm management API"`
		ID               string `env:"HIVE_OS_FARM_ID"            flag:"hive-os-farm-id"                                    desc:"farm which workers hashrate is summed up"`
		Coin             string `env:"HIVE_OS_COIN"               flag:"hive-os-coin"               validate:"required"     desc:"only worker hashrates reported for this coin are counted"`
		RefreshEachCycle bool   `env:"HIVE_OS_REFRESH_EACH_CYCLE" flag:"hive-os-refresh-each-cycle"                         desc:"fetch farm hashrate on every cycle instead of once at startup"`
	}
	HTTP struct {
		Timeout time.Duration `env:"HTTP_TIMEOUT" flag:"http-timeout" validate:"omitempty,min=0" desc:"timeout of a single outbound request"`
	}
	Log struct {
		Color      bool   `env:"LOG_COLOR"       flag:"log-color"`
		FolderPath string `env:"LOG_FOLDER_PATH" flag:"log-folder-path" validate:"omitempty,dirpath" desc:"enables file logging and sets the folder path"`
		IsProd     bool   `env:"LOG_IS_PROD"     flag:"log-is-prod"                                  desc:"affects the format of the log output"`
		JSON       bool   `env:"LOG_JSON"        flag:"log-json"`
		Level      string `env:"LOG_LEVEL"       flag:"log-level"       validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	}
	Network struct {
		BaseURL string `env:"SPECTRE_API_URL" flag:"spectre-api-url" validate:"required,url" desc:"network statistics api"`
	}
	Reward struct {
		DailyEmission float64 `env:"REWARD_DAILY_EMISSION" flag:"reward-daily-emission" validate:"gte=0" desc:"network wide SPR emission per day used by the estimator"`
		LiveEmission  bool    `env:"REWARD_LIVE_EMISSION"  flag:"reward-live-emission"                   desc:"derive daily emission from the current block reward instead"`
	}
	Web struct {
		Address string `env:"WEB_ADDRESS" flag:"web-address" validate:"omitempty,hostname_port" desc:"status http server address host:port, disabled if empty"`
	}
}

func (cfg *Config) SetDefaults() {
	if cfg.Environment == "" {
		cfg.Environment = "production"
	}

	// Farm

	if cfg.Farm.APIURL == "" {
		cfg.Farm.APIURL = "https://api2.hiveos.farm/api/v2"
	}
	if cfg.Farm.Coin == "" {
		cfg.Farm.Coin = "SPR"
	}
	cfg.Farm.Coin = strings.ToUpper(strings.TrimSpace(cfg.Farm.Coin))
	cfg.Farm.APIKey = strings.TrimSpace(cfg.Farm.APIKey)
	cfg.Farm.ID = strings.TrimSpace(cfg.Farm.ID)

	// HTTP

	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = 10 * time.Second
	}

	// Log

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	// Network

	if cfg.Network.BaseURL == "" {
		cfg.Network.BaseURL = "https://api.spectre-network.org"
	}

	// Reward

	if cfg.Reward.DailyEmission == 0 {
		cfg.Reward.DailyEmission = estimator.DailyEmission
	}
}

// HasFarmCredentials reports whether the worker hashrate can be fetched from the farm API
func (cfg *Config) HasFarmCredentials() bool {
	return cfg.Farm.APIKey != "" && cfg.Farm.ID != ""
}

// GetSanitized returns a copy of the config with sensitive data removed
// explicitly adding each field here to avoid accidentally leaking sensitive data
func (cfg *Config) GetSanitized() interface{} {
	publicCfg := Config{}

	publicCfg.Environment = cfg.Environment

	publicCfg.Farm.APIURL = cfg.Farm.APIURL
	publicCfg.Farm.ID = cfg.Farm.ID
	publicCfg.Farm.Coin = cfg.Farm.Coin
	publicCfg.Farm.RefreshEachCycle = cfg.Farm.RefreshEachCycle

	publicCfg.HTTP.Timeout = cfg.HTTP.Timeout

	publicCfg.Log.Color = cfg.Log.Color
	publicCfg.Log.FolderPath = cfg.Log.FolderPath
	publicCfg.Log.IsProd = cfg.Log.IsProd
	publicCfg.Log.JSON = cfg.Log.JSON
	publicCfg.Log.Level = cfg.Log.Level

	publicCfg.Network.BaseURL = cfg.Network.BaseURL

	publicCfg.Reward.DailyEmission = cfg.Reward.DailyEmission
	publicCfg.Reward.LiveEmission = cfg.Reward.LiveEmission

	publicCfg.Web.Address = cfg.Web.Address

	return publicCfg
}
