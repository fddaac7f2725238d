package config

import (
	"os"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName             string `mapstructure:"APP_NAME"`
	Env                 string `mapstructure:"APP_ENV"`
	Debug               bool   `mapstructure:"DEBUG"`
	DBPath              string `mapstructure:"DB_PATH"`
	MySQLDSN            string `mapstructure:"MYSQL_DSN"`
	AssetDir            string `mapstructure:"ASSET_DIR"`
	RequireKnownProduct bool   `mapstructure:"REQUIRE_KNOWN_PRODUCT"`
	SweepSchedule       string `mapstructure:"SWEEP_SCHEDULE"`
	GormLog             string `mapstructure:"GORM_LOG"`
}

var configKeys = []string{
	"APP_NAME", "APP_ENV", "DEBUG", "DB_PATH", "MYSQL_DSN",
	"ASSET_DIR", "REQUIRE_KNOWN_PRODUCT", "SWEEP_SCHEDULE", "GORM_LOG",
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = FromEnv()
	})
}

// FromEnv builds a Config from the current environment. Unset keys fall back
// to defaults suitable for a single-operator desktop install.
func FromEnv() *Config {
	raw := map[string]string{}
	for _, k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			raw[k] = v
		}
	}

	cfg := &Config{
		AppName:       "stockbook",
		DBPath:        "inventory.db",
		AssetDir:      "product_images",
		SweepSchedule: "@daily",
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true, // "true"/"1" -> bool
	})
	if err != nil {
		return cfg
	}
	_ = dec.Decode(raw)
	return cfg
}
