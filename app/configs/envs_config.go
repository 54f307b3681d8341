package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type ENV struct {
	Port      string `envconfig:"CART_APP_PORT" default:":8080"`
	AppEnv    string `envconfig:"CART_APP_ENV" default:"dev"`
	LogLevel  string `envconfig:"CART_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"CART_LOG_FORMAT"`
	Pricing   PricingConfig
}

// LoadEnv reads an optional .env file and then the CART_* variables. A
// missing .env file is not an error.
func LoadEnv(files ...string) (ENV, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return ENV{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	var env ENV
	if err := envconfig.Process("", &env); err != nil {
		return ENV{}, fmt.Errorf("parsing config: %w", err)
	}
	return env, nil
}

func (e ENV) IsProd() bool {
	return strings.EqualFold(e.AppEnv, AppEnvProd)
}

// LogOutputFormat is CART_LOG_FORMAT when set, otherwise json in prod and
// console everywhere else.
func (e ENV) LogOutputFormat() string {
	if format := strings.ToLower(strings.TrimSpace(e.LogFormat)); format != "" {
		return format
	}
	if e.IsProd() {
		return "json"
	}
	return "console"
}
