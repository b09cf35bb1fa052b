package env

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Server is the Winston host to query when no flag is given.
	Server string `env:"WWS_SERVER"`

	// Port defaults to the conventional Winston port.
	Port int `env:"WWS_PORT,default=16022"`

	// IdleTimeout bounds connecting and the gap between byte transfers.
	IdleTimeout time.Duration `env:"WWS_IDLE_TIMEOUT,default=30s"`

	// Trace enables debug logging.
	Trace bool `env:"WWS_TRACE"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(".env.local"); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
