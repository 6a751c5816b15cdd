package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config defines the server environment variables.
type Config struct {
	Host            string        `env:"HOST,default=localhost" validate:"required"`
	Port            int           `env:"PORT,default=8080" validate:"min=1,max=65535"`
	LogLevel        string        `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s" validate:"gt=0"`
	MaxNameLength   int           `env:"MAX_NAME_LENGTH,default=256" validate:"min=1"`

	// AssetsDir serves the web client from disk instead of the embedded copy.
	AssetsDir string `env:"ASSETS_DIR" validate:"omitempty,dir"`
}

// Addr is the listen address built from Host and Port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads dotenvFiles (missing files are skipped; existing variables win),
// then the environment, and validates the result.
func Load(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
