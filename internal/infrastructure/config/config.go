package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string `env:"PORT,        default=5000"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	CORSOrigin string `env:"CORS_ORIGIN"`
	// JWTSecret enables bearer-token verification on email-scoped routes
	// when set. Empty leaves every route open (identity is delegated to the
	// external provider and trusted, as in the original deployment).
	JWTSecret string `env:"JWT_SECRET"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=dotwatch"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// defaultOrigins is the development allow-list used when CORS_ORIGIN is not
// set: the Vite and CRA dev servers plus the Docker service names.
var defaultOrigins = []string{
	"http://localhost:5173",
	"http://127.0.0.1:5173",
	"http://localhost:3000",
	"http://frontend:5173",
}

// Origins returns the CORS allow-list: CORS_ORIGIN split on commas with
// whitespace trimmed, or the development defaults when unset.
func (c *Config) Origins() []string {
	if strings.TrimSpace(c.CORSOrigin) == "" {
		return defaultOrigins
	}
	parts := strings.Split(c.CORSOrigin, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
