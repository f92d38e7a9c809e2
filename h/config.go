package h

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

// LoadEnv loads environment variables from a .env file (if not in production)
// and processes them into cfg.
func LoadEnv(cfg any) error {
	env := os.Getenv("ENVIRONMENT")
	if env != "production" && env != "prod" {
		err := godotenv.Load(".env")
		if err != nil {
			log.Debugf("no .env file loaded: %v", err)
		}
	}
	return envconfig.Process("", cfg)
}

// MustLoadEnv is a convenience wrapper around LoadEnv that panics on error.
// Use this only in main() or initialization code where panic is acceptable.
func MustLoadEnv(cfg any) {
	if err := LoadEnv(cfg); err != nil {
		panic(err)
	}
}
