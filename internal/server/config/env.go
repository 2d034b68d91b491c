package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvFileVar names the variable pointing to the .env file; ".env" by default.
const EnvFileVar = "DEVNEST_ENV_FILE"

// loadDotEnv is a seam for tests.
var loadDotEnv = godotenv.Load

// parseEnv overlays values from the environment. Variables already set in the
// process win over the .env file, which is optional.
func parseEnv(c *Config) error {
	path := os.Getenv(EnvFileVar)
	if path == "" {
		path = ".env"
	}
	if err := loadDotEnv(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}

	setString(&c.EndpointAddrHTTP, "DEVNEST_HTTP_ADDR")
	setString(&c.EndpointAddrGRPC, "DEVNEST_GRPC_ADDR")
	setString(&c.DatabaseDSN, "DATABASE_URL")
	setString(&c.SecretKey, "DEVNEST_SECRET_KEY")
	setString(&c.S3RootUser, "DEVNEST_S3_USER")
	setString(&c.S3RootPassword, "DEVNEST_S3_PASSWORD")
	setString(&c.S3Bucket, "DEVNEST_S3_BUCKET")
	setString(&c.S3Region, "DEVNEST_S3_REGION")
	setString(&c.S3BaseEndpoint, "DEVNEST_S3_ENDPOINT")
	setString(&c.LogLevel, "DEVNEST_LOG_LEVEL")

	if err := setDuration(&c.AccessTokenValidityDuration, "DEVNEST_ACCESS_TOKEN_TTL"); err != nil {
		return err
	}
	if err := setDuration(&c.RefreshTokenValidityDuration, "DEVNEST_REFRESH_TOKEN_TTL"); err != nil {
		return err
	}
	if err := setDuration(&c.HealthCheckInterval, "DEVNEST_HEALTH_INTERVAL"); err != nil {
		return err
	}

	if v, ok := os.LookupEnv("DEVNEST_BCRYPT_COST"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DEVNEST_BCRYPT_COST: %w", err)
		}
		c.BcryptCost = n
	}

	return nil
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, name string) error {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = d
	return nil
}
