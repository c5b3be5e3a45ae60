package config

import (
	"os"
	"strconv"
	"time"

	"credflow/domain"
	"credflow/storage"
)

// ProfileCacheTTL enforces retention for cached customer profiles.
var ProfileCacheTTL = 5 * time.Minute

// Config collects everything an embedding application needs to wire the
// lending pipeline together.
type Config struct {
	RedisAddr string
	S3        storage.S3Config
	Policy    domain.PolicyConfig
}

// FromEnv builds a Config from CREDFLOW_* environment variables so the
// embedding application's setup stays lean. Unset or unparsable values fall
// back to the reference policy and development defaults.
func FromEnv() Config {
	cfg := Config{
		RedisAddr: envOr("CREDFLOW_REDIS_ADDR", "localhost:6379"),
		S3: storage.S3Config{
			Bucket:      envOr("CREDFLOW_S3_BUCKET", "credflow-sanction-letters-bucket"),
			Region:      envOr("CREDFLOW_S3_REGION", "us-east-1"),
			EndpointURL: os.Getenv("CREDFLOW_S3_ENDPOINT"),
			AccessKey:   os.Getenv("CREDFLOW_S3_ACCESS_KEY"),
			SecretKey:   os.Getenv("CREDFLOW_S3_SECRET_KEY"),
		},
		Policy: domain.DefaultPolicy(),
	}

	if v, err := strconv.Atoi(os.Getenv("CREDFLOW_MIN_BUREAU_SCORE")); err == nil {
		cfg.Policy.MinBureauScore = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("CREDFLOW_MAX_OBLIGATION_RATIO"), 64); err == nil {
		cfg.Policy.MaxObligationRatio = v
	}
	if v, err := strconv.ParseFloat(os.Getenv("CREDFLOW_NOMINAL_ANNUAL_RATE"), 64); err == nil {
		cfg.Policy.NominalAnnualRate = v
	}
	if v, err := strconv.Atoi(os.Getenv("CREDFLOW_DEFAULT_TENURE_MONTHS")); err == nil {
		cfg.Policy.DefaultTenureMonths = v
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
