package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"credflow/domain"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "credflow-sanction-letters-bucket", cfg.S3.Bucket)
	assert.Equal(t, "us-east-1", cfg.S3.Region)
	assert.Equal(t, domain.DefaultPolicy(), cfg.Policy)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CREDFLOW_REDIS_ADDR", "redis:7000")
	t.Setenv("CREDFLOW_S3_BUCKET", "letters")
	t.Setenv("CREDFLOW_S3_ENDPOINT", "http://127.0.0.1:9000")
	t.Setenv("CREDFLOW_MIN_BUREAU_SCORE", "720")
	t.Setenv("CREDFLOW_MAX_OBLIGATION_RATIO", "0.40")
	t.Setenv("CREDFLOW_NOMINAL_ANNUAL_RATE", "0.12")
	t.Setenv("CREDFLOW_DEFAULT_TENURE_MONTHS", "24")

	cfg := FromEnv()

	assert.Equal(t, "redis:7000", cfg.RedisAddr)
	assert.Equal(t, "letters", cfg.S3.Bucket)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.S3.EndpointURL)
	assert.Equal(t, 720, cfg.Policy.MinBureauScore)
	assert.Equal(t, 0.40, cfg.Policy.MaxObligationRatio)
	assert.Equal(t, 0.12, cfg.Policy.NominalAnnualRate)
	assert.Equal(t, 24, cfg.Policy.DefaultTenureMonths)
}

func TestFromEnv_IgnoresUnparsableOverrides(t *testing.T) {
	t.Setenv("CREDFLOW_MIN_BUREAU_SCORE", "not-a-number")
	t.Setenv("CREDFLOW_MAX_OBLIGATION_RATIO", "")

	cfg := FromEnv()

	assert.Equal(t, domain.DefaultPolicy(), cfg.Policy)
}
