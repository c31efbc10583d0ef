package rewards

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REWARDS_STORAGE", "memory")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "9090", cfg.GrpcPort)
	require.Empty(t, cfg.InternalToken)
	require.True(t, cfg.Rate.Equal(decimal.NewFromInt(1)))
	require.Equal(t, int64(1), cfg.MinCashout)
	require.Equal(t, "inr", cfg.Currency)
	require.Equal(t, 10*time.Second, cfg.GatewayTimeout)
	require.Equal(t, "completions", cfg.KafkaTopic)
	require.Equal(t, 5, cfg.Workers)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REWARDS_STORAGE", "memory")
	t.Setenv("REWARDS_RATE", "2.5")
	t.Setenv("REWARDS_MIN_CASHOUT", "10")
	t.Setenv("REWARDS_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REWARDS_INTERNAL_TOKEN", "secret")
	t.Setenv("REWARDS_CATALOG", "course/c1:50,project/p1:40")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.Rate.Equal(decimal.RequireFromString("2.5")))
	require.Equal(t, int64(10), cfg.MinCashout)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	require.NoError(t, cfg.RequireKafka())
	require.Equal(t, "secret", cfg.InternalToken)
	require.Equal(t, map[string]int64{"course/c1": 50, "project/p1": 40}, cfg.Catalog)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"mongo without address", map[string]string{"REWARDS_STORAGE": "mongo"}},
		{"postgres without dsn", map[string]string{"REWARDS_STORAGE": "postgres"}},
		{"unknown storage", map[string]string{"REWARDS_STORAGE": "files"}},
		{"zero rate", map[string]string{"REWARDS_STORAGE": "memory", "REWARDS_RATE": "0"}},
		{"bad rate", map[string]string{"REWARDS_STORAGE": "memory", "REWARDS_RATE": "one"}},
	}
	for _, ts := range tests {
		t.Run(ts.name, func(t *testing.T) {
			t.Setenv("REWARDS_MONGO", "")
			for k, v := range ts.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestRequireGateway(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.RequireGateway())
	cfg.StripeKey = "sk_test"
	require.Error(t, cfg.RequireGateway())
	cfg.StripeWebhookSecret = "whsec"
	require.NoError(t, cfg.RequireGateway())
}
