package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.GetAPIBasePath() != "/api/v1" {
		t.Errorf("base path = %q", cfg.GetAPIBasePath())
	}
	if cfg.Builder.DefaultSeatsPerRow != 20 || cfg.Builder.BaseTierPrice != 500 || cfg.Builder.TierPriceStep != 250 {
		t.Errorf("builder defaults = %+v", cfg.Builder)
	}
	if cfg.Kafka.Enabled {
		t.Error("kafka should be disabled by default")
	}
	if cfg.Redis.Addr != cfg.Redis.Host+":"+cfg.Redis.Port {
		t.Errorf("redis addr = %q", cfg.Redis.Addr)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_SESSION_TTL", "30m")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("BUILDER_DEFAULT_SEATS_PER_ROW", "32")
	t.Setenv("BUILDER_BASE_TIER_PRICE", "99.5")
	t.Setenv("BUILDER_PALETTE", "#000000,#FFFFFF")
	t.Setenv("RATE_LIMIT_BUILDER_REQUESTS", "not-a-number")

	cfg := Load()

	if cfg.GetServerAddress() != ":9090" {
		t.Errorf("address = %q", cfg.GetServerAddress())
	}
	if cfg.Redis.SessionTTL != 30*time.Minute {
		t.Errorf("session ttl = %v", cfg.Redis.SessionTTL)
	}
	if !cfg.Kafka.Enabled || !reflect.DeepEqual(cfg.Kafka.Brokers, []string{"kafka-1:9092", "kafka-2:9092"}) {
		t.Errorf("kafka = %+v", cfg.Kafka)
	}
	if cfg.Builder.DefaultSeatsPerRow != 32 || cfg.Builder.BaseTierPrice != 99.5 {
		t.Errorf("builder = %+v", cfg.Builder)
	}
	if !reflect.DeepEqual(cfg.Builder.Palette, []string{"#000000", "#FFFFFF"}) {
		t.Errorf("palette = %v", cfg.Builder.Palette)
	}
	if cfg.RateLimit.BuilderRequests != 600 {
		t.Errorf("malformed value should fall back, got %d", cfg.RateLimit.BuilderRequests)
	}
}
