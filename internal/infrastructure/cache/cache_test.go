package cache

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type fakeRedis struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func (f *fakeRedis) Get(_ context.Context, key string) *goredis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, ttl time.Duration) *goredis.StatusCmd {
	f.values[key] = string(value.([]byte))
	f.ttls[key] = ttl
	return goredis.NewStatusResult("OK", nil)
}

func TestRedisCache_RoundTrip(t *testing.T) {
	store := &fakeRedis{values: map[string]string{}, ttls: map[string]time.Duration{}}
	c := &RedisCache{store: store}
	ctx := context.Background()

	var miss []string
	found, err := c.Get(ctx, "ibge:cidades:SP", &miss)
	if err != nil || found {
		t.Fatalf("expected miss, got found=%v err=%v", found, err)
	}

	if err := c.Set(ctx, "ibge:cidades:SP", []string{"Campinas", "Santos"}, time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.ttls["ecert:ibge:cidades:SP"] != time.Hour {
		t.Fatalf("expected namespaced key with ttl, got %v", store.ttls)
	}

	var got []string
	found, err = c.Get(ctx, "ibge:cidades:SP", &got)
	if err != nil || !found {
		t.Fatalf("expected hit, got found=%v err=%v", found, err)
	}
	if len(got) != 2 || got[1] != "Santos" {
		t.Fatalf("unexpected value: %v", got)
	}
}

func TestRedisCache_CorruptValue(t *testing.T) {
	store := &fakeRedis{values: map[string]string{"ecert:k": "{not json"}, ttls: map[string]time.Duration{}}
	c := &RedisCache{store: store}

	var dest []string
	if _, err := c.Get(context.Background(), "k", &dest); err == nil {
		t.Fatalf("expected decode error")
	}
}
