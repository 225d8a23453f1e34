package cache

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

func TestVillageInfoKey(t *testing.T) {
	if got := VillageInfoKey(100234, " 2023-24 "); got != "panchayat:village_info:100234:2023-24" {
		t.Fatalf("unexpected key: %s", got)
	}
}

func TestNoopCacheAlwaysMisses(t *testing.T) {
	c := NewRedis(nil)
	ctx := context.Background()
	if err := c.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	var dst map[string]int
	hit, err := c.GetJSON(ctx, "k", &dst)
	if err != nil || hit {
		t.Fatalf("noop GetJSON: hit=%v err=%v", hit, err)
	}
}

func TestRedisCacheSurfacesConnectionErrors(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	var dst map[string]int
	hit, err := NewRedis(rdb).GetJSON(context.Background(), "k", &dst)
	if err == nil || hit {
		t.Fatalf("want connection error, got hit=%v err=%v", hit, err)
	}
}

func TestRedisCacheRoundTrip(t *testing.T) {
	addr := strings.TrimSpace(os.Getenv("TEST_REDIS_ADDR"))
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	c := NewRedis(rdb)
	ctx := context.Background()
	key := VillageInfoKey(999001, "test-"+time.Now().UTC().Format("150405.000"))

	if err := c.SetJSON(ctx, key, map[string]int{"cattle": 40}, time.Minute); err != nil {
		t.Fatalf("SetJSON: %v", err)
	}
	var got map[string]int
	hit, err := c.GetJSON(ctx, key, &got)
	if err != nil || !hit || got["cattle"] != 40 {
		t.Fatalf("GetJSON: hit=%v err=%v got=%v", hit, err, got)
	}
	if err := c.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	hit, err = c.GetJSON(ctx, key, &got)
	if err != nil || hit {
		t.Fatalf("after delete: hit=%v err=%v", hit, err)
	}
}
