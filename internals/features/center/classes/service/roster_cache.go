package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	rosterCacheKey = "roster:classes" // JSON toàn bộ danh sách lớp active
	rosterCacheTTL = 5 * time.Minute
)

// RosterCache: cache danh sách lớp trên Redis — màn filter đọc đi đọc lại
// cùng một roster nên đáng cache; mutation lớp thì Invalidate ngay.
type RosterCache struct {
	client *redis.Client
}

func NewRosterCache(client *redis.Client) *RosterCache {
	return &RosterCache{client: client}
}

func (rc *RosterCache) Get(ctx context.Context) ([]Class, bool) {
	if rc == nil || rc.client == nil {
		return nil, false
	}
	raw, err := rc.client.Get(ctx, rosterCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] roster cache get: %v", err)
		}
		return nil, false
	}
	var classes []Class
	if err := json.Unmarshal([]byte(raw), &classes); err != nil {
		log.Printf("[WARN] roster cache decode: %v", err)
		return nil, false
	}
	return classes, true
}

func (rc *RosterCache) Set(ctx context.Context, classes []Class) {
	if rc == nil || rc.client == nil {
		return
	}
	raw, err := json.Marshal(classes)
	if err != nil {
		return
	}
	if err := rc.client.Set(ctx, rosterCacheKey, raw, rosterCacheTTL).Err(); err != nil {
		log.Printf("[WARN] roster cache set: %v", err)
	}
}

func (rc *RosterCache) Invalidate(ctx context.Context) {
	if rc == nil || rc.client == nil {
		return
	}
	if err := rc.client.Del(ctx, rosterCacheKey).Err(); err != nil {
		log.Printf("[WARN] roster cache invalidate: %v", err)
	}
}
