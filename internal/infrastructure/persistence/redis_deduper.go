package persistence

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/TimohUSik/SkidkiSteamBot/internal/domain"
	"github.com/TimohUSik/SkidkiSteamBot/internal/domain/service/deals"
	"github.com/TimohUSik/SkidkiSteamBot/pkg/errcodes"
)

const dedupKeyPrefix = "dedup:"

// RedisDeduper keeps announced (subscriber, app, discount) triples in redis,
// so restarts do not replay old announcements. SETNX makes the
// check-and-mark step atomic across instances.
type RedisDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{
		client: client,
		ttl:    ttl,
	}
}

func (d *RedisDeduper) ShouldNotify(ctx context.Context, subscriberID string, appID int64, discountPercent int) (bool, error) {
	key := dedupKeyPrefix + deals.DedupKey(subscriberID, appID, discountPercent)

	fresh, err := d.client.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		return false, domain.WrapError(err, errcodes.InternalServerError, "dedup store unavailable")
	}

	return fresh, nil
}
