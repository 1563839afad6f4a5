package revocation

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

// RedisRegistry stores each revoked jti under its own key with an
// expiry equal to the token TTL, so entries prune themselves once the
// token they revoke could no longer validate anyway.
type RedisRegistry struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisRegistry(client rueidis.Client, keyPrefix string, tokenTTL time.Duration) *RedisRegistry {
	return &RedisRegistry{
		client: client,
		prefix: keyPrefix,
		ttl:    tokenTTL,
	}
}

func (r *RedisRegistry) Insert(ctx context.Context, jti string) error {
	cmd := r.client.B().Set().
		Key(r.prefix + jti).
		Value("1").
		ExSeconds(int64(r.ttl.Seconds())).
		Build()

	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisRegistry) Contains(ctx context.Context, jti string) (bool, error) {
	cmd := r.client.B().Exists().Key(r.prefix + jti).Build()

	n, err := r.client.Do(ctx, cmd).AsInt64()
	if err != nil {
		return false, err
	}

	return n > 0, nil
}
