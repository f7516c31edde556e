package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/plantnet/marketplace/internal/domain"
)

const (
	roleKeyPrefix    = "plantnet:role:"
	versionKeyPrefix = "plantnet:rolever:"
)

// fillScript writes the role only while the version key still holds the value read before the
// role was loaded. A missing version key counts as 0.
const fillScript = `
local current = redis.call('GET', KEYS[2])
if current == false then current = '0' end
if current ~= ARGV[2] then return 0 end
if tonumber(ARGV[3]) > 0 then
  redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
else
  redis.call('SET', KEYS[1], ARGV[1])
end
return 1
`

// RoleCache memoizes role lookups performed on every authorized request.
//
// Fills are versioned: read Version before loading the role from storage, then SetIfVersion.
// Invalidate bumps the version, so a fill racing a role change is dropped instead of caching the
// old role.
type RoleCache interface {
	Get(ctx context.Context, email string) (domain.Role, bool, error)
	Version(ctx context.Context, email string) (int64, error)
	SetIfVersion(ctx context.Context, email string, role domain.Role, version int64) (bool, error)
	Invalidate(ctx context.Context, email string) error
}

type redisRoleCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisRoleCache builds a cache backed by Redis string keys with a TTL.
func NewRedisRoleCache(client redis.Cmdable, ttl time.Duration) RoleCache {
	return &redisRoleCache{client: client, ttl: ttl}
}

func (c *redisRoleCache) Get(ctx context.Context, email string) (domain.Role, bool, error) {
	val, err := c.client.Get(ctx, roleKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return domain.Role(val), true, nil
}

func (c *redisRoleCache) Version(ctx context.Context, email string) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(email)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *redisRoleCache) SetIfVersion(ctx context.Context, email string, role domain.Role, version int64) (bool, error) {
	written, err := c.client.Eval(ctx, fillScript,
		[]string{roleKey(email), versionKey(email)},
		string(role), strconv.FormatInt(version, 10), strconv.FormatInt(c.ttl.Milliseconds(), 10),
	).Int64()
	if err != nil {
		return false, err
	}
	return written == 1, nil
}

// Invalidate bumps the version before dropping the entry so that in-flight fills lose.
func (c *redisRoleCache) Invalidate(ctx context.Context, email string) error {
	if err := c.client.Incr(ctx, versionKey(email)).Err(); err != nil {
		return err
	}
	return c.client.Del(ctx, roleKey(email)).Err()
}

func roleKey(email string) string {
	return roleKeyPrefix + email
}

func versionKey(email string) string {
	return versionKeyPrefix + email
}
