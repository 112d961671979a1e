package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daniilsolovey/content-admin/internal/content"
)

const defaultPrefix = "content"

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// storeScript sets KEYS[2] only while the generation at KEYS[1] still
// equals ARGV[1]. ARGV[3] is the TTL in milliseconds, zero for none.
var storeScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1]) or '0'
if cur ~= ARGV[1] then
	return 0
end
if tonumber(ARGV[3]) > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
else
	redis.call('SET', KEYS[2], ARGV[2])
end
return 1
`)

// Redis is a content.Cache shared between service instances. Listing keys
// embed the type's generation counter, so InvalidateList is a single INCR
// and stale listings expire through their TTL. Items have a generation of
// their own that guards writes but is not part of the key.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(ctx context.Context, opts RedisOptions) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}

	return NewRedisWithClient(client, opts.Prefix, opts.TTL), nil
}

func NewRedisWithClient(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &Redis{client: client, prefix: prefix, ttl: ttl}
}

func (r *Redis) Lookup(ctx context.Context, t content.Type, key string) ([]byte, int64, bool, error) {
	gen, err := r.generation(ctx, t, key)
	if err != nil {
		return nil, 0, false, err
	}

	k := r.key(t, key, gen)
	data, err := r.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, gen, false, nil
	} else if err != nil {
		return nil, gen, false, fmt.Errorf("redis get %s: %w", k, err)
	}

	return data, gen, true, nil
}

func (r *Redis) Store(ctx context.Context, t content.Type, key string, gen int64, data []byte) error {
	k := r.key(t, key, gen)
	keys := []string{r.genKey(t, key), k}

	err := storeScript.Run(ctx, r.client, keys, strconv.FormatInt(gen, 10), data, r.ttl.Milliseconds()).Err()
	if err != nil {
		return fmt.Errorf("redis set %s: %w", k, err)
	}

	return nil
}

func (r *Redis) InvalidateList(ctx context.Context, t content.Type) error {
	if err := r.client.Incr(ctx, r.genKey(t, "")).Err(); err != nil {
		return fmt.Errorf("redis incr generation of %s: %w", t, err)
	}

	return nil
}

func (r *Redis) InvalidateItem(ctx context.Context, t content.Type, id string) error {
	key := content.ItemKey(id)
	k := r.key(t, key, 0)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, r.genKey(t, key))
		pipe.Del(ctx, k)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis del %s: %w", k, err)
	}

	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}

func (r *Redis) generation(ctx context.Context, t content.Type, key string) (int64, error) {
	gen, err := r.client.Get(ctx, r.genKey(t, key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, fmt.Errorf("redis get generation of %s: %w", t, err)
	}

	return gen, nil
}

func (r *Redis) key(t content.Type, key string, gen int64) string {
	if content.IsItemKey(key) {
		return fmt.Sprintf("%s:%s:%s", r.prefix, t, key)
	}

	return fmt.Sprintf("%s:%s:list:%d:%s", r.prefix, t, gen, key)
}

// genKey names the generation counter that guards key. An empty key means
// the listing generation.
func (r *Redis) genKey(t content.Type, key string) string {
	if content.IsItemKey(key) {
		return fmt.Sprintf("%s:%s:items:gen", r.prefix, t)
	}

	return fmt.Sprintf("%s:%s:gen", r.prefix, t)
}
