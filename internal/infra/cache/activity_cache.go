package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/BruksfildServices01/agenda-atividades/internal/domain/activity"
	"github.com/BruksfildServices01/agenda-atividades/internal/models"
)

const (
	versionKey = "agenda:activities:version"
	keyPrefix  = "agenda:activities:visible"
)

// ActivityCache guarda no redis o resultado de FetchVisible por usuário.
// Como atividades públicas aparecem para todos, qualquer escrita incrementa
// a versão global e invalida todas as entradas de uma vez.
type ActivityCache struct {
	next   domain.Store
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewActivityCache(
	next domain.Store,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *ActivityCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityCache{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// NewRedisClient conecta a partir de uma URL redis://.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// --------------------------------------------------
// Read-through
// --------------------------------------------------

func (c *ActivityCache) FetchVisible(
	ctx context.Context,
	userID string,
) ([]models.Activity, error) {

	key, err := c.visibleKey(ctx, userID)
	if err != nil {
		c.logger.Warn("activity cache unavailable", slog.String("error", err.Error()))
		return c.next.FetchVisible(ctx, userID)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var acts []models.Activity
		if jerr := json.Unmarshal(raw, &acts); jerr == nil {
			return acts, nil
		}
		c.logger.Warn("discarding corrupt activity cache entry", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("activity cache read failed", slog.String("error", err.Error()))
	}

	acts, err := c.next.FetchVisible(ctx, userID)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(acts); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("activity cache write failed", slog.String("error", err.Error()))
		}
	}

	return acts, nil
}

func (c *ActivityCache) Get(
	ctx context.Context,
	id string,
) (*models.Activity, error) {
	return c.next.Get(ctx, id)
}

// --------------------------------------------------
// Writes (sempre invalidam)
// --------------------------------------------------

func (c *ActivityCache) Create(
	ctx context.Context,
	draft domain.Draft,
	ownerID string,
) (*models.Activity, error) {

	a, err := c.next.Create(ctx, draft, ownerID)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx)
	return a, nil
}

func (c *ActivityCache) Update(
	ctx context.Context,
	id string,
	patch domain.Patch,
) error {

	if err := c.next.Update(ctx, id, patch); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *ActivityCache) Delete(
	ctx context.Context,
	id string,
) error {

	if err := c.next.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func (c *ActivityCache) visibleKey(ctx context.Context, userID string) (string, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	return fmt.Sprintf("%s:%d:%s", keyPrefix, version, userID), nil
}

func (c *ActivityCache) invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		c.logger.Error("activity cache invalidation failed", slog.String("error", err.Error()))
	}
}

// Compile-time check
var _ domain.Store = (*ActivityCache)(nil)
