package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"quadratum/internal/bootstrap"
	domain "quadratum/internal/domain/game"
	errs "quadratum/internal/errors"
)

// GameRepository publishes game events on a Redis channel.
type GameRepository struct {
	cfg   bootstrap.Config
	log   *zap.SugaredLogger
	redis *redis.Client
}

func NewGameRepository(cfg bootstrap.Config, log *zap.SugaredLogger, redis *redis.Client) *GameRepository {
	return &GameRepository{
		cfg:   cfg,
		log:   log,
		redis: redis,
	}
}

func (g *GameRepository) Publish(ctx context.Context, event domain.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", errs.ErrPublishFailed, event.Type, err)
	}

	receivers, err := g.redis.Publish(ctx, g.cfg.RedisChannel, payload).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrPublishFailed, err)
	}

	g.log.Debugw("event published", "channel", g.cfg.RedisChannel, "type", string(event.Type), "seq", event.Seq, "receivers", receivers)
	return nil
}

// Subscribe returns a subscription to the event channel. The caller closes it.
func (g *GameRepository) Subscribe(ctx context.Context) *redis.PubSub {
	return g.redis.Subscribe(ctx, g.cfg.RedisChannel)
}
