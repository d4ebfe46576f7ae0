package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
	"github.com/scroller-tech/go-backend/internal/cfg"
	"github.com/scroller-tech/go-backend/internal/domain"
	"github.com/scroller-tech/go-backend/internal/repository/redis/converter"
	"github.com/scroller-tech/go-backend/pkg/clients"
	"github.com/scroller-tech/go-backend/pkg/e"
	"github.com/scroller-tech/go-backend/pkg/logger"
)

// ActivityRepo хранит журналы взаимодействий пользователей в Redis,
// один JSON-документ на пользователя под ключом user:<id>.
type ActivityRepo struct {
	client *clients.RedisClient
	conv   converter.ActivityConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewActivityRepo(client *clients.RedisClient, conv converter.ActivityConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *ActivityRepo {
	return &ActivityRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetActivity возвращает журнал пользователя.
// Для незнакомого пользователя возвращается пустой журнал, а не ошибка.
func (a *ActivityRepo) GetActivity(ctx context.Context, userID string) (*domain.UserActivity, error) {
	data, err := a.client.Client.Get(ctx, a.userKey(userID)).Bytes()
	if errors.Is(err, r.Nil) {
		return domain.NewUserActivity(), nil
	}
	if err != nil {
		a.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	var model converter.ActivityRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	activity, err := a.conv.ToEntity(&model)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	return activity, nil
}

// SaveActivity записывает журнал пользователя целиком с заданным TTL.
func (a *ActivityRepo) SaveActivity(ctx context.Context, userID string, activity *domain.UserActivity) error {
	data, err := json.Marshal(a.conv.ToRedisModel(activity))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := a.client.Client.Set(ctx, a.userKey(userID), data, a.cfg.ActivityTTL).Err(); err != nil {
		a.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return e.Wrap(whereami.WhereAmI(), fmt.Errorf("%w: %s", e.ErrDataUnavailable, err))
	}

	return nil
}

// userKey возвращает Redis-ключ журнала пользователя.
func (a *ActivityRepo) userKey(userID string) string {
	return fmt.Sprintf("user:%s", userID)
}
