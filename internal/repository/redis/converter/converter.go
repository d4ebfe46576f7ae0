package converter

import (
	"time"

	"github.com/scroller-tech/go-backend/internal/domain"
)

type ActivityConverter interface {
	ToRedisModel(activity *domain.UserActivity) *ActivityRedisModel
	ToEntity(model *ActivityRedisModel) (*domain.UserActivity, error)
}

type ActivityConverterImpl struct{}

func NewActivityConverterImpl() *ActivityConverterImpl {
	return &ActivityConverterImpl{}
}

func (c *ActivityConverterImpl) ToRedisModel(activity *domain.UserActivity) *ActivityRedisModel {
	model := &ActivityRedisModel{
		Viewed:      make(map[string]ViewRedisModel, len(activity.Viewed)),
		Liked:       make(map[string]InteractionRedisModel, len(activity.Liked)),
		Clicked:     make(map[string]InteractionRedisModel, len(activity.Clicked)),
		AddedToCart: make(map[string]InteractionRedisModel, len(activity.AddedToCart)),
	}

	for asin, v := range activity.Viewed {
		model.Viewed[asin] = ViewRedisModel{
			Timestamp: formatTimestamp(v.Timestamp),
			TimeSpent: v.TimeSpent,
		}
	}
	for asin, v := range activity.Liked {
		model.Liked[asin] = InteractionRedisModel{Timestamp: formatTimestamp(v.Timestamp)}
	}
	for asin, v := range activity.Clicked {
		model.Clicked[asin] = InteractionRedisModel{Timestamp: formatTimestamp(v.Timestamp)}
	}
	for asin, v := range activity.AddedToCart {
		model.AddedToCart[asin] = InteractionRedisModel{Timestamp: formatTimestamp(v.Timestamp)}
	}

	return model
}

func (c *ActivityConverterImpl) ToEntity(model *ActivityRedisModel) (*domain.UserActivity, error) {
	activity := domain.NewUserActivity()

	for asin, v := range model.Viewed {
		ts, err := parseTimestamp(v.Timestamp)
		if err != nil {
			return nil, err
		}
		activity.Viewed[asin] = domain.ViewInteraction{
			Timestamp: ts,
			TimeSpent: v.TimeSpent,
		}
	}
	for asin, v := range model.Liked {
		ts, err := parseTimestamp(v.Timestamp)
		if err != nil {
			return nil, err
		}
		activity.Liked[asin] = domain.Interaction{Timestamp: ts}
	}
	for asin, v := range model.Clicked {
		ts, err := parseTimestamp(v.Timestamp)
		if err != nil {
			return nil, err
		}
		activity.Clicked[asin] = domain.Interaction{Timestamp: ts}
	}
	for asin, v := range model.AddedToCart {
		ts, err := parseTimestamp(v.Timestamp)
		if err != nil {
			return nil, err
		}
		activity.AddedToCart[asin] = domain.Interaction{Timestamp: ts}
	}

	return activity, nil
}

// formatTimestamp сериализует метку времени в ISO-8601 (UTC).
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
