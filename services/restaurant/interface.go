package restaurant

import (
	"context"
	"time"

	"restohours/models"
	"restohours/services/hours"

	"go.uber.org/zap"
)

// RestaurantService answers open-restaurant queries against a dataset loaded once at startup.
type RestaurantService interface {
	FindOpen(ctx context.Context, at time.Time) ([]string, error)
	Restaurants() []models.Restaurant
}

// DefaultRestaurantService implements RestaurantService. Dataset must not be modified
// after construction; it is read concurrently by request handlers.
type DefaultRestaurantService struct {
	Dataset []models.Restaurant
	Matcher Matcher
	Cache   OpenCache // optional
	Logger  *zap.Logger
}

func NewRestaurantService(dataset []models.Restaurant, matcher Matcher, cache OpenCache, logger *zap.Logger) *DefaultRestaurantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRestaurantService{
		Dataset: dataset,
		Matcher: matcher,
		Cache:   cache,
		Logger:  logger,
	}
}

func (s *DefaultRestaurantService) FindOpen(ctx context.Context, at time.Time) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dayIdx, timeInt := hours.WeekdayIdx(at), hours.TimeToInt(at)
	inclusive := s.Matcher.Inclusive

	if s.Cache != nil {
		names, ok, err := s.Cache.Get(ctx, dayIdx, timeInt, inclusive)
		if err != nil {
			s.Logger.Warn("FindOpen: cache read failed", zap.Error(err))
		} else if ok {
			return names, nil
		}
	}

	names := FindOpenAt(s.Dataset, dayIdx, timeInt, inclusive)

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, dayIdx, timeInt, inclusive, names); err != nil {
			s.Logger.Warn("FindOpen: cache write failed", zap.Error(err))
		}
	}
	return names, nil
}

func (s *DefaultRestaurantService) Restaurants() []models.Restaurant {
	return s.Dataset
}
