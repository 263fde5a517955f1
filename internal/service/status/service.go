// Package status serves read queries for the dashboard and operators,
// with a cache-aside fast path for single-notification status lookups.
package status

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/courierloop/delivery-notifier/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/status/mock.go -package=mocks

type notificationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error)
	GetStatusByID(ctx context.Context, id uuid.UUID) (string, error)
	ListAll(ctx context.Context) ([]model.Notification, error)
}

type activityLog interface {
	Recent(ctx context.Context, limit int) ([]model.ActivityEvent, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service answers read queries against notifications and the activity log.
type Service struct {
	repo     notificationRepository
	activity activityLog
	cache    cache
	strategy retry.Strategy
}

// NewService creates the read service.
func NewService(repo notificationRepository, activity activityLog, c cache, strategy retry.Strategy) *Service {
	return &Service{repo: repo, activity: activity, cache: c, strategy: strategy}
}

// GetStatusByID returns a notification's status, preferring the cache and
// filling it on a miss.
func (s *Service) GetStatusByID(ctx context.Context, id uuid.UUID) (string, error) {
	status, err := s.cache.GetWithRetry(ctx, s.strategy, id.String())
	if err != nil && !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	if err != nil {
		status, err = s.repo.GetStatusByID(ctx, id)
		if err != nil {
			return "", fmt.Errorf("get notification status: %w", err)
		}

		if cacheErr := s.cache.SetWithRetry(ctx, s.strategy, id.String(), status); cacheErr != nil {
			zlog.Logger.Error().Err(cacheErr).Str("id", id.String()).Msg("failed to cache notification status")
		}
	}

	return status, nil
}

// GetByID returns the full notification row.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (model.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Notification{}, fmt.Errorf("get notification: %w", err)
	}

	return n, nil
}

// ListAll returns all notifications, newest delivery dates first.
func (s *Service) ListAll(ctx context.Context) ([]model.Notification, error) {
	notifications, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// RecentActivity returns the newest activity log events.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]model.ActivityEvent, error) {
	events, err := s.activity.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	return events, nil
}
