package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"consult-hub/internal/cache"
	"consult-hub/internal/domain"
	"consult-hub/internal/logger"

	"go.uber.org/zap"
)

// errStateNotFound is returned when a stored session or cart has expired or never existed.
var errStateNotFound = errors.New("state not found in cache")

// stateStore keeps JSON-encoded values in the cache under a TTL that slides on every read.
type stateStore[T any] struct {
	cache domain.Cache
	ttl   time.Duration
	key   func(id string) string
	kind  string
}

func newStateStore[T any](c domain.Cache, ttl time.Duration, kind string, key func(id string) string) *stateStore[T] {
	return &stateStore[T]{cache: c, ttl: ttl, key: key, kind: kind}
}

// Put stores value under id.
func (s *stateStore[T]) Put(ctx context.Context, id string, value *T) error {
	if value == nil {
		return domain.NewInvalidInputError(fmt.Sprintf("cannot cache nil %s", s.kind))
	}

	key := s.key(id)
	dataBytes, err := json.Marshal(value)
	if err != nil {
		logger.Get().Error("Failed to marshal state for caching", zap.String("kind", s.kind), zap.Error(err))
		return domain.NewInternalError(fmt.Sprintf("failed to marshal %s for caching", s.kind), err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to cache state", zap.String("key", key), zap.Error(err))
		return domain.NewCacheUnavailableError(err)
	}
	return nil
}

// Get loads the value stored under id and refreshes its TTL.
func (s *stateStore[T]) Get(ctx context.Context, id string) (*T, error) {
	key := s.key(id)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("State cache miss", zap.String("key", key))
			return nil, errStateNotFound
		}
		logger.Get().Error("Failed to get state from cache", zap.String("key", key), zap.Error(err))
		return nil, domain.NewCacheUnavailableError(err)
	}
	if dataString == "" {
		return nil, errStateNotFound
	}

	var value T
	if err := json.Unmarshal([]byte(dataString), &value); err != nil {
		logger.Get().Error("Failed to unmarshal state from cache", zap.String("key", key), zap.Error(err))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal %s from cache", s.kind), err)
	}

	if err := s.cache.Expire(ctx, key, s.ttl); err != nil && !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Failed to refresh state TTL", zap.String("key", key), zap.Error(err))
	}
	return &value, nil
}

func newSessionStore(c domain.Cache, ttl time.Duration) *stateStore[domain.AssessmentSession] {
	return newStateStore[domain.AssessmentSession](c, ttl, "session", cache.AssessmentSessionKey)
}

func newCartStore(c domain.Cache, ttl time.Duration) *stateStore[domain.Cart] {
	return newStateStore[domain.Cart](c, ttl, "cart", cache.CartKey)
}
