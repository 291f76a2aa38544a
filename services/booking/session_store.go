package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"innkeep/models"
	"innkeep/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore keeps transient payment sessions, keyed by session token and
// by owning customer. A customer holds at most one active session: storing a
// new one silently replaces the old. Get returns (nil, nil) when the token
// is unknown or expired.
type SessionStore interface {
	Put(ctx context.Context, session models.PaymentSession) error
	Get(ctx context.Context, sessionID string) (*models.PaymentSession, error)
	Delete(ctx context.Context, session models.PaymentSession) error
}

// RedisSessionStore implements SessionStore on the session cache.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore creates a SessionStore on the shared session cache
// client.
func NewRedisSessionStore() *RedisSessionStore {
	return &RedisSessionStore{Client: utils.GetSessionCacheClient()}
}

func (st *RedisSessionStore) Put(ctx context.Context, session models.PaymentSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal payment session: %w", err)
	}

	customerKey := utils.CustomerSessionPrefix + session.CustomerID

	// Drop the customer's previous session, if any, before binding the new one.
	if prior, err := st.Client.Get(ctx, customerKey).Result(); err == nil && prior != "" {
		st.Client.Del(ctx, utils.PaymentSessionPrefix+prior)
	}

	pipe := st.Client.TxPipeline()
	pipe.Set(ctx, utils.PaymentSessionPrefix+session.SessionID, data, utils.PaymentSessionTTL)
	pipe.Set(ctx, customerKey, session.SessionID, utils.PaymentSessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store payment session: %w", err)
	}
	return nil
}

func (st *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.PaymentSession, error) {
	data, err := st.Client.Get(ctx, utils.PaymentSessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch payment session: %w", err)
	}
	var session models.PaymentSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse payment session: %w", err)
	}
	return &session, nil
}

func (st *RedisSessionStore) Delete(ctx context.Context, session models.PaymentSession) error {
	pipe := st.Client.TxPipeline()
	pipe.Del(ctx, utils.PaymentSessionPrefix+session.SessionID)
	// Only unbind the customer key if it still points at this session.
	customerKey := utils.CustomerSessionPrefix + session.CustomerID
	if current, err := st.Client.Get(ctx, customerKey).Result(); err == nil && current == session.SessionID {
		pipe.Del(ctx, customerKey)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete payment session: %w", err)
	}
	return nil
}
