package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"portfolio-assistant/model"

	"github.com/go-redis/redis/v8"
)

// 定义错误类型
var (
	ErrMaxRetries     = errors.New("max retries exceeded")
	ErrInvalidSession = errors.New("invalid session")
	ErrInvalidParam   = errors.New("invalid parameter")
)

type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func NewRedisStore(addr, password string, db int, keyPrefix string, ttl time.Duration) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get 会话不存在时返回 nil, nil
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}

	data, err := s.client.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *model.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}

	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.keyPrefix+session.ID, data, s.ttl).Err()
}

// SaveWithOptimisticLock 使用 WATCH 乐观锁保存会话，防止并发覆盖写。
// 已存在的会话会与本次写入合并，对话记录按时间顺序去重。
func (s *RedisStore) SaveWithOptimisticLock(ctx context.Context, session *model.Session, maxRetries int) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if maxRetries < 0 {
		return fmt.Errorf("%w: maxRetries cannot be negative", ErrInvalidParam)
	}

	key := s.keyPrefix + session.ID

	var lastErr error
	for i := 0; i <= maxRetries; i++ {
		lastErr = s.client.Watch(ctx, func(tx *redis.Tx) error {
			currentData, err := tx.Get(ctx, key).Bytes()
			if err != nil && !errors.Is(err, redis.Nil) {
				return err
			}

			toSave := *session
			if err == nil {
				var current model.Session
				if err := json.Unmarshal(currentData, &current); err != nil {
					return err
				}
				toSave = mergeSessions(current, *session)
			}

			data, err := json.Marshal(toSave)
			if err != nil {
				return err
			}

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.Set(ctx, key, data, s.ttl)
				return nil
			})
			return err
		}, key)

		if !errors.Is(lastErr, redis.TxFailedErr) {
			return lastErr
		}

		// 事务被并发写打断，退避后重试
		if i < maxRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Millisecond * time.Duration(10*(i+1))):
			}
		}
	}

	return fmt.Errorf("%w for session %s: %v", ErrMaxRetries, session.ID, lastErr)
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}
	return s.client.Del(ctx, s.keyPrefix+sessionID).Err()
}

// IncrVisits 访问计数加一，远程计数服务不可用时使用
func (s *RedisStore) IncrVisits(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, fmt.Errorf("%w: key is empty", ErrInvalidParam)
	}
	return s.client.Incr(ctx, key).Result()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
