package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"portfolio-assistant/model"
)

// MemoryStore 进程内存储，未启用 Redis 时使用，也用于测试
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string][]byte
	counters map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string][]byte),
		counters: make(map[string]int64),
	}
}

// Get 会话不存在时返回 nil, nil
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}

	s.mu.Lock()
	data, ok := s.sessions[sessionID]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *MemoryStore) Save(ctx context.Context, session *model.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sessions[session.ID] = data
	s.mu.Unlock()
	return nil
}

// SaveWithOptimisticLock 在锁内完成读取、合并、写入，不会发生冲突
func (s *MemoryStore) SaveWithOptimisticLock(ctx context.Context, session *model.Session, maxRetries int) error {
	if err := validateSession(session); err != nil {
		return err
	}
	if maxRetries < 0 {
		return fmt.Errorf("%w: maxRetries cannot be negative", ErrInvalidParam)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	toSave := *session
	if data, ok := s.sessions[session.ID]; ok {
		var current model.Session
		if err := json.Unmarshal(data, &current); err != nil {
			return err
		}
		toSave = mergeSessions(current, *session)
	}

	data, err := json.Marshal(toSave)
	if err != nil {
		return err
	}
	s.sessions[session.ID] = data
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) IncrVisits(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, fmt.Errorf("%w: key is empty", ErrInvalidParam)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[key]++
	return s.counters[key], nil
}
