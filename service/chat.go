package service

import (
	"context"
	"errors"
	"fmt"

	"portfolio-assistant/internal/log"
	"portfolio-assistant/model"

	"github.com/google/uuid"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrSessionNotFound = errors.New("session not found")
)

// SessionStore 会话存储，dao.RedisStore 和 dao.MemoryStore 都实现了它
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	SaveWithOptimisticLock(ctx context.Context, session *model.Session, maxRetries int) error
	Delete(ctx context.Context, sessionID string) error
}

type ChatService struct {
	engine     *Engine
	store      SessionStore
	clock      Clock
	typing     TypingConfig
	maxRetries int
}

type ChatOption func(*ChatService)

func WithClock(c Clock) ChatOption {
	return func(s *ChatService) { s.clock = c }
}

func WithTyping(t TypingConfig) ChatOption {
	return func(s *ChatService) { s.typing = t }
}

func WithMaxRetries(n int) ChatOption {
	return func(s *ChatService) { s.maxRetries = n }
}

func NewChatService(engine *Engine, store SessionStore, opts ...ChatOption) *ChatService {
	s := &ChatService{
		engine:     engine,
		store:      store,
		clock:      SystemClock,
		typing:     DefaultTyping,
		maxRetries: 3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ChatService) Engine() *Engine {
	return s.engine
}

// StartSession 创建新会话，写入欢迎语并返回根菜单
func (s *ChatService) StartSession(ctx context.Context) (*model.SessionResponse, error) {
	w := s.newWidget()
	// 新会话 ID 刚生成，不存在并发写，直接覆盖写入
	if err := s.store.Save(ctx, w.Session()); err != nil {
		log.Error("[ChatService] 创建会话失败", err)
		return nil, fmt.Errorf("create session %s: %w", w.Session().ID, err)
	}
	log.Infow("[ChatService] 新会话", "session", w.Session().ID)
	return sessionResponse(w), nil
}

// HandleMessage 处理一条自由输入；session_id 为空时自动创建会话
func (s *ChatService) HandleMessage(ctx context.Context, req model.ChatRequest) (*model.ChatResponse, error) {
	w, err := s.loadOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	ex, ok := w.Send(req.Message)
	if !ok {
		return nil, ErrEmptyMessage
	}
	return s.finish(ctx, w, ex)
}

// HandleQuickReply 处理快捷回复按钮
func (s *ChatService) HandleQuickReply(ctx context.Context, req model.QuickReplyRequest) (*model.ChatResponse, error) {
	w, err := s.loadOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	ex, ok := w.SelectQuickReply(req.Query)
	if !ok {
		return nil, ErrEmptyMessage
	}
	return s.finish(ctx, w, ex)
}

func (s *ChatService) GetSession(ctx context.Context, sessionID string) (*model.SessionResponse, error) {
	w, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return sessionResponse(w), nil
}

func (s *ChatService) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := s.load(ctx, sessionID); err != nil {
		return err
	}
	return s.store.Delete(ctx, sessionID)
}

func (s *ChatService) finish(ctx context.Context, w *Widget, ex *Exchange) (*model.ChatResponse, error) {
	if err := s.save(ctx, w.Session()); err != nil {
		return nil, err
	}

	log.Infow("[ChatService] 回复",
		"session", w.Session().ID,
		"rule", ex.Reply.RuleID,
		"fallback", ex.Reply.Fallback,
		"turns", len(w.Session().Turns),
	)

	return &model.ChatResponse{
		SessionID:     w.Session().ID,
		Reply:         ex.Reply.Text,
		Rule:          ex.Reply.RuleID,
		Fallback:      ex.Reply.Fallback,
		Suggestions:   ex.Suggestions,
		TypingDelayMs: ex.TypingDelay.Milliseconds(),
		Turns:         []model.Turn{ex.User, ex.Assistant},
	}, nil
}

func (s *ChatService) newWidget() *Widget {
	session := &model.Session{ID: uuid.New().String()}
	w := NewWidget(s.engine, session, s.clock, s.typing)
	w.Open()
	return w
}

func (s *ChatService) load(ctx context.Context, sessionID string) (*Widget, error) {
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	return NewWidget(s.engine, session, s.clock, s.typing), nil
}

func (s *ChatService) loadOrCreate(ctx context.Context, sessionID string) (*Widget, error) {
	if sessionID == "" {
		return s.newWidget(), nil
	}
	return s.load(ctx, sessionID)
}

func (s *ChatService) save(ctx context.Context, session *model.Session) error {
	if err := s.store.SaveWithOptimisticLock(ctx, session, s.maxRetries); err != nil {
		log.Error("[ChatService] 保存会话失败", err)
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func sessionResponse(w *Widget) *model.SessionResponse {
	return &model.SessionResponse{
		SessionID:   w.Session().ID,
		Context:     w.Session().Context,
		Turns:       w.Turns(),
		Suggestions: w.Suggestions(),
	}
}
