package model

import "time"

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// QuickReplyState 快捷回复上下文，即最近一次选择的话题
type QuickReplyState string

const (
	StateRoot       QuickReplyState = "root"
	StateProjects   QuickReplyState = "projects"
	StateSkills     QuickReplyState = "skills"
	StateContact    QuickReplyState = "contact"
	StateExperience QuickReplyState = "experience"
)

type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type QuickReplyRequest struct {
	SessionID string `json:"session_id"`
	Query     string `json:"query"`
}

type ChatResponse struct {
	SessionID     string       `json:"session_id"`
	Reply         string       `json:"reply"`
	Rule          string       `json:"rule"`
	Fallback      bool         `json:"fallback,omitempty"`
	Suggestions   []Suggestion `json:"suggestions"`
	TypingDelayMs int64        `json:"typing_delay_ms"`
	// Turns 本次新增的用户消息和助手回复
	Turns []Turn `json:"turns,omitempty"`
}

type SessionResponse struct {
	SessionID   string       `json:"session_id"`
	Context     string       `json:"context"`
	Turns       []Turn       `json:"turns"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Suggestion 快捷回复按钮：Label 用于展示，Query 作为话题 key 发送
type Suggestion struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

type Turn struct {
	Seq         int       `json:"seq"`
	Sender      Sender    `json:"sender"`
	Text        string    `json:"text"`
	Timestamp   time.Time `json:"timestamp"`
	// DisplayTime 按服务端时区渲染，需要访客本地时间的客户端应自行格式化 Timestamp
	DisplayTime string    `json:"display_time"`
}

// Session 一个聊天窗口实例：对话记录只追加，Context 为快捷回复上下文
type Session struct {
	ID        string    `json:"id"`
	Turns     []Turn    `json:"turns"`
	Context   string    `json:"context"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ViewCount struct {
	Value   int64  `json:"value"`
	Display string `json:"display"`
	Source  string `json:"source"`
}
