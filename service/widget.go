package service

import (
	"strings"
	"time"

	"portfolio-assistant/model"
	"portfolio-assistant/utils"
)

// Clock 提供消息时间戳，测试中可替换
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock 默认使用本地时间
var SystemClock Clock = systemClock{}

// TypingConfig 打字延迟参数，只用于展示层
type TypingConfig struct {
	Base    time.Duration
	PerChar time.Duration
	Max     time.Duration
}

var DefaultTyping = TypingConfig{
	Base:    800 * time.Millisecond,
	PerChar: 10 * time.Millisecond,
	Max:     2500 * time.Millisecond,
}

func (c TypingConfig) Delay(reply string) time.Duration {
	return utils.TypingDelay(reply, c.Base, c.PerChar, c.Max)
}

// Exchange 一次用户输入及其回复
type Exchange struct {
	User        model.Turn
	Assistant   model.Turn
	Reply       Reply
	Suggestions []model.Suggestion
	TypingDelay time.Duration
}

// Widget 一个聊天窗口：持有自己的对话记录和快捷回复上下文，只属于一个会话，不做并发保护
type Widget struct {
	engine  *Engine
	clock   Clock
	typing  TypingConfig
	session *model.Session
}

func NewWidget(engine *Engine, session *model.Session, clock Clock, typing TypingConfig) *Widget {
	if clock == nil {
		clock = SystemClock
	}
	if session.Context == "" {
		session.Context = string(model.StateRoot)
	}
	return &Widget{
		engine:  engine,
		clock:   clock,
		typing:  typing,
		session: session,
	}
}

// Open 为空会话写入欢迎语，已有记录时不做任何事
func (w *Widget) Open() {
	if len(w.session.Turns) > 0 {
		return
	}
	w.session.CreatedAt = w.clock.Now()
	w.appendTurn(model.SenderAssistant, w.engine.Welcome())
}

// Send 处理一条自由输入。去掉空白后为空时不做任何事，返回 false。
// 自由输入同样会更新快捷回复上下文：恰好是已知话题时跳转过去，否则下一次查表回到根菜单。
func (w *Widget) Send(text string) (*Exchange, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, false
	}
	reply := w.engine.Respond(text)
	return w.record(text, reply, utils.NormalizeString(text)), true
}

// SelectQuickReply 处理快捷回复按钮：把话题 key 首字母大写后作为用户消息回显
func (w *Widget) SelectQuickReply(topic string) (*Exchange, bool) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, false
	}
	reply, _ := w.engine.SelectQuickReply(topic)
	return w.record(utils.CapitalizeFirst(topic), reply, utils.NormalizeString(topic)), true
}

func (w *Widget) record(userText string, reply Reply, context string) *Exchange {
	user := w.appendTurn(model.SenderUser, userText)
	assistant := w.appendTurn(model.SenderAssistant, reply.Text)
	w.session.Context = context

	return &Exchange{
		User:        user,
		Assistant:   assistant,
		Reply:       reply,
		Suggestions: w.Suggestions(),
		TypingDelay: w.typing.Delay(reply.Text),
	}
}

func (w *Widget) appendTurn(sender model.Sender, text string) model.Turn {
	now := w.clock.Now()
	turn := model.Turn{
		Seq:         len(w.session.Turns),
		Sender:      sender,
		Text:        text,
		Timestamp:   now,
		DisplayTime: utils.DisplayTime(now),
	}
	w.session.Turns = append(w.session.Turns, turn)
	w.session.UpdatedAt = now
	return turn
}

// Suggestions 当前上下文对应的快捷回复，永不为空
func (w *Widget) Suggestions() []model.Suggestion {
	return w.engine.Suggestions(w.session.Context)
}

// Turns 返回对话记录副本
func (w *Widget) Turns() []model.Turn {
	return append([]model.Turn(nil), w.session.Turns...)
}

func (w *Widget) Session() *model.Session {
	return w.session
}
