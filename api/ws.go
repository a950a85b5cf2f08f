package api

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"portfolio-assistant/internal/log"
	"portfolio-assistant/model"
	"portfolio-assistant/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	FrameSession    = "session"
	FrameMessage    = "message"
	FrameQuickReply = "quick_reply"
	FrameTyping     = "typing"
	FrameReply      = "reply"
	FrameError      = "error"
)

// newUpgrader 按 server.allowed_origins 校验握手的 Origin，与 CORS 使用同一份名单。
// 没有 Origin 头的请求来自非浏览器客户端，直接放行。
func newUpgrader(origins []string) *websocket.Upgrader {
	allowAll := allowsAllOrigins(origins)
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if allowAll || origin == "" {
				return true
			}
			return slices.Contains(origins, origin)
		},
	}
}

// WSFrame 客户端与服务端之间的消息帧
type WSFrame struct {
	Type    string                 `json:"type"`
	Text    string                 `json:"text,omitempty"`
	Query   string                 `json:"query,omitempty"`
	Session *model.SessionResponse `json:"session,omitempty"`
	Reply   *model.ChatResponse    `json:"reply,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

// WSHandler WebSocket 聊天：连接建立后先下发会话，之后每条输入先回 typing，
// 等待打字延迟后再回复。连接关闭时取消等待。
func WSHandler(chatSvc *service.ChatService, origins []string) gin.HandlerFunc {
	upgrader := newUpgrader(origins)
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Warnw("[WS] 升级失败", "origin", c.GetHeader("Origin"), "error", err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(c.Request.Context())
		defer cancel()

		session, err := openSession(ctx, chatSvc, c.Query("session_id"))
		if err != nil {
			_ = conn.WriteJSON(WSFrame{Type: FrameError, Error: err.Error()})
			return
		}
		if err := conn.WriteJSON(WSFrame{Type: FrameSession, Session: session}); err != nil {
			return
		}
		sessionID := session.SessionID
		log.Infow("[WS] 连接已建立", "session", sessionID)

		frames := make(chan WSFrame)
		go readFrames(ctx, cancel, conn, frames)

		for {
			var in WSFrame
			select {
			case <-ctx.Done():
				log.Infow("[WS] 连接已关闭", "session", sessionID)
				return
			case in = <-frames:
			}

			var resp *model.ChatResponse
			switch in.Type {
			case FrameMessage:
				resp, err = chatSvc.HandleMessage(ctx, model.ChatRequest{SessionID: sessionID, Message: in.Text})
			case FrameQuickReply:
				resp, err = chatSvc.HandleQuickReply(ctx, model.QuickReplyRequest{SessionID: sessionID, Query: in.Query})
			default:
				err = errors.New("unknown frame type: " + in.Type)
			}
			if err != nil {
				if errors.Is(err, service.ErrEmptyMessage) {
					continue
				}
				if werr := conn.WriteJSON(WSFrame{Type: FrameError, Error: err.Error()}); werr != nil {
					return
				}
				continue
			}

			if err := conn.WriteJSON(WSFrame{Type: FrameTyping}); err != nil {
				return
			}
			if !waitTyping(ctx, time.Duration(resp.TypingDelayMs)*time.Millisecond) {
				return
			}
			if err := conn.WriteJSON(WSFrame{Type: FrameReply, Reply: resp}); err != nil {
				return
			}
		}
	}
}

func openSession(ctx context.Context, chatSvc *service.ChatService, sessionID string) (*model.SessionResponse, error) {
	if sessionID == "" {
		return chatSvc.StartSession(ctx)
	}
	return chatSvc.GetSession(ctx, sessionID)
}

// readFrames 单独的读协程，读失败（包括对端关闭）时取消 ctx
func readFrames(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, out chan<- WSFrame) {
	defer cancel()
	for {
		var f WSFrame
		if err := conn.ReadJSON(&f); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warnw("[WS] 读取消息失败", "error", err)
			}
			return
		}
		select {
		case out <- f:
		case <-ctx.Done():
			return
		}
	}
}

// waitTyping 等待打字延迟，ctx 取消时返回 false
func waitTyping(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
