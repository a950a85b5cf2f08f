package dao

import (
	"fmt"
	"sort"

	"portfolio-assistant/model"
)

// validateSession 验证session参数
func validateSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("%w: session is nil", ErrInvalidSession)
	}
	if session.ID == "" {
		return fmt.Errorf("%w: session.ID is empty", ErrInvalidSession)
	}
	return nil
}

// mergeSessions 合并已存储的会话和本次写入，保持消息顺序
func mergeSessions(current, incoming model.Session) model.Session {
	merged := current
	merged.Turns = mergeTurns(current.Turns, incoming.Turns)

	// 快捷回复上下文以较新的写入为准
	if !current.UpdatedAt.After(incoming.UpdatedAt) {
		merged.Context = incoming.Context
		merged.UpdatedAt = incoming.UpdatedAt
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = incoming.CreatedAt
	}
	return merged
}

// mergeTurns 按时间顺序合并消息并去重，时间相同时按 Seq 排序。
// 并发写者基于同一版本追加时 Seq 会重复，合并后按最终顺序重新编号。
func mergeTurns(current, incoming []model.Turn) []model.Turn {
	seen := make(map[string]bool, len(current)+len(incoming))
	result := make([]model.Turn, 0, len(current)+len(incoming))

	for _, list := range [][]model.Turn{current, incoming} {
		for _, t := range list {
			id := turnID(t)
			if seen[id] {
				continue
			}
			seen[id] = true
			result = append(result, t)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.Before(result[j].Timestamp)
		}
		return result[i].Seq < result[j].Seq
	})
	for i := range result {
		result[i].Seq = i
	}
	return result
}

// turnID 使用 Sender+Text+Timestamp 作为唯一标识。
// Seq 会在合并时重新编号，不能参与去重，否则旧版本里的同一条消息会被当成新消息。
func turnID(t model.Turn) string {
	return fmt.Sprintf("%s:%s:%d", t.Sender, t.Text, t.Timestamp.UnixNano())
}
