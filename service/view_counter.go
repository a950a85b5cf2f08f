package service

import (
	"context"
	"fmt"

	"portfolio-assistant/internal/log"
	"portfolio-assistant/model"
	"portfolio-assistant/utils"
)

const (
	SourceRemote = "countapi"
	SourceLocal  = "local"
)

// RemoteCounter 远程计数服务，例如 countapi.Client
type RemoteCounter interface {
	Hit(ctx context.Context) (int64, error)
}

// LocalCounter 本地计数，远程不可用时兜底
type LocalCounter interface {
	IncrVisits(ctx context.Context, key string) (int64, error)
}

type ViewCounter struct {
	remote   RemoteCounter
	local    LocalCounter
	localKey string
}

// NewViewCounter remote 可以为 nil，此时只使用本地计数
func NewViewCounter(remote RemoteCounter, local LocalCounter, localKey string) *ViewCounter {
	return &ViewCounter{remote: remote, local: local, localKey: localKey}
}

// Hit 记录一次访问：优先远程计数，失败时退回本地计数
func (v *ViewCounter) Hit(ctx context.Context) (*model.ViewCount, error) {
	if v.remote != nil {
		n, err := v.remote.Hit(ctx)
		if err == nil {
			return newViewCount(n, SourceRemote), nil
		}
		log.Warnw("[ViewCounter] 远程计数不可用，使用本地计数", "error", err)
	}

	n, err := v.local.IncrVisits(ctx, v.localKey)
	if err != nil {
		return nil, fmt.Errorf("local view counter: %w", err)
	}
	return newViewCount(n, SourceLocal), nil
}

func newViewCount(n int64, source string) *model.ViewCount {
	return &model.ViewCount{Value: n, Display: utils.FormatCount(n), Source: source}
}
