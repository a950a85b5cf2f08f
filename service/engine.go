package service

import (
	"portfolio-assistant/model"
	"portfolio-assistant/service/rules"
	"portfolio-assistant/utils"
)

// Reply 一次匹配的结果
type Reply struct {
	Text     string `json:"text"`
	RuleID   string `json:"rule"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Engine 规则回复引擎。构造后只读，可并发使用；回复只取决于输入和个人资料
type Engine struct {
	profile *model.Profile
	rules   []compiledRule
}

// NewEngine 使用默认规则表创建引擎
func NewEngine(profile *model.Profile) (*Engine, error) {
	return NewEngineWithRules(profile, DefaultRules)
}

func NewEngineWithRules(profile *model.Profile, defs []Rule) (*Engine, error) {
	if profile == nil {
		return nil, model.ErrInvalidProfile
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	compiled, err := compileRules(defs)
	if err != nil {
		return nil, err
	}
	return &Engine{
		profile: profile.Clone(),
		rules:   compiled,
	}, nil
}

// Respond 把一句用户输入映射成唯一的回复；没有规则命中时返回兜底回复
func (e *Engine) Respond(input string) Reply {
	text := utils.NormalizeString(input)
	if r := classify(e.rules, text); r != nil {
		return Reply{Text: r.Reply(e.profile), RuleID: r.ID}
	}
	return Reply{Text: rules.Fallback(e.profile), RuleID: RuleFallback, Fallback: true}
}

// SelectQuickReply 把话题 key 当作用户输入处理，并给出下一组快捷回复
func (e *Engine) SelectQuickReply(topic string) (Reply, []model.Suggestion) {
	return e.Respond(topic), e.Suggestions(topic)
}

// Suggestions 查快捷回复上下文表，未知话题回到根菜单
func (e *Engine) Suggestions(topic string) []model.Suggestion {
	return lookupSuggestions(utils.NormalizeString(topic))
}

func (e *Engine) RootMenu() []model.Suggestion {
	return lookupSuggestions(string(model.StateRoot))
}

// Welcome 新会话的欢迎语
func (e *Engine) Welcome() string {
	return rules.Welcome(e.profile)
}

// Profile 返回资料副本
func (e *Engine) Profile() *model.Profile {
	return e.profile.Clone()
}
