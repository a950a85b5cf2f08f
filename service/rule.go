package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"portfolio-assistant/service/rules"
)

var ErrInvalidRule = errors.New("invalid rule")

// Rule 一条意图规则：关键词命中且不被更具体的规则遮蔽时，由 Reply 生成回复
//
// Keywords 是词干（正则片段），忽略大小写，从词首开始匹配，允许任意后缀，
// 例如 `skill` 同时命中 skills、skillset。
// Words 只按整词匹配，用于 hi、ai 这类容易出现在其他单词里的短词。
// ShadowedBy 列出更具体的规则，输入中出现它们的任一关键词时本规则不命中。
type Rule struct {
	ID         string
	Keywords   []string
	Words      []string
	ShadowedBy []string
	Reply      rules.Builder
}

type compiledRule struct {
	Rule
	match   *regexp.Regexp
	exclude *regexp.Regexp
}

func (r *compiledRule) matches(input string) bool {
	if !r.match.MatchString(input) {
		return false
	}
	return r.exclude == nil || !r.exclude.MatchString(input)
}

func keywordPattern(stems, words []string) string {
	var alts []string
	if len(stems) > 0 {
		alts = append(alts, `(?:`+strings.Join(stems, "|")+`)\w*`)
	}
	if len(words) > 0 {
		alts = append(alts, `(?:`+strings.Join(words, "|")+`)\b`)
	}
	return `(?i)\b(?:` + strings.Join(alts, "|") + `)`
}

// compileRules 按顺序编译规则表，并由 ShadowedBy 推导出每条规则的排除条件
func compileRules(defs []Rule) ([]compiledRule, error) {
	byID := make(map[string]*Rule, len(defs))
	for i := range defs {
		d := &defs[i]
		if d.ID == "" {
			return nil, fmt.Errorf("%w: rule #%d has no id", ErrInvalidRule, i)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidRule, d.ID)
		}
		if len(d.Keywords)+len(d.Words) == 0 {
			return nil, fmt.Errorf("%w: %q has no keywords", ErrInvalidRule, d.ID)
		}
		if d.Reply == nil {
			return nil, fmt.Errorf("%w: %q has no reply", ErrInvalidRule, d.ID)
		}
		byID[d.ID] = d
	}

	compiled := make([]compiledRule, 0, len(defs))
	for _, d := range defs {
		match, err := regexp.Compile(keywordPattern(d.Keywords, d.Words))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidRule, d.ID, err)
		}

		cr := compiledRule{Rule: d, match: match}
		if len(d.ShadowedBy) > 0 {
			var shadowStems, shadowWords []string
			for _, id := range d.ShadowedBy {
				s, ok := byID[id]
				if !ok {
					return nil, fmt.Errorf("%w: %q is shadowed by unknown rule %q", ErrInvalidRule, d.ID, id)
				}
				if id == d.ID {
					return nil, fmt.Errorf("%w: %q shadows itself", ErrInvalidRule, d.ID)
				}
				shadowStems = append(shadowStems, s.Keywords...)
				shadowWords = append(shadowWords, s.Words...)
			}
			exclude, err := regexp.Compile(keywordPattern(shadowStems, shadowWords))
			if err != nil {
				return nil, fmt.Errorf("%w: %q exclusion: %v", ErrInvalidRule, d.ID, err)
			}
			cr.exclude = exclude
		}
		compiled = append(compiled, cr)
	}
	return compiled, nil
}

// classify 按优先级返回第一条命中的规则，没有命中返回 nil
func classify(compiled []compiledRule, input string) *compiledRule {
	for i := range compiled {
		if compiled[i].matches(input) {
			return &compiled[i]
		}
	}
	return nil
}

