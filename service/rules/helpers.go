// Package rules 存放每个意图规则的回复生成函数，回复内容来自个人资料。
package rules

import (
	"strings"

	"portfolio-assistant/model"
	"portfolio-assistant/utils"
)

// Builder 根据个人资料生成一条回复
type Builder func(p *model.Profile) string

func object(p *model.Profile) string     { return p.Pronouns.Object }
func possessive(p *model.Profile) string { return p.Pronouns.Possessive }

// bullets 每行一项，以 <br> 分隔
func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "• " + it
	}
	return strings.Join(lines, "<br>")
}

func link(href string) string {
	return `<a href="` + href + `" target="_blank">` + href + `</a>`
}

func capitalized(s string) string {
	return utils.CapitalizeFirst(s)
}
