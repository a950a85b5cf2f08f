package utils

import (
	"html"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/unicode/norm"
)

var (
	breakTag  = regexp.MustCompile(`(?i)<br\s*/?>`)
	anchorTag = regexp.MustCompile(`(?is)<a\s[^>]*href="([^"]*)"[^>]*>(.*?)</a>`)
	anyTag    = regexp.MustCompile(`<[^>]+>`)

	countPrinter = message.NewPrinter(language.English)
)

// NormalizeString 规范化用户输入：NFKC 折叠、小写、合并空白
func NormalizeString(s string) string {
	s = norm.NFKC.String(s)
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// CapitalizeFirst 首字母大写，用于把快捷回复的 key 回显成用户消息
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TypingDelay 模拟打字延迟：base + perChar*字符数，不超过 max
func TypingDelay(text string, base, perChar, max time.Duration) time.Duration {
	d := base + perChar*time.Duration(utf8.RuneCountInString(text))
	return Min(d, max)
}

// 返回两个值中较小的一个
func Min[T int | int64 | time.Duration](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// DisplayTime 渲染消息时间，例如 "3:04 PM"。按 t 自身的时区格式化，不做转换
func DisplayTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatCount 千分位格式化，例如 12345 -> "12,345"
func FormatCount(n int64) string {
	return countPrinter.Sprintf("%d", n)
}

// PlainText 把回复中的简单标记转换成终端可读的纯文本
func PlainText(s string) string {
	s = breakTag.ReplaceAllString(s, "\n")
	s = anchorTag.ReplaceAllStringFunc(s, func(m string) string {
		parts := anchorTag.FindStringSubmatch(m)
		if parts[1] == parts[2] || strings.HasPrefix(parts[1], "mailto:") {
			return parts[2]
		}
		return parts[2] + " (" + parts[1] + ")"
	})
	s = anyTag.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}
