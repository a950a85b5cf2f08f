package utils

import (
	"testing"
	"time"
)

func TestNormalizeString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"HELLO", "hello"},
		{"  Tell   me\tabout  ", "tell me about"},
		{"ＳＫＩＬＬＳ", "skills"}, // 全角字符
		{"Ａi/ML", "ai/ml"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeString(tt.in); got != tt.want {
			t.Errorf("NormalizeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"skills", "Skills"},
		{"stampede project", "Stampede project"},
		{"élan", "Élan"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CapitalizeFirst(tt.in); got != tt.want {
			t.Errorf("CapitalizeFirst(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTypingDelay(t *testing.T) {
	base, per, max := 800*time.Millisecond, 10*time.Millisecond, 2500*time.Millisecond

	if got := TypingDelay("", base, per, max); got != base {
		t.Errorf("empty text delay = %v, want %v", got, base)
	}
	if got := TypingDelay("0123456789", base, per, max); got != 900*time.Millisecond {
		t.Errorf("10 chars delay = %v, want 900ms", got)
	}
	long := make([]byte, 1000)
	for i := range long {
		long[i] = 'a'
	}
	if got := TypingDelay(string(long), base, per, max); got != max {
		t.Errorf("long text delay = %v, want cap %v", got, max)
	}
	// 按字符而不是字节计数
	if got := TypingDelay("👋👋", base, per, max); got != 820*time.Millisecond {
		t.Errorf("emoji delay = %v, want 820ms", got)
	}
}

func TestDisplayTime(t *testing.T) {
	ts := time.Date(2025, 7, 1, 15, 4, 0, 0, time.UTC)
	if got := DisplayTime(ts); got != "3:04 PM" {
		t.Errorf("DisplayTime = %q, want 3:04 PM", got)
	}

	ist := time.FixedZone("IST", 5*3600+30*60)
	if got := DisplayTime(ts.In(ist)); got != "8:34 PM" {
		t.Errorf("DisplayTime in IST = %q, want 8:34 PM", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.in); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPlainText(t *testing.T) {
	in := `📬 <b>Let's Connect!</b><br><br>📧 Email: <a href="mailto:a@b.c">a@b.c</a><br>` +
		`<a href="https://github.com/x" target="_blank">https://github.com/x</a><br>` +
		`<a href="https://example.com">site</a> &amp; more`
	want := "📬 Let's Connect!\n\n📧 Email: a@b.c\nhttps://github.com/x\nsite (https://example.com) & more"
	if got := PlainText(in); got != want {
		t.Errorf("PlainText =\n%q\nwant\n%q", got, want)
	}
}
