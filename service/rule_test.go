package service

import (
	"errors"
	"testing"

	"portfolio-assistant/model"
)

func constReply(s string) func(*model.Profile) string {
	return func(*model.Profile) string { return s }
}

func TestCompileRulesErrors(t *testing.T) {
	ok := constReply("ok")
	tests := []struct {
		name string
		defs []Rule
	}{
		{"missing id", []Rule{{Keywords: []string{"a"}, Reply: ok}}},
		{"duplicate id", []Rule{{ID: "a", Keywords: []string{"a"}, Reply: ok}, {ID: "a", Keywords: []string{"b"}, Reply: ok}}},
		{"no keywords", []Rule{{ID: "a", Reply: ok}}},
		{"no reply", []Rule{{ID: "a", Keywords: []string{"a"}}}},
		{"bad pattern", []Rule{{ID: "a", Keywords: []string{"("}, Reply: ok}}},
		{"unknown shadow", []Rule{{ID: "a", Keywords: []string{"a"}, ShadowedBy: []string{"b"}, Reply: ok}}},
		{"self shadow", []Rule{{ID: "a", Keywords: []string{"a"}, ShadowedBy: []string{"a"}, Reply: ok}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := compileRules(tt.defs); !errors.Is(err, ErrInvalidRule) {
				t.Errorf("err = %v, want ErrInvalidRule", err)
			}
		})
	}
}

func TestDefaultRulesCompile(t *testing.T) {
	compiled, err := compileRules(DefaultRules)
	if err != nil {
		t.Fatalf("compileRules(DefaultRules): %v", err)
	}
	if len(compiled) != len(DefaultRules) {
		t.Errorf("compiled %d rules, want %d", len(compiled), len(DefaultRules))
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	compiled, err := compileRules([]Rule{
		{ID: "first", Keywords: []string{"apple"}, Reply: constReply("1")},
		{ID: "second", Keywords: []string{"apple", "pear"}, Reply: constReply("2")},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := classify(compiled, "apple pear"); got == nil || got.ID != "first" {
		t.Errorf("classify = %v, want first", got)
	}
	if got := classify(compiled, "pear"); got == nil || got.ID != "second" {
		t.Errorf("classify = %v, want second", got)
	}
	if got := classify(compiled, "plum"); got != nil {
		t.Errorf("classify = %v, want nil", got.ID)
	}
}

// 排除条件由 ShadowedBy 推导：新增具体规则后通用规则自动让位
func TestShadowedByDerivesExclusion(t *testing.T) {
	defs := []Rule{
		{ID: "general", Keywords: []string{`projects?`}, ShadowedBy: []string{"drone", "rover"}, Reply: constReply("general")},
		{ID: "drone", Keywords: []string{`drones?`, `quadcopter`}, Reply: constReply("drone")},
		{ID: "rover", Keywords: []string{`rover`}, Reply: constReply("rover")},
	}
	compiled, err := compileRules(defs)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input, want string
	}{
		{"projects", "general"},
		{"drone projects", "drone"},
		{"quadcopter project", "drone"},
		{"rover project", "rover"},
	}
	for _, tt := range tests {
		got := classify(compiled, tt.input)
		if got == nil || got.ID != tt.want {
			t.Errorf("classify(%q) = %v, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCustomRulesEngine(t *testing.T) {
	e, err := NewEngineWithRules(testProfile(), []Rule{
		{ID: "ping", Keywords: []string{"ping"}, Reply: func(p *model.Profile) string { return "pong from " + p.ShortName }},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Respond("PING"); got.Text != "pong from Dhesurya" || got.RuleID != "ping" {
		t.Errorf("Respond = %+v", got)
	}
	if got := e.Respond("hello"); !got.Fallback {
		t.Errorf("Respond(hello) = %+v, want fallback", got)
	}
}

// Keywords 按词首匹配，Words 只按整词匹配；两者都参与 ShadowedBy 推导
func TestKeywordStemsAndWholeWords(t *testing.T) {
	compiled, err := compileRules([]Rule{
		{ID: "general", Keywords: []string{`skill`}, ShadowedBy: []string{"ai"}, Reply: constReply("general")},
		{ID: "ai", Words: []string{`ai`}, Reply: constReply("ai")},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"skills", "general"},
		{"skillset", "general"},
		{"ai", "ai"},
		{"ai skills", "ai"},
		{"email skills", "general"},
		{"aim", ""},
		{"unskilled", ""},
	}
	for _, tt := range tests {
		got := classify(compiled, tt.input)
		id := ""
		if got != nil {
			id = got.ID
		}
		if id != tt.want {
			t.Errorf("classify(%q) = %q, want %q", tt.input, id, tt.want)
		}
	}
}
