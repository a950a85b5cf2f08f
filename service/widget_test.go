package service

import (
	"reflect"
	"testing"
	"time"

	"portfolio-assistant/model"
)

func newTestWidget(t *testing.T) *Widget {
	t.Helper()
	w := NewWidget(newTestEngine(t), &model.Session{ID: "test"}, newStepClock(), DefaultTyping)
	w.Open()
	return w
}

func TestWidgetOpenWritesWelcomeOnce(t *testing.T) {
	w := newTestWidget(t)
	w.Open()

	turns := w.Turns()
	if len(turns) != 1 {
		t.Fatalf("got %d turns, want 1", len(turns))
	}
	if turns[0].Sender != model.SenderAssistant {
		t.Errorf("welcome sender = %q", turns[0].Sender)
	}
	if !reflect.DeepEqual(w.Suggestions(), RootMenu) {
		t.Errorf("initial suggestions = %+v, want root menu", w.Suggestions())
	}
}

func TestWidgetSendAppendsTurnsInOrder(t *testing.T) {
	w := newTestWidget(t)

	inputs := []string{"hello", "projects", "hello"}
	for _, in := range inputs {
		if _, ok := w.Send(in); !ok {
			t.Fatalf("Send(%q) returned false", in)
		}
	}

	turns := w.Turns()
	if len(turns) != 1+2*len(inputs) {
		t.Fatalf("got %d turns, want %d", len(turns), 1+2*len(inputs))
	}
	for i := 1; i < len(turns); i++ {
		if !turns[i].Timestamp.After(turns[i-1].Timestamp) {
			t.Errorf("turn %d not after turn %d", i, i-1)
		}
		if turns[i].Seq != i {
			t.Errorf("turn %d has Seq %d", i, turns[i].Seq)
		}
	}
	for i, in := range inputs {
		user, assistant := turns[1+2*i], turns[2+2*i]
		if user.Sender != model.SenderUser || user.Text != in {
			t.Errorf("user turn %d = %+v", i, user)
		}
		if assistant.Sender != model.SenderAssistant {
			t.Errorf("assistant turn %d sender = %q", i, assistant.Sender)
		}
	}
}

func TestWidgetSendIgnoresBlankInput(t *testing.T) {
	w := newTestWidget(t)
	for _, in := range []string{"", "   ", "\t\n"} {
		if ex, ok := w.Send(in); ok || ex != nil {
			t.Errorf("Send(%q) = %v, %v; want nil, false", in, ex, ok)
		}
	}
	if len(w.Turns()) != 1 {
		t.Errorf("blank input appended turns: %d", len(w.Turns()))
	}
}

func TestWidgetQuickReplyEchoAndContext(t *testing.T) {
	w := newTestWidget(t)

	ex, ok := w.SelectQuickReply("skills")
	if !ok {
		t.Fatal("SelectQuickReply returned false")
	}
	if ex.User.Text != "Skills" {
		t.Errorf("echo = %q, want Skills", ex.User.Text)
	}
	if ex.Reply.RuleID != RuleSkills {
		t.Errorf("rule = %q, want %q", ex.Reply.RuleID, RuleSkills)
	}
	if !reflect.DeepEqual(ex.Suggestions, QuickReplyContext[model.StateSkills]) {
		t.Errorf("suggestions = %+v", ex.Suggestions)
	}
	if w.Session().Context != "skills" {
		t.Errorf("context = %q, want skills", w.Session().Context)
	}

	// 下一级话题不在表中，回到根菜单
	ex, _ = w.SelectQuickReply("python skills")
	if ex.Reply.RuleID != RulePython {
		t.Errorf("rule = %q, want %q", ex.Reply.RuleID, RulePython)
	}
	if !reflect.DeepEqual(ex.Suggestions, RootMenu) {
		t.Errorf("suggestions after drill-down = %+v, want root menu", ex.Suggestions)
	}
}

func TestWidgetFreeTextMovesContext(t *testing.T) {
	w := newTestWidget(t)
	w.SelectQuickReply("contact")

	ex, _ := w.Send("Projects")
	if !reflect.DeepEqual(ex.Suggestions, QuickReplyContext[model.StateProjects]) {
		t.Errorf("typing a known topic should move context: %+v", ex.Suggestions)
	}

	ex, _ = w.Send("thanks a lot")
	if !reflect.DeepEqual(ex.Suggestions, RootMenu) {
		t.Errorf("free text should fall back to root menu: %+v", ex.Suggestions)
	}
}

func TestWidgetTypingDelay(t *testing.T) {
	w := NewWidget(newTestEngine(t), &model.Session{ID: "x"}, newStepClock(), TypingConfig{
		Base: 100 * time.Millisecond, PerChar: time.Millisecond, Max: 300 * time.Millisecond,
	})
	ex, _ := w.Send("projects")
	if ex.TypingDelay != 300*time.Millisecond {
		t.Errorf("long reply delay = %v, want capped 300ms", ex.TypingDelay)
	}
}

func TestWidgetDisplayTime(t *testing.T) {
	w := newTestWidget(t)
	ex, _ := w.Send("hi")
	if ex.User.DisplayTime != "2:59 PM" {
		t.Errorf("DisplayTime = %q, want 2:59 PM", ex.User.DisplayTime)
	}
}
