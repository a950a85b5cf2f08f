package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if conf.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", conf.Server.Port)
	}
	if conf.Chat.TypingBase != 800*time.Millisecond {
		t.Errorf("Chat.TypingBase = %v, want 800ms", conf.Chat.TypingBase)
	}
	if conf.Session.TTL != 24*time.Hour {
		t.Errorf("Session.TTL = %v, want 24h", conf.Session.TTL)
	}
	if conf.Redis.Enabled {
		t.Error("redis should be disabled by default")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
redis:
  enabled: true
  addr: redis:6379
chat:
  typing_base: 100ms
  typing_per_char: 1ms
  typing_max: 1s
`)
	conf, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if conf.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", conf.Server.Port)
	}
	if !conf.Redis.Enabled || conf.Redis.Addr != "redis:6379" {
		t.Errorf("Redis = %+v", conf.Redis)
	}
	if conf.Chat.TypingMax != time.Second {
		t.Errorf("Chat.TypingMax = %v, want 1s", conf.Chat.TypingMax)
	}
	// 文件中未出现的字段保留默认值
	if conf.ViewCounter.Key != "visits" {
		t.Errorf("ViewCounter.Key = %q, want visits", conf.ViewCounter.Key)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PORTFOLIO_SERVER_PORT", "7070")
	conf, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if conf.Server.Port != "7070" {
		t.Errorf("Server.Port = %q, want 7070", conf.Server.Port)
	}
}

func TestLoadRejectsInvertedTypingBounds(t *testing.T) {
	path := writeConfig(t, `
chat:
  typing_base: 2s
  typing_max: 1s
`)
	if _, err := Load(New(), path); err == nil {
		t.Fatal("expected error for typing_max < typing_base")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
