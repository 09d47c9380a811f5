package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `api:
  address: ":8081"
metrics:
  prometheus_enabled: true
  prometheus_addr: ":9091"
history:
  backend: "sqlite"
  path: "reports.db"
mqtt:
  enabled: true
  broker: "tcp://localhost:1883"
  client_id: "evsight-test"
  topic: "evsight/test"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	checks := []struct {
		name string
		got  any
		want any
	}{
		{"api.address", cfg.API.Address, ":8081"},
		{"metrics.prometheus_enabled", cfg.Metrics.PrometheusEnabled, true},
		{"metrics.prometheus_addr", cfg.Metrics.PrometheusAddr, ":9091"},
		{"history.backend", cfg.History.Backend, "sqlite"},
		{"history.path", cfg.History.Path, "reports.db"},
		{"mqtt.enabled", cfg.MQTT.Enabled, true},
		{"mqtt.broker", cfg.MQTT.Broker, "tcp://localhost:1883"},
		{"mqtt.client_id", cfg.MQTT.ClientID, "evsight-test"},
		{"mqtt.topic", cfg.MQTT.Topic, "evsight/test"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %v want %v", c.name, c.got, c.want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Address != ":8080" {
		t.Errorf("api default: %s", cfg.API.Address)
	}
	if cfg.History.Backend != "jsonl" || cfg.History.Path != "reports.jsonl" {
		t.Errorf("history defaults: %+v", cfg.History)
	}
	if cfg.MQTT.ClientID != "evsight" {
		t.Errorf("mqtt default client id: %s", cfg.MQTT.ClientID)
	}
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  address: \":8080\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("EV_API__ADDRESS", ":9999")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.API.Address != ":9999" {
		t.Errorf("env override ignored: %s", cfg.API.Address)
	}
}

func TestHistoryConfig_Validate(t *testing.T) {
	c := HistoryConfig{Backend: "csv", Path: "x"}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	c = HistoryConfig{Backend: "jsonl", Path: ""}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for empty path")
	}
}
