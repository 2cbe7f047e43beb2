package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
environment: test
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 30s
  shutdown_timeout: 10s
logging:
  level: info
  format: console
  output: stdout
simulation:
  workers: 4
  timeout: 20s
  sample_paths: 15
rate_limit:
  enabled: true
  capacity: 5
  refill_per_sec: 1
`

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	c, err := Load(writeTempConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", c.Server.Port)
	}
	if c.Simulation.Timeout != 20*time.Second {
		t.Errorf("expected 20s timeout, got %v", c.Simulation.Timeout)
	}
	if c.Simulation.SamplePaths != 15 {
		t.Errorf("expected sample_paths 15, got %d", c.Simulation.SamplePaths)
	}
}

func TestLoadMissingEnvironment(t *testing.T) {
	body := `
server:
  port: 8080
simulation:
  timeout: 20s
  sample_paths: 15
`
	if _, err := Load(writeTempConfig(t, body)); err == nil {
		t.Fatalf("expected validation error for missing environment")
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("SIM_WORKERS", "8")
	t.Setenv("SIM_TIMEOUT", "45s")

	c, err := LoadWithEnv(writeTempConfig(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Simulation.Workers != 8 {
		t.Errorf("expected workers 8, got %d", c.Simulation.Workers)
	}
	if c.Simulation.Timeout != 45*time.Second {
		t.Errorf("expected 45s, got %v", c.Simulation.Timeout)
	}
}

func TestValidateRejectsBadTimeout(t *testing.T) {
	body := `
environment: test
server:
  port: 8080
simulation:
  timeout: 0s
  sample_paths: 15
`
	if _, err := Load(writeTempConfig(t, body)); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}
