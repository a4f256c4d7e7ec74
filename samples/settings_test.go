package samples

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettingsDefaults(t *testing.T) {
	clearSamplesEnv(t)

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.CredentialsFile != DefaultCredentialsFile {
		t.Fatalf("unexpected credentials file: %s", settings.CredentialsFile)
	}
	if settings.Delay() != DefaultDelay {
		t.Fatalf("unexpected delay: %s", settings.Delay())
	}
}

func TestLoadSettingsYAML(t *testing.T) {
	clearSamplesEnv(t)

	path := filepath.Join(t.TempDir(), "samples.yaml")
	content := "credentials_file: /tmp/key.json\nbase_url: http://localhost:9090\ndelay_seconds: 0.5\ndebug: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.CredentialsFile != "/tmp/key.json" {
		t.Fatalf("unexpected credentials file: %s", settings.CredentialsFile)
	}
	if settings.BaseURL != "http://localhost:9090" {
		t.Fatalf("unexpected base url: %s", settings.BaseURL)
	}
	if settings.Delay() != 500*time.Millisecond {
		t.Fatalf("unexpected delay: %s", settings.Delay())
	}
	if !settings.Debug {
		t.Fatalf("expected debug enabled")
	}
}

func TestLoadSettingsEnvOverridesYAML(t *testing.T) {
	clearSamplesEnv(t)
	t.Setenv("BC_CREDENTIALS_FILE", "/tmp/env-key.json")
	t.Setenv("BC_SAMPLES_DELAY_SECONDS", "0")

	path := filepath.Join(t.TempDir(), "samples.yaml")
	if err := os.WriteFile(path, []byte("credentials_file: /tmp/yaml-key.json\ndelay_seconds: 9\n"), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if settings.CredentialsFile != "/tmp/env-key.json" {
		t.Fatalf("expected env to win, got %s", settings.CredentialsFile)
	}
	if settings.Delay() != 0 {
		t.Fatalf("expected zero delay, got %s", settings.Delay())
	}
}

func TestLoadSettingsRejectsNegativeDelay(t *testing.T) {
	clearSamplesEnv(t)
	t.Setenv("BC_SAMPLES_DELAY_SECONDS", "-1")

	if _, err := LoadSettings(""); err == nil {
		t.Fatalf("expected an error for a negative delay")
	}
}

func TestLoadSettingsRejectsMalformedYAML(t *testing.T) {
	clearSamplesEnv(t)

	path := filepath.Join(t.TempDir(), "samples.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o600); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func clearSamplesEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BC_CREDENTIALS_FILE", "BC_BASE_URL", "BC_SAMPLES_DELAY_SECONDS"} {
		t.Setenv(key, "")
	}
}
