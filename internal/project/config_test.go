package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/solsense/internal/model"
)

func TestSaveLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	config := model.DefaultAppConfig()
	config.DefaultLandWidthM = 250
	config.PowerBaseURL = "http://localhost:8080/power"
	config.RequestTimeoutSeconds = 3

	if err := SaveAppConfig(path, config); err != nil {
		t.Fatalf("SaveAppConfig: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if loaded != config {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, config)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	loaded, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadAppConfig: %v", err)
	}
	if loaded != model.DefaultAppConfig() {
		t.Errorf("missing file should yield defaults, got %+v", loaded)
	}
}

func TestLoadAppConfigCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Error("expected an error for a corrupt config file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SOLSENSE_POWER_URL", "http://localhost:9999/power")
	t.Setenv("SOLSENSE_NOMINATIM_URL", "http://localhost:9999/reverse")
	t.Setenv("SOLSENSE_TIMEOUT_SECONDS", "7")

	config := ApplyEnv(model.DefaultAppConfig())
	if config.PowerBaseURL != "http://localhost:9999/power" {
		t.Errorf("PowerBaseURL = %q", config.PowerBaseURL)
	}
	if config.NominatimBaseURL != "http://localhost:9999/reverse" {
		t.Errorf("NominatimBaseURL = %q", config.NominatimBaseURL)
	}
	if config.RequestTimeoutSeconds != 7 {
		t.Errorf("RequestTimeoutSeconds = %d", config.RequestTimeoutSeconds)
	}
}

func TestApplyEnvIgnoresInvalidTimeout(t *testing.T) {
	t.Setenv("SOLSENSE_TIMEOUT_SECONDS", "zero")

	config := ApplyEnv(model.DefaultAppConfig())
	if config.RequestTimeoutSeconds != model.DefaultAppConfig().RequestTimeoutSeconds {
		t.Errorf("invalid timeout should keep the default, got %d", config.RequestTimeoutSeconds)
	}
}
