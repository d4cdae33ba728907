package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("base_url = %q, want default", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSec != 30 {
		t.Errorf("timeout_sec = %d, want 30", cfg.API.TimeoutSec)
	}
	if cfg.Polling.IntervalSec != 2 || cfg.Polling.MaxWaitSec != 300 {
		t.Errorf("polling = %+v, want defaults", cfg.Polling)
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{
		API: APIConfig{BaseURL: DefaultBaseURL, Key: "k", Secret: "s"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	missingKey := cfg
	missingKey.API.Key = ""
	if err := missingKey.Validate(); err == nil {
		t.Error("expected error for missing api.key")
	}

	missingSecret := cfg
	missingSecret.API.Secret = ""
	if err := missingSecret.Validate(); err == nil {
		t.Error("expected error for missing api.secret")
	}

	badURL := cfg
	badURL.API.BaseURL = "ftp://example.com"
	if err := badURL.Validate(); err == nil {
		t.Error("expected error for non-http base url")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("VL_TEST_KEY", "abc123")

	in := []byte("key: ${VL_TEST_KEY}\nurl: ${VL_TEST_MISSING:-https://fallback}\nempty: ${VL_TEST_MISSING}")
	out := string(expandEnvVars(in))

	want := "key: abc123\nurl: https://fallback\nempty: "
	if out != want {
		t.Errorf("expanded:\ngot:  %q\nwant: %q", out, want)
	}
}
