package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	settings, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if settings.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, expected %q", settings.Addr(), "0.0.0.0:8080")
	}
	if settings.RateLimitRequests != 10 {
		t.Errorf("RateLimitRequests = %d, expected 10", settings.RateLimitRequests)
	}
	if settings.RateLimitWindow != 60*time.Second {
		t.Errorf("RateLimitWindow = %v, expected 60s", settings.RateLimitWindow)
	}
	if settings.RetryBackoff != 2*time.Second {
		t.Errorf("RetryBackoff = %v, expected 2s", settings.RetryBackoff)
	}
	if settings.TempDir == "" {
		t.Error("TempDir is empty, expected OS temp dir fallback")
	}
	if settings.CookieFile != "cookies.txt" {
		t.Errorf("CookieFile = %q, expected %q", settings.CookieFile, "cookies.txt")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SVD_PORT", "9090")
	t.Setenv("SVD_RATE_LIMIT_REQUESTS", "3")
	t.Setenv("SVD_RATE_LIMIT_WINDOW", "10s")
	t.Setenv("YT_DLP_POT_PROVIDER_URL", "http://127.0.0.1:4416")

	settings, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if settings.Port != "9090" {
		t.Errorf("Port = %q, expected %q", settings.Port, "9090")
	}
	if settings.RateLimitRequests != 3 {
		t.Errorf("RateLimitRequests = %d, expected 3", settings.RateLimitRequests)
	}
	if settings.RateLimitWindow != 10*time.Second {
		t.Errorf("RateLimitWindow = %v, expected 10s", settings.RateLimitWindow)
	}
	if settings.POTProviderURL != "http://127.0.0.1:4416" {
		t.Errorf("POTProviderURL = %q, expected provider url", settings.POTProviderURL)
	}
}
