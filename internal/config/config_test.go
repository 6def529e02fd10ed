package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("worker count = %d", cfg.WorkerCount)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes)
	}
	if cfg.MinTextLength != 80 {
		t.Errorf("min text length = %d", cfg.MinTextLength)
	}
	if cfg.ResultTTL != 24*time.Hour {
		t.Errorf("result ttl = %v", cfg.ResultTTL)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("pdftotext fallback should default on")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("WORKER_COUNT", "8")
	t.Setenv("RESULT_TTL", "30m")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9999" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("worker count = %d", cfg.WorkerCount)
	}
	if cfg.ResultTTL != 30*time.Minute {
		t.Errorf("result ttl = %v", cfg.ResultTTL)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("pdftotext fallback should be off")
	}
}

func TestLoadRejectsNonsenseValues(t *testing.T) {
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("MAX_QUEUE_SIZE", "not-a-number")

	cfg := Load()
	if cfg.WorkerCount != 4 {
		t.Errorf("worker count = %d, want fallback", cfg.WorkerCount)
	}
	if cfg.MaxQueueSize != 100 {
		t.Errorf("queue size = %d, want fallback", cfg.MaxQueueSize)
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("expected error without api key")
	}
	if err := (Config{APIKey: "k"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
