package config

import (
	"testing"
	"time"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_ADDR", "BANK_DRIVER", "BANK_DSN", "CORS_ORIGINS", "QUIZ_SEED", "RELOAD_CRON", "REQUEST_TIMEOUT", "GRADE_FOLD_CASE"} {
		t.Setenv(k, "")
	}
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BankDriver != "file" || cfg.BankDSN != "" {
		t.Errorf("bank = %q %q", cfg.BankDriver, cfg.BankDSN)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.Seed != 0 || cfg.ReloadCron != "" {
		t.Errorf("seed/cron = %d %q", cfg.Seed, cfg.ReloadCron)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
	if cfg.GradeFoldCase {
		t.Error("GradeFoldCase should default to false")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BANK_DRIVER", "sqlite")
	t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")
	t.Setenv("QUIZ_SEED", "1234")
	t.Setenv("HARVEST_TIMEOUT", "not-a-number")

	cfg := FromEnv()
	if cfg.BankDriver != "sqlite" {
		t.Errorf("BankDriver = %q", cfg.BankDriver)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
	if cfg.HarvestTimeout != 15*time.Second {
		t.Errorf("HarvestTimeout = %v", cfg.HarvestTimeout)
	}
}

func TestFromEnv_NonPositiveTimeouts(t *testing.T) {
	for _, v := range []string{"0", "-5"} {
		t.Setenv("REQUEST_TIMEOUT", v)
		t.Setenv("HARVEST_TIMEOUT", v)
		cfg := FromEnv()
		if cfg.RequestTimeout != 30*time.Second {
			t.Errorf("REQUEST_TIMEOUT=%s: RequestTimeout = %v", v, cfg.RequestTimeout)
		}
		if cfg.HarvestTimeout != 15*time.Second {
			t.Errorf("HARVEST_TIMEOUT=%s: HarvestTimeout = %v", v, cfg.HarvestTimeout)
		}
	}
	t.Setenv("REQUEST_TIMEOUT", "5")
	if cfg := FromEnv(); cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.RequestTimeout)
	}
}

func TestFromEnv_GradeFoldCase(t *testing.T) {
	for v, want := range map[string]bool{"true": true, "1": true, "no": false, "bogus": false} {
		t.Setenv("GRADE_FOLD_CASE", v)
		if got := FromEnv().GradeFoldCase; got != want {
			t.Errorf("GRADE_FOLD_CASE=%s: got %v, want %v", v, got, want)
		}
	}
}
