package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string
	RequestTimeout time.Duration

	BankDriver string // file|sqlite|postgres
	BankDSN    string // path for file, DSN otherwise

	EpisodesPath string

	CORSOrigins []string

	// Cron spec for periodic pool reloads; empty disables it.
	ReloadCron string

	// 0 means time-seeded.
	Seed int64

	HarvestMainURL     string
	HarvestEpisodesURL string
	HarvestTimeout     time.Duration

	// Case- and punctuation-insensitive option text matching when grading.
	GradeFoldCase bool
}

// FromEnv loads .env (if any) and reads the environment.
func FromEnv() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}
	return Config{
		HTTPAddr:           envOr("HTTP_ADDR", ":8000"),
		RequestTimeout:     envSeconds("REQUEST_TIMEOUT", 30),
		BankDriver:         envOr("BANK_DRIVER", "file"),
		BankDSN:            envOr("BANK_DSN", ""),
		EpisodesPath:       envOr("EPISODES_PATH", "scraped_data.json"),
		CORSOrigins:        csvOr("CORS_ORIGINS", "http://localhost:5173"),
		ReloadCron:         os.Getenv("RELOAD_CRON"),
		Seed:               int64(envInt("QUIZ_SEED", 0)),
		HarvestMainURL:     envOr("HARVEST_MAIN_URL", "https://en.wikipedia.org/wiki/Rick_and_Morty"),
		HarvestEpisodesURL: envOr("HARVEST_EPISODES_URL", "https://en.wikipedia.org/wiki/List_of_Rick_and_Morty_episodes"),
		HarvestTimeout:     envSeconds("HARVEST_TIMEOUT", 15),
		GradeFoldCase:      envBool("GRADE_FOLD_CASE", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", k, v, def)
		return def
	}
	return n
}

// envSeconds reads a duration in whole seconds; values <= 0 fall back to def.
func envSeconds(k string, def int) time.Duration {
	n := envInt(k, def)
	if n <= 0 {
		log.Printf("config: %s=%d must be positive, using %d", k, n, def)
		n = def
	}
	return time.Duration(n) * time.Second
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
