package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// App holds process-wide settings that used to live as literals scattered
// through the old dashboard (base origin, upload dir). Loaded once at startup.
type App struct {
	Port           string
	PublicBaseURL  string
	UploadDir      string
	MaxUploadBytes int64
	AllowedOrigins []string
	StatsCacheTTL  time.Duration
}

func LoadApp() App {
	return App{
		Port:           getEnv("PORT", "8080"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 5<<20),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "*")),
		StatsCacheTTL:  time.Duration(getEnvAsInt64("STATS_CACHE_TTL_SECONDS", 30)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvAsInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
