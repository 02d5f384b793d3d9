package config

import (
	"os"
	"strings"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// Optional YAML overrides for the built-in tables; empty means use
	// the compiled-in defaults.
	NormTablePath        string
	CorrelationTablePath string

	// Redis-backed result cache; empty address disables caching.
	RedisAddr     string
	RedisPassword string

	EnableLocalAuth bool
	AdminUser       string
	AdminPassHash   string // bcrypt

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Mode:                 mode,
		HTTPAddr:             addr,
		DBDriver:             envOr("DB_DRIVER", "sqlite"),
		DBDSN:                envOr("DB_DSN", ""),
		NormTablePath:        os.Getenv("NORM_TABLE_PATH"),
		CorrelationTablePath: os.Getenv("CORRELATION_TABLE_PATH"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		EnableLocalAuth:      envBool("ENABLE_LOCAL_AUTH", true),
		AdminUser:            envOr("ADMIN_USER", "admin"),
		AdminPassHash:        os.Getenv("ADMIN_PASS_HASH"),
		CORSOriginsOnline:    csvOr("CORS_ORIGINS_ONLINE", "https://scores.psymetric.io"),
		CORSOriginsOffline:   csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:3000"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
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
