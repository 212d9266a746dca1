package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
)

type Config struct {
	Port        int
	DatabaseURL string
	LogLevel    string
}

func Load() Config {
	return Config{
		Port:        envInt("SECURECHECK_PORT", 8600),
		DatabaseURL: databaseURL(),
		LogLevel:    envStr("LOG_LEVEL", "info"),
	}
}

// databaseURL prefers a full DATABASE_URL and otherwise assembles one from
// the conventional PG* variables.
func databaseURL() string {
	if u := os.Getenv("DATABASE_URL"); u != "" {
		return u
	}

	host := envStr("PGHOST", "localhost")
	port := envStr("PGPORT", "5432")
	dbname := envStr("PGDATABASE", "traffic_data")
	user := envStr("PGUSER", "postgres")
	pass := os.Getenv("PGPASSWORD")

	userinfo := url.QueryEscape(user)
	if pass != "" {
		userinfo += ":" + url.QueryEscape(pass)
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s", userinfo, host, port, dbname)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
