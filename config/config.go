// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/l3montree-dev/threatintel/utils"
)

// filled at build time
var (
	Version   string
	Commit    string
	Branch    string
	BuildDate string
)

const (
	DefaultCISAKEVURL   = "https://www.cisa.gov/sites/default/files/feeds/known_exploited_vulnerabilities.json"
	DefaultAbuseIPDBURL = "https://api.abuseipdb.com/api/v2/blacklist"
	DefaultURLhausURL   = "https://urlhaus-api.abuse.ch/v1/urls/recent/"
)

type FeedConfig struct {
	CISAKEVURL      string
	AbuseIPDBURL    string
	AbuseIPDBAPIKey string
	URLhausURL      string
	URLhausAuthKey  string
	Timeout         time.Duration
}

type AuthConfig struct {
	JWTSecret      []byte
	AccessTokenTTL time.Duration
	RateLimit      float64
}

type Config struct {
	APIAddr            string
	Environment        string
	ErrorTrackingDSN   string
	DisableAutoMigrate bool
	CORSAllowedOrigins []string

	Auth  AuthConfig
	Feeds FeedConfig
}

// FromEnv reads the configuration from the environment.
// shared.LoadConfig should be called before to pick up a .env file.
func FromEnv() (Config, error) {
	cfg := Config{
		APIAddr:            getEnv("API_ADDR", ":8080"),
		Environment:        getEnv("ENVIRONMENT", "dev"),
		ErrorTrackingDSN:   os.Getenv("ERROR_TRACKING_DSN"),
		DisableAutoMigrate: os.Getenv("DISABLE_AUTOMIGRATE") == "true",
		CORSAllowedOrigins: utils.CommaSeparated(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	var err error
	cfg.Feeds, err = FeedsFromEnv()
	if err != nil {
		return Config{}, err
	}

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET_KEY must be set")
	}
	cfg.Auth.JWTSecret = []byte(secret)

	cfg.Auth.AccessTokenTTL, err = getDuration("JWT_ACCESS_TOKEN_TTL", time.Hour)
	if err != nil {
		return Config{}, err
	}

	cfg.Auth.RateLimit = 5
	if raw := os.Getenv("AUTH_RATE_LIMIT"); raw != "" {
		cfg.Auth.RateLimit, err = strconv.ParseFloat(raw, 64)
		if err != nil || cfg.Auth.RateLimit <= 0 {
			return Config{}, fmt.Errorf("AUTH_RATE_LIMIT must be a positive number, got %q", raw)
		}
	}

	return cfg, nil
}

// FeedsFromEnv reads only the feed configuration. It is used by the cli which never issues tokens.
func FeedsFromEnv() (FeedConfig, error) {
	timeout, err := getDuration("FEED_TIMEOUT", 30*time.Second)
	if err != nil {
		return FeedConfig{}, err
	}
	return FeedConfig{
		CISAKEVURL:      getEnv("CISA_KEV_URL", DefaultCISAKEVURL),
		AbuseIPDBURL:    getEnv("ABUSEIPDB_URL", DefaultAbuseIPDBURL),
		AbuseIPDBAPIKey: os.Getenv("ABUSEIPDB_API_KEY"),
		URLhausURL:      getEnv("URLHAUS_URL", DefaultURLhausURL),
		URLhausAuthKey:  os.Getenv("URLHAUS_AUTH_KEY"),
		Timeout:         timeout,
	}, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}
