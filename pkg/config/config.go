package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env    string `yaml:"env" validate:"omitempty,oneof=development production test"`
	Server struct {
		Port         int    `yaml:"port" validate:"required,gt=0,lte=65535"`
		PublicOrigin string `yaml:"public_origin" validate:"omitempty,url"`
	} `yaml:"server"`
	Backend struct {
		// BaseURL is the listings API origin. Empty means the serving origin.
		BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	} `yaml:"backend"`
	Map struct {
		TileURL     string  `yaml:"tile_url" validate:"required"`
		Attribution string  `yaml:"attribution" validate:"required"`
		Zoom        int     `yaml:"zoom" validate:"gte=0,lte=19"`
		FallbackLat float64 `yaml:"fallback_lat" validate:"gte=-90,lte=90"`
		FallbackLng float64 `yaml:"fallback_lng" validate:"gte=-180,lte=180"`
	} `yaml:"map"`
	Session struct {
		CookieName string        `yaml:"cookie_name" validate:"required"`
		IdleTTL    time.Duration `yaml:"idle_ttl" validate:"gt=0"`
	} `yaml:"session"`
	RateLimit struct {
		PerMinute int `yaml:"per_minute" validate:"gte=0"`
		Burst     int `yaml:"burst" validate:"gte=0"`
	} `yaml:"rate_limit"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,required"`
	} `yaml:"cors"`
	Log struct {
		Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	} `yaml:"log"`
}

// IsProduction reports whether the app runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// APIOrigin is the origin requests to the listings backend are issued against.
func (c *Config) APIOrigin() string {
	if c.Backend.BaseURL != "" {
		return c.Backend.BaseURL
	}
	if c.Server.PublicOrigin != "" {
		return c.Server.PublicOrigin
	}
	return fmt.Sprintf("http://localhost:%d", c.Server.Port)
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies env overrides and defaults, then validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	if env := os.Getenv("ENV"); env != "" {
		cfg.Env = env
	}
	if port := os.Getenv("PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT value: %w", err)
		}
		cfg.Server.Port = portNum
	}
	if origin := os.Getenv("PUBLIC_ORIGIN"); origin != "" {
		cfg.Server.PublicOrigin = origin
	}
	if base := os.Getenv("API_BASE_URL"); base != "" {
		cfg.Backend.BaseURL = base
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return fmt.Errorf("invalid SESSION_TTL value: %w", err)
		}
		cfg.Session.IdleTTL = d
	}
	if perMinute := os.Getenv("RATE_LIMIT_PER_MINUTE"); perMinute != "" {
		n, err := strconv.Atoi(perMinute)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE value: %w", err)
		}
		cfg.RateLimit.PerMinute = n
	}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = splitList(origins)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Map.TileURL == "" {
		cfg.Map.TileURL = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	}
	if cfg.Map.Attribution == "" {
		cfg.Map.Attribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = 4
	}
	if cfg.Map.FallbackLat == 0 && cfg.Map.FallbackLng == 0 {
		// geographic center of the contiguous US
		cfg.Map.FallbackLat = 39.8283
		cfg.Map.FallbackLng = -98.5795
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "pp_session"
	}
	if cfg.Session.IdleTTL == 0 {
		cfg.Session.IdleTTL = 2 * time.Hour
	}
	if cfg.RateLimit.PerMinute == 0 {
		cfg.RateLimit.PerMinute = 100
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func splitList(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
