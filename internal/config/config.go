package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cache backends
const (
	CacheBackendRedis  = "redis"
	CacheBackendValkey = "valkey"
	CacheBackendMemory = "memory"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Valkey    ValkeyConfig
	Cache     CacheConfig
	Mapbox    MapboxConfig
	Geocoding GeocodingConfig
	Search    SearchConfig
	Images    ImagesConfig
	Log       LogConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host               string
	Port               int
	Env                string
	CORSAllowedOrigins string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type ValkeyConfig struct {
	Addr     string
	Password string
}

type CacheConfig struct {
	Backend       string
	SweepInterval time.Duration
}

type MapboxConfig struct {
	AccessToken    string
	BaseURL        string
	RequestTimeout time.Duration
}

type GeocodingConfig struct {
	DefaultCountry  string
	GeocodeTTL      time.Duration
	AutocompleteTTL time.Duration
	NegativeTTL     time.Duration
}

type SearchConfig struct {
	DefaultAddressRadius float64
	DistrictQualifiers   []string
}

type ImagesConfig struct {
	// File - путь к YAML каталогу изображений; пусто - встроенный каталог
	File string
}

type LogConfig struct {
	Level  string
	Format string
}

type WorkerConfig struct {
	Enabled        bool
	ConsumerGroup  string
	MaxRetries     int
	DefaultCountry string
}

// Load читает конфигурацию из окружения и необязательного .env файла
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:               v.GetString("API_HOST"),
			Port:               v.GetInt("API_PORT"),
			Env:                v.GetString("API_ENV"),
			CORSAllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Valkey: ValkeyConfig{
			Addr:     v.GetString("VALKEY_ADDR"),
			Password: v.GetString("VALKEY_PASSWORD"),
		},
		Cache: CacheConfig{
			Backend:       strings.ToLower(v.GetString("CACHE_BACKEND")),
			SweepInterval: v.GetDuration("CACHE_SWEEP_INTERVAL"),
		},
		Mapbox: MapboxConfig{
			AccessToken:    v.GetString("MAPBOX_ACCESS_TOKEN"),
			BaseURL:        strings.TrimRight(v.GetString("MAPBOX_BASE_URL"), "/"),
			RequestTimeout: time.Duration(v.GetInt("MAPBOX_REQUEST_TIMEOUT")) * time.Second,
		},
		Geocoding: GeocodingConfig{
			DefaultCountry:  strings.ToLower(v.GetString("GEOCODE_DEFAULT_COUNTRY")),
			GeocodeTTL:      v.GetDuration("GEOCODE_TTL"),
			AutocompleteTTL: v.GetDuration("AUTOCOMPLETE_TTL"),
			NegativeTTL:     v.GetDuration("GEOCODE_NEGATIVE_TTL"),
		},
		Search: SearchConfig{
			DefaultAddressRadius: v.GetFloat64("SEARCH_DEFAULT_ADDRESS_RADIUS"),
			DistrictQualifiers:   parseList(v.GetString("SEARCH_DISTRICT_QUALIFIERS")),
		},
		Images: ImagesConfig{
			File: v.GetString("ROOM_IMAGES_FILE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Worker: WorkerConfig{
			Enabled:        v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:  v.GetString("WORKER_CONSUMER_GROUP"),
			MaxRetries:     v.GetInt("WORKER_MAX_RETRIES"),
			DefaultCountry: strings.ToLower(v.GetString("WORKER_DEFAULT_COUNTRY")),
		},
	}

	if cfg.Worker.DefaultCountry == "" {
		cfg.Worker.DefaultCountry = cfg.Geocoding.DefaultCountry
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "rooms")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("VALKEY_ADDR", "localhost:6379")

	v.SetDefault("CACHE_BACKEND", CacheBackendRedis)
	v.SetDefault("CACHE_SWEEP_INTERVAL", time.Minute)

	v.SetDefault("MAPBOX_BASE_URL", "https://api.mapbox.com")
	v.SetDefault("MAPBOX_REQUEST_TIMEOUT", 10)

	v.SetDefault("GEOCODE_DEFAULT_COUNTRY", "vn")
	v.SetDefault("GEOCODE_TTL", 30*24*time.Hour)
	v.SetDefault("AUTOCOMPLETE_TTL", 24*time.Hour)
	v.SetDefault("GEOCODE_NEGATIVE_TTL", time.Hour)

	v.SetDefault("SEARCH_DEFAULT_ADDRESS_RADIUS", 5000)
	v.SetDefault("SEARCH_DISTRICT_QUALIFIERS", "Quận")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("WORKER_ENABLED", true)
	v.SetDefault("WORKER_CONSUMER_GROUP", "room-geocode-workers")
	v.SetDefault("WORKER_MAX_RETRIES", 3)
}

func (c *Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendRedis, CacheBackendValkey, CacheBackendMemory:
	default:
		return fmt.Errorf("invalid CACHE_BACKEND %q: expected redis, valkey or memory", c.Cache.Backend)
	}
	if c.Search.DefaultAddressRadius <= 0 || c.Search.DefaultAddressRadius > 50000 {
		return fmt.Errorf("invalid SEARCH_DEFAULT_ADDRESS_RADIUS %v: must be in (0, 50000]", c.Search.DefaultAddressRadius)
	}
	if c.Mapbox.RequestTimeout <= 0 {
		return fmt.Errorf("invalid MAPBOX_REQUEST_TIMEOUT: must be positive")
	}
	return nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// DSN - строка подключения для pgx stdlib драйвера
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s application_name=room-search",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
