package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(Load),
)

// Config holds application configuration.
type Config struct {
	AppName     string
	AppVersion  string
	Environment string
	HTTPPort    string

	AuthJWTSecret    string
	AuthRequireToken bool

	DBType            string
	DBHost            string
	DBPort            string
	DBName            string
	DBUser            string
	DBPassword        string
	DBSSL             bool
	SQLitePath        string
	DBMaxIdleConn     int
	DBMaxOpenConn     int
	DBConnMaxIdleTime int
	DBConnectTimeout  int

	RateLimit RateLimitConfig
	Bootstrap BootstrapConfig
}

type RateLimitConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	LoginRate     float64
	LoginBurst    int
}

// Enabled reports whether a Redis backend was configured for login throttling.
func (c RateLimitConfig) Enabled() bool {
	return strings.TrimSpace(c.RedisAddr) != ""
}

type BootstrapConfig struct {
	EnsureDefaultCompany bool
	DefaultCompanyName   string
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_SERVICE", "panorama")
	v.SetDefault("APP_VERSION", "0.1.0")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "3000")

	v.SetDefault("DB_TYPE", "postgres")
	v.SetDefault("PGHOST", "localhost")
	v.SetDefault("PGPORT", "5432")
	v.SetDefault("PGDATABASE", "postgres")
	v.SetDefault("PGUSER", "postgres")
	v.SetDefault("SSL", false)
	v.SetDefault("SQLITE_PATH", "panorama.db")
	v.SetDefault("DB_MAX_IDLE_CONN", 5)
	v.SetDefault("DB_MAX_OPEN_CONN", 10)
	v.SetDefault("DB_CONN_MAX_IDLE_TIME", 30)
	v.SetDefault("DB_CONNECT_TIMEOUT", 5)

	v.SetDefault("AUTH_REQUIRE_TOKEN", false)
	v.SetDefault("LOGIN_RATE_PER_SECOND", 1.0)
	v.SetDefault("LOGIN_BURST", 5)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("BOOTSTRAP_DEFAULT_COMPANY", true)
	v.SetDefault("BOOTSTRAP_COMPANY_NAME", "Default Company")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) Config {
	return Config{
		AppName:     strings.TrimSpace(v.GetString("APP_SERVICE")),
		AppVersion:  strings.TrimSpace(v.GetString("APP_VERSION")),
		Environment: strings.ToLower(strings.TrimSpace(v.GetString("ENVIRONMENT"))),
		HTTPPort:    strings.TrimSpace(v.GetString("PORT")),

		AuthJWTSecret:    strings.TrimSpace(v.GetString("JWT_SECRET")),
		AuthRequireToken: v.GetBool("AUTH_REQUIRE_TOKEN"),

		DBType:            normalizeDBType(v.GetString("DB_TYPE")),
		DBHost:            v.GetString("PGHOST"),
		DBPort:            v.GetString("PGPORT"),
		DBName:            v.GetString("PGDATABASE"),
		DBUser:            v.GetString("PGUSER"),
		DBPassword:        v.GetString("PGPASSWORD"),
		DBSSL:             v.GetBool("SSL"),
		SQLitePath:        v.GetString("SQLITE_PATH"),
		DBMaxIdleConn:     v.GetInt("DB_MAX_IDLE_CONN"),
		DBMaxOpenConn:     v.GetInt("DB_MAX_OPEN_CONN"),
		DBConnMaxIdleTime: v.GetInt("DB_CONN_MAX_IDLE_TIME"),
		DBConnectTimeout:  v.GetInt("DB_CONNECT_TIMEOUT"),

		RateLimit: RateLimitConfig{
			RedisAddr:     strings.TrimSpace(v.GetString("REDIS_ADDR")),
			RedisPassword: strings.TrimSpace(v.GetString("REDIS_PASSWORD")),
			RedisDB:       v.GetInt("REDIS_DB"),
			LoginRate:     v.GetFloat64("LOGIN_RATE_PER_SECOND"),
			LoginBurst:    v.GetInt("LOGIN_BURST"),
		},
		Bootstrap: BootstrapConfig{
			EnsureDefaultCompany: v.GetBool("BOOTSTRAP_DEFAULT_COMPANY"),
			DefaultCompanyName:   strings.TrimSpace(v.GetString("BOOTSTRAP_COMPANY_NAME")),
		},
	}
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func normalizeDBType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "postgres"
	}
}
