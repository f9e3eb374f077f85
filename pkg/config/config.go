package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "zencrm"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ZENCRM_APP_ENV" required:"true"`
	Port         string `envconfig:"ZENCRM_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"ZENCRM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ZENCRM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"ZENCRM_DB_DSN"`
	Driver string `envconfig:"ZENCRM_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"ZENCRM_DB_HOST"`
	LegacyPort     int    `envconfig:"ZENCRM_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"ZENCRM_DB_USER"`
	LegacyPassword string `envconfig:"ZENCRM_DB_PASSWORD"`
	LegacyName     string `envconfig:"ZENCRM_DB_NAME"`
	LegacySSLMode  string `envconfig:"ZENCRM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"ZENCRM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ZENCRM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ZENCRM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ZENCRM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"ZENCRM_REDIS_URL"`
	Address      string        `envconfig:"ZENCRM_REDIS_ADDR"`
	Password     string        `envconfig:"ZENCRM_REDIS_PASSWORD"`
	DB           int           `envconfig:"ZENCRM_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ZENCRM_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ZENCRM_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ZENCRM_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ZENCRM_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ZENCRM_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"ZENCRM_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"ZENCRM_JWT_ISSUER" default:"zencrm"`
	ExpirationMinutes int    `envconfig:"ZENCRM_JWT_EXPIRATION_MINUTES" default:"30"`
}

// Expiry returns the access token validity window.
func (j JWTConfig) Expiry() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	MinLength        int `envconfig:"ZENCRM_PASSWORD_MIN_LENGTH" default:"6"`
	ArgonMemoryKB    int `envconfig:"ZENCRM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"ZENCRM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"ZENCRM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"ZENCRM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"ZENCRM_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"ZENCRM_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"ZENCRM_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"ZENCRM_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"ZENCRM_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"ZENCRM_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"ZENCRM_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ZENCRM_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		"ZENCRM_DB_HOST": db.LegacyHost,
		"ZENCRM_DB_USER": db.LegacyUser,
		"ZENCRM_DB_NAME": db.LegacyName,
	}
	for _, env := range []string{"ZENCRM_DB_HOST", "ZENCRM_DB_USER", "ZENCRM_DB_NAME"} {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either ZENCRM_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
