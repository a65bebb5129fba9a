package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Security      SecurityConfig
	Password      PasswordConfig
	Seed          SeedConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"JOBBOARD_APP_ENV" required:"true"`
	Port         string `envconfig:"JOBBOARD_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"JOBBOARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"JOBBOARD_LOG_WARN_STACK" default:"false"`
	FrontendURL  string `envconfig:"JOBBOARD_FRONTEND_URL" default:"http://localhost:3001"`
	SeedOnBoot   bool   `envconfig:"JOBBOARD_SEED_ON_BOOT" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev) || strings.EqualFold(a.Env, "development")
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd) || strings.EqualFold(a.Env, "production")
}

type DBConfig struct {
	DSN    string `envconfig:"JOBBOARD_DB_DSN"`
	Driver string `envconfig:"JOBBOARD_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"JOBBOARD_DB_HOST"`
	LegacyPort     int    `envconfig:"JOBBOARD_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"JOBBOARD_DB_USERNAME"`
	LegacyPassword string `envconfig:"JOBBOARD_DB_PASSWORD"`
	LegacyName     string `envconfig:"JOBBOARD_DB_NAME"`
	LegacySSLMode  string `envconfig:"JOBBOARD_DB_SSLMODE" default:"disable"`

	SQLitePath string `envconfig:"JOBBOARD_SQLITE_PATH" default:"jobboard.db"`

	MaxOpenConns    int           `envconfig:"JOBBOARD_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"JOBBOARD_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"JOBBOARD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"JOBBOARD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	Enabled      bool          `envconfig:"JOBBOARD_REDIS_ENABLED" default:"true"`
	URL          string        `envconfig:"JOBBOARD_REDIS_URL"`
	Address      string        `envconfig:"JOBBOARD_REDIS_ADDR"`
	Password     string        `envconfig:"JOBBOARD_REDIS_PASSWORD"`
	DB           int           `envconfig:"JOBBOARD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"JOBBOARD_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"JOBBOARD_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"JOBBOARD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"JOBBOARD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"JOBBOARD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"JOBBOARD_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"JOBBOARD_JWT_ISSUER" default:"jobboard"`
	ExpirationMinutes int    `envconfig:"JOBBOARD_JWT_EXPIRATION_MINUTES" default:"10080"`
	CookieName        string `envconfig:"JOBBOARD_JWT_COOKIE_NAME" default:"access_token"`
}

// TTL returns the access token lifetime; the identity cookie shares it.
func (j JWTConfig) TTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// Cookie returns the configured cookie name or the default one.
func (j JWTConfig) Cookie() string {
	if name := strings.TrimSpace(j.CookieName); name != "" {
		return name
	}
	return DefaultCookieName
}

type SecurityConfig struct {
	APIKey string `envconfig:"JOBBOARD_API_KEY" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"JOBBOARD_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"JOBBOARD_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"JOBBOARD_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"JOBBOARD_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"JOBBOARD_ARGON_KEY_LEN" default:"32"`
}

type SeedConfig struct {
	AdminEmail  string `envconfig:"JOBBOARD_SEED_ADMIN_EMAIL" default:"admin@riwi.io"`
	GestorEmail string `envconfig:"JOBBOARD_SEED_GESTOR_EMAIL" default:"gestor@riwi.io"`
	Password    string `envconfig:"JOBBOARD_SEED_PASSWORD" default:"admin123"`

	// DemoPassword is shared by the coder accounts of the demo data set.
	DemoPassword string `envconfig:"JOBBOARD_SEED_DEMO_PASSWORD" default:"123456"`
}

type AuthRateLimitConfig struct {
	LoginWindow        time.Duration `envconfig:"JOBBOARD_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit    int           `envconfig:"JOBBOARD_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit       int           `envconfig:"JOBBOARD_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	RegisterWindow     time.Duration `envconfig:"JOBBOARD_AUTH_RATE_LIMIT_REGISTER_WINDOW" default:"5m"`
	RegisterEmailLimit int           `envconfig:"JOBBOARD_AUTH_RATE_LIMIT_REGISTER_EMAIL_LIMIT" default:"3"`
	RegisterIPLimit    int           `envconfig:"JOBBOARD_AUTH_RATE_LIMIT_REGISTER_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"JOBBOARD_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"JOBBOARD_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if db.DSN != "" || useSQLite {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
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
