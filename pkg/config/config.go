package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Password PasswordConfig
	CORS     CORSConfig
	Features FeatureFlagsConfig
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
	Env          string `envconfig:"STOCKROOM_APP_ENV" default:"development"`
	Port         string `envconfig:"STOCKROOM_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"STOCKROOM_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STOCKROOM_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"STOCKROOM_DB_DSN"`

	Host     string `envconfig:"STOCKROOM_DB_HOST"`
	Port     int    `envconfig:"STOCKROOM_DB_PORT" default:"5432"`
	User     string `envconfig:"STOCKROOM_DB_USER"`
	Password string `envconfig:"STOCKROOM_DB_PASSWORD"`
	Name     string `envconfig:"STOCKROOM_DB_NAME"`
	SSLMode  string `envconfig:"STOCKROOM_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"STOCKROOM_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"STOCKROOM_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"STOCKROOM_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"STOCKROOM_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type JWTConfig struct {
	// Secret is deliberately not required at load time: a missing secret is
	// reported as a server-configuration failure when a token is minted or
	// verified, not as a boot failure.
	Secret          string `envconfig:"STOCKROOM_JWT_SECRET"`
	Issuer          string `envconfig:"STOCKROOM_JWT_ISSUER" default:"stockroom-api"`
	ExpirationHours int    `envconfig:"STOCKROOM_JWT_EXPIRATION_HOURS" default:"168"`
}

// TokenTTL returns the token validity window.
func (j JWTConfig) TokenTTL() time.Duration {
	if j.ExpirationHours <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"STOCKROOM_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"STOCKROOM_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"STOCKROOM_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"STOCKROOM_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"STOCKROOM_ARGON_KEY_LEN" default:"32"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"STOCKROOM_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate   bool `envconfig:"STOCKROOM_AUTO_MIGRATE" default:"false"`
	SeedDemoUsers bool `envconfig:"STOCKROOM_SEED_DEMO_USERS" default:"false"`
	// ProtectProductWrites gates product create/update/delete behind the same
	// bearer-token middleware as item writes. Kept as a flag because the
	// product module shipped ungated.
	ProtectProductWrites bool `envconfig:"STOCKROOM_PROTECT_PRODUCT_WRITES" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	pieces := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range pieceDBEnvVars {
		if pieces[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
