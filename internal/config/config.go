package config

import (
	"fmt"
	"os"
	"time"

	"github.com/19smabtahinoor/Vocab-FlashCard/pkg/validator"
	"github.com/spf13/viper"
)

const (
	RemoteSupabase = "supabase"
	RemoteLocal    = "local"
	RemoteMemory   = "memory"
)

type Config struct {
	App      AppConfig    `mapstructure:"app" validate:"required"`
	BotToken string       `mapstructure:"bot_token"`
	Remote   RemoteConfig `mapstructure:"remote"`
	Auth     AuthConfig   `mapstructure:"auth"`
	Server   ServerConfig `mapstructure:"server"`
	DB       *DBConfig    `mapstructure:"db" validate:"omitempty"`
	Env      string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout           time.Duration `mapstructure:"timeout" validate:"min=1"`
	SignInAfterSignUp bool          `mapstructure:"sign_in_after_sign_up"`
}

type RemoteConfig struct {
	Mode    string `mapstructure:"mode" validate:"oneof=supabase local memory"`
	URL     string `mapstructure:"url" validate:"required_if=Mode supabase"`
	AnonKey string `mapstructure:"anon_key" validate:"required_if=Mode supabase"`
}

type AuthConfig struct {
	JWTSecret   string          `mapstructure:"jwt_secret"`
	AccessTTL   time.Duration   `mapstructure:"access_ttl" validate:"min=1"`
	RefreshTTL  time.Duration   `mapstructure:"refresh_ttl" validate:"min=1"`
	AutoConfirm bool            `mapstructure:"auto_confirm"`
	BcryptCost  int             `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Burst    int           `mapstructure:"burst" validate:"min=0"`
	Interval time.Duration `mapstructure:"interval" validate:"min=0"`
}

type ServerConfig struct {
	Addr           string        `mapstructure:"addr" validate:"required"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ServiceKey     string        `mapstructure:"service_key"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" validate:"min=0"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

var envBindings = map[string]string{
	"bot_token":          "BOT_TOKEN",
	"remote.url":         "SUPABASE_URL",
	"remote.anon_key":    "SUPABASE_ANON_KEY",
	"auth.jwt_secret":    "JWT_SECRET",
	"server.service_key": "SERVICE_KEY",
	"db.conn.host":       "DB_HOST",
	"db.conn.port":       "DB_PORT",
	"db.conn.user":       "DB_USER",
	"db.conn.password":   "DB_PASSWORD",
	"db.conn.name":       "DB_NAME",
	"db.conn.ssl":        "DB_SSL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("remote.mode", RemoteSupabase)
	v.SetDefault("auth.access_ttl", time.Hour)
	v.SetDefault("auth.refresh_ttl", 30*24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.rate_limit.burst", 5)
	v.SetDefault("auth.rate_limit.interval", 12*time.Second)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
}

func Init() (*Config, error) {
	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	return Load("configs", configName)
}

func Load(path, name string) (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName(name)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.Remote.Mode == RemoteLocal && cfg.DB == nil {
		return nil, fmt.Errorf("remote mode %q requires a db section", RemoteLocal)
	}
	if cfg.Remote.Mode != RemoteSupabase && len(cfg.Auth.JWTSecret) < 32 {
		return nil, fmt.Errorf("remote mode %q requires auth.jwt_secret of at least 32 bytes", cfg.Remote.Mode)
	}

	return &cfg, nil
}
