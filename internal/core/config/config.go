package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host              string
	Port              int
	ReadTimeoutSec    int
	WriteTimeoutSec   int
	IdleTimeoutSec    int
	RequestTimeoutSec int
	MaxBodyBytes      int64
	CORSOrigins       []string `mapstructure:"cors_origins"`
}

type Limits struct {
	RPS           float64
	Burst         int
	MaxConcurrent int64   `mapstructure:"max_concurrent"`
	LoginRPS      float64 `mapstructure:"login_rps"`
	LoginBurst    int     `mapstructure:"login_burst"`
}

type App struct {
	Name    string
	Env     string
	Version string
	HTTP    HTTP
	Limits  Limits
}

type LogFile struct {
	Enable     bool
	Filename   string
	MaxSizeMB  int `mapstructure:"max_size_mb"`
	MaxBackups int `mapstructure:"max_backups"`
	MaxAgeDays int `mapstructure:"max_age_days"`
	Compress   bool
}

type Log struct {
	Level string
	JSON  bool
	File  LogFile
}

type JWT struct {
	Secret            string
	Issuer            string
	AccessTokenTTLMin int `mapstructure:"access_token_ttl_min"`
}

// Auth 唯一的一组登录凭据；PasswordHash（bcrypt）优先于 Password
type Auth struct {
	Username     string
	Password     string
	PasswordHash string `mapstructure:"password_hash"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
	TTLSec   int    `mapstructure:"ttl_sec"`
}

type DB struct {
	Driver             string // sqlite | postgres | mysql | memory
	DSN                string
	Username           string
	Password           string
	MaxOpenConns       int    `mapstructure:"max_open_conns"`
	MaxIdleConns       int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeMin int    `mapstructure:"conn_max_lifetime_min"`
	AutoMigrate        bool   `mapstructure:"auto_migrate"`
	LogLevel           string `mapstructure:"log_level"`
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	Auth  Auth
	DB    DB
	Redis Redis `mapstructure:"redis"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Employee Management API")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 8000)
	v.SetDefault("app.http.readtimeoutsec", 5)
	v.SetDefault("app.http.writetimeoutsec", 10)
	v.SetDefault("app.http.idletimeoutsec", 60)
	v.SetDefault("app.http.requesttimeoutsec", 10)
	v.SetDefault("app.http.maxbodybytes", 1<<20)
	v.SetDefault("app.http.cors_origins", []string{"*"})
	v.SetDefault("app.limits.rps", 200)
	v.SetDefault("app.limits.burst", 400)
	v.SetDefault("app.limits.max_concurrent", 300)
	v.SetDefault("app.limits.login_rps", 1)
	v.SetDefault("app.limits.login_burst", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file.enable", false)
	v.SetDefault("log.file.filename", "logs/app.log")
	v.SetDefault("log.file.max_size_mb", 100)
	v.SetDefault("log.file.max_backups", 7)
	v.SetDefault("log.file.max_age_days", 30)
	v.SetDefault("log.file.compress", true)

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "employee-api")
	v.SetDefault("jwt.access_token_ttl_min", 30)

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "")
	v.SetDefault("auth.password_hash", "")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "employees.db")
	v.SetDefault("db.username", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.max_open_conns", 0)
	v.SetDefault("db.max_idle_conns", 0)
	v.SetDefault("db.conn_max_lifetime_min", 0)
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.log_level", "warn")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "employee-api:")
	v.SetDefault("redis.ttl_sec", 60)
}

// LoadFrom 读取 yaml（文件不存在时只用默认值 + 环境变量），环境变量前缀 APP_，如 APP_JWT_SECRET
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, c.Validate()
}

func Load(path string) *Config {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	c, err := LoadFrom(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	return c
}

func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: jwt.secret is required")
	}
	if c.Auth.Username == "" || (c.Auth.Password == "" && c.Auth.PasswordHash == "") {
		return errors.New("config: auth.username and auth.password (or auth.password_hash) are required")
	}
	switch c.DB.Driver {
	case "sqlite", "postgres", "mysql", "memory":
	default:
		return fmt.Errorf("config: unsupported db.driver %q", c.DB.Driver)
	}
	return nil
}
