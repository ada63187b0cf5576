package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type AuthCfg struct {
	// Secret signs access tokens (HS256). Never ship the default.
	Secret string
	// TokenExpireMin is the access token lifetime in minutes.
	TokenExpireMin int
	// BcryptCost of 0 falls back to the library default.
	BcryptCost int
}

type RedisCfg struct {
	Addr              string
	Password          string
	DB                int
	PoolSize          int
	LeaderboardTTLSec int
}

type MQCfg struct {
	URL   string
	Queue string
}

type Config struct {
	App      AppCfg
	Log      LogCfg
	Database DBCfg
	Auth     AuthCfg
	Redis    RedisCfg
	RabbitMQ MQCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_AUTH_SECRET -> auth.secret

	// Defaults apply whether or not a file is present.
	setDefaults(base)

	// Read the file (if any)
	if err := base.ReadInConfig(); err == nil {
		// Expand ${ENV} references in the file before parsing.
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No file is also allowed, using only env + defaults.
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "barchasb")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 8000)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("auth.secret", "supersecretkey")
	v.SetDefault("auth.tokenExpireMin", 15)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.leaderboardTTLSec", 30)
}
