package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port        int
	CORSOrigins []string
	LogLevel    string
	Development bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	ExpireMinutes int
}

type GoogleAPIConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
}

type AWSConfig struct {
	Region       string
	ExportBucket string
}

type WorkerConfig struct {
	Enabled         bool
	MissedSweepSpec string // cron spec for the missed-event sweep
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	GoogleAPI GoogleAPIConfig
	AWS       AWSConfig
	Worker    WorkerConfig
}

var (
	instance *Config
	once     sync.Once
)

// Load reads .env (when present) and environment variables into the config singleton
func Load() (*Config, error) {
	var loadErr error
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		v.AutomaticEnv()

		v.SetDefault("PORT", 7070)
		v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
		v.SetDefault("LOG_LEVEL", "info")
		v.SetDefault("DEVELOPMENT", false)

		v.SetDefault("DB_HOST", "localhost")
		v.SetDefault("DB_PORT", 5432)
		v.SetDefault("DB_USER", "postgres")
		v.SetDefault("DB_PASSWORD", "")
		v.SetDefault("DB_NAME", "calendar")
		v.SetDefault("DB_SSLMODE", "disable")

		v.SetDefault("REDIS_ADDR", "localhost:6379")
		v.SetDefault("REDIS_PASSWORD", "")
		v.SetDefault("REDIS_DB", 0)

		v.SetDefault("JWT_EXPIRE_MINUTES", 60*24)

		v.SetDefault("AWS_REGION", "us-east-1")
		v.SetDefault("EXPORT_S3_BUCKET", "")

		v.SetDefault("WORKER_ENABLED", true)
		v.SetDefault("MISSED_SWEEP_SPEC", "@every 5m")

		cfg := &Config{
			Server: ServerConfig{
				Port:        v.GetInt("PORT"),
				CORSOrigins: v.GetStringSlice("CORS_ORIGINS"),
				LogLevel:    v.GetString("LOG_LEVEL"),
				Development: v.GetBool("DEVELOPMENT"),
			},
			Database: DatabaseConfig{
				Host:     v.GetString("DB_HOST"),
				Port:     v.GetInt("DB_PORT"),
				User:     v.GetString("DB_USER"),
				Password: v.GetString("DB_PASSWORD"),
				Name:     v.GetString("DB_NAME"),
				SSLMode:  v.GetString("DB_SSLMODE"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
			JWT: JWTConfig{
				Secret:        v.GetString("JWT_SECRET"),
				ExpireMinutes: v.GetInt("JWT_EXPIRE_MINUTES"),
			},
			GoogleAPI: GoogleAPIConfig{
				ClientID:     v.GetString("GOOGLE_CLIENT_ID"),
				ClientSecret: v.GetString("GOOGLE_CLIENT_SECRET"),
				RedirectURI:  v.GetString("GOOGLE_REDIRECT_URI"),
			},
			AWS: AWSConfig{
				Region:       v.GetString("AWS_REGION"),
				ExportBucket: v.GetString("EXPORT_S3_BUCKET"),
			},
			Worker: WorkerConfig{
				Enabled:         v.GetBool("WORKER_ENABLED"),
				MissedSweepSpec: v.GetString("MISSED_SWEEP_SPEC"),
			},
		}

		if cfg.JWT.Secret == "" {
			loadErr = fmt.Errorf("JWT_SECRET is required")
			return
		}

		instance = cfg
	})

	return instance, loadErr
}

// Get returns the loaded config. Panics if Load has not succeeded.
func Get() *Config {
	if instance == nil {
		panic("config not initialized")
	}
	return instance
}

// GetSafe returns the loaded config and whether it has been initialized
func GetSafe() (*Config, bool) {
	return instance, instance != nil
}
