package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	OTP         OTPConfig
	Mail        MailConfig
	SMS         SMSConfig
	Storage     StorageConfig
	Metrics     MetricsConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
}

type OTPConfig struct {
	Salt          string
	Period        time.Duration
	MaxAttempts   int64
	AttemptWindow time.Duration
	SMSEnabled    bool
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMSConfig struct {
	BaseURL string
	Token   string
	From    string
	Timeout time.Duration
}

type StorageConfig struct {
	UploadDir     string
	PublicBaseURL string
	MaxUploadSize int64
}

type MetricsConfig struct {
	APIKey string
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getString("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getString("SERVER_PORT", "3002"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "storefront"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			AutoMigrate:     getBool("DB_AUTO_MIGRATE", true),
		},
		Redis: RedisConfig{
			Enabled:  getBool("REDIS_ENABLED", false),
			Host:     getString("REDIS_HOST", "localhost"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Enabled:  getBool("RABBITMQ_ENABLED", false),
			Host:     getString("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			AccessSecret:      getString("JWT_ACCESS_SECRET", "change-me-access"),
			RefreshSecret:     getString("JWT_REFRESH_SECRET", "change-me-refresh"),
			AccessExpiration:  getDuration("JWT_ACCESS_EXPIRATION", 15*time.Minute),
			RefreshExpiration: getDuration("JWT_REFRESH_EXPIRATION", 7*24*time.Hour),
		},
		OTP: OTPConfig{
			Salt:          getString("OTP_SALT", "change-me-salt"),
			Period:        getDuration("OTP_PERIOD", 60*time.Second),
			MaxAttempts:   int64(getInt("OTP_MAX_ATTEMPTS", 5)),
			AttemptWindow: getDuration("OTP_ATTEMPT_WINDOW", 15*time.Minute),
			SMSEnabled:    getBool("OTP_SMS_ENABLED", false),
		},
		Mail: MailConfig{
			Host:     getString("SMTP_HOST", "localhost"),
			Port:     getInt("SMTP_PORT", 587),
			Username: getString("SMTP_USERNAME", ""),
			Password: getString("SMTP_PASSWORD", ""),
			From:     getString("SMTP_FROM", "no-reply@storefront.local"),
		},
		SMS: SMSConfig{
			BaseURL: getString("SMS_BASE_URL", "https://notify.eskiz.uz/api"),
			Token:   getString("SMS_TOKEN", ""),
			From:    getString("SMS_FROM", "4546"),
			Timeout: getDuration("SMS_TIMEOUT", 10*time.Second),
		},
		Storage: StorageConfig{
			UploadDir:     getString("UPLOAD_DIR", "uploads"),
			PublicBaseURL: getString("PUBLIC_BASE_URL", "http://localhost:3002"),
			MaxUploadSize: int64(getInt("MAX_UPLOAD_SIZE", 10<<20)),
		},
		Metrics: MetricsConfig{
			APIKey: getString("METRICS_API_KEY", ""),
		},
	}
}

// GetDSN returns the MySQL DSN for sqlx and the migrator
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&multiStatements=true",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
