package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int

	DBDriver string
	DBDsn    string

	ListLimit           int
	UploadDir           string
	UploadMaxAge        time.Duration
	UploadSweepSchedule string
	CorsOrigins         string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	RedisEndpoint string
	RedisPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	LogLevel      string
	LogsDirectory string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 10000)
	v.SetDefault("DBDriver", "postgres")
	v.SetDefault("ListLimit", 500)
	v.SetDefault("UploadDir", "uploads")
	v.SetDefault("UploadMaxAge", time.Hour)
	v.SetDefault("UploadSweepSchedule", "@every 30m")
	v.SetDefault("MailPort", 587)
	v.SetDefault("MinioBucket", "shipment-uploads")
	v.SetDefault("LogLevel", "info")
}

func bindEnv(v *viper.Viper) {
	v.BindEnv("ServiceHost", "HOST")
	v.BindEnv("ServicePort", "PORT")
	v.BindEnv("DBDriver", "DB_DRIVER")
	v.BindEnv("DBDsn", "DATABASE_URL")
	v.BindEnv("ListLimit", "LIST_LIMIT")
	v.BindEnv("UploadDir", "UPLOAD_DIR")
	v.BindEnv("CorsOrigins", "CORS_ORIGINS")
	v.BindEnv("MailHost", "MAIL_HOST")
	v.BindEnv("MailPort", "MAIL_PORT")
	v.BindEnv("MailUser", "MAIL_USER")
	v.BindEnv("MailPass", "MAIL_PASS")
	v.BindEnv("MailFrom", "MAIL_FROM")
	v.BindEnv("RedisEndpoint", "REDIS_ENDPOINT")
	v.BindEnv("RedisPassword", "REDIS_PASSWORD")
	v.BindEnv("MinioEndpoint", "MINIO_ENDPOINT")
	v.BindEnv("MinioAccessKey", "MINIO_ACCESS_KEY")
	v.BindEnv("MinioSecretKey", "MINIO_SECRET_KEY")
	v.BindEnv("MinioBucket", "MINIO_BUCKET")
	v.BindEnv("MinioUseSSL", "MINIO_USE_SSL")
	v.BindEnv("LogLevel", "LOG_LEVEL")
	v.BindEnv("LogsDirectory", "LOGS_DIR")
}

// NewConfig reads config/<CONFIG_NAME>.toml, then .env and the process
// environment. A missing config file is not an error.
func NewConfig() (*Config, error) {
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		logrus.Warn("config file not found, using defaults and environment")
	}

	// Чтение .env
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}
	bindEnv(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}

func (c *Config) MailEnabled() bool {
	return c.MailHost != ""
}

func (c *Config) RedisEnabled() bool {
	return c.RedisEndpoint != ""
}

func (c *Config) MinioEnabled() bool {
	return c.MinioEndpoint != "" && c.MinioAccessKey != ""
}
