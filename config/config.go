package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// External detailing API (availability, vehicles, bookings).
	DetailingAPIBaseURL string `mapstructure:"DETAILING_API_BASE_URL"`
	DetailingAPIKey     string `mapstructure:"DETAILING_API_KEY"`
	DetailingAPITimeout int    `mapstructure:"DETAILING_API_TIMEOUT_SECONDS"`

	// External notification dispatcher.
	NotifyAPIBaseURL string `mapstructure:"NOTIFY_API_BASE_URL"`
	NotifyAPIKey     string `mapstructure:"NOTIFY_API_KEY"`

	// Booking session cache TTL in minutes.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Reminder worker concurrency.
	ReminderWorkerConcurrency int `mapstructure:"REMINDER_WORKER_CONCURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 1)
	viper.SetDefault("DETAILING_API_BASE_URL", "http://localhost:8090")
	viper.SetDefault("DETAILING_API_TIMEOUT_SECONDS", 30)
	viper.SetDefault("NOTIFY_API_BASE_URL", "http://localhost:8091")
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REMINDER_WORKER_CONCURRENCY", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
