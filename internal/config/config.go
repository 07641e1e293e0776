package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string `mapstructure:"PORT"`
	Environment       string `mapstructure:"ENVIRONMENT"`
	DatabaseDriver    string `mapstructure:"DATABASE_DRIVER"`
	DatabasePath      string `mapstructure:"DATABASE_PATH"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	AutoMigrate       bool   `mapstructure:"AUTO_MIGRATE"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	LogFormat         string `mapstructure:"LOG_FORMAT"`
	OTelEnabled       bool   `mapstructure:"OTEL_ENABLED"`
	OTelCollectorAddr string `mapstructure:"OTEL_COLLECTOR_ADDR"`
	OTelServiceName   string `mapstructure:"OTEL_SERVICE_NAME"`
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func LoadConfig() *Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("DATABASE_DRIVER", DriverSQLite)
	viper.SetDefault("DATABASE_PATH", "hotels.db")
	viper.SetDefault("AUTO_MIGRATE", true)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("OTEL_ENABLED", false)
	viper.SetDefault("OTEL_COLLECTOR_ADDR", "localhost:4317")
	viper.SetDefault("OTEL_SERVICE_NAME", "trip-hotels-api")

	viper.BindEnv("DATABASE_URL")
	viper.BindEnv("JWT_SECRET")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
