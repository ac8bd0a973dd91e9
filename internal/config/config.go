package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
		AdminEmail    string        `mapstructure:"admin_email"`
		AdminPassword string        `mapstructure:"admin_password"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Suggest struct {
		BaseURL string `mapstructure:"base_url"`
		APIKey  string `mapstructure:"api_key"`
		Model   string `mapstructure:"model"`
	} `mapstructure:"suggest"`
	Relay struct {
		Endpoint string `mapstructure:"endpoint"`
	} `mapstructure:"relay"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
}

func LoadConfig(paths ...string) (cfg Config, err error) {

	dir := "."
	if len(paths) > 0 {
		dir = paths[0]
	}

	if err = godotenv.Load(filepath.Join(dir, ".env")); err != nil {
		log.Println("warning: .env file not found, use environment only.")
	}

	viper.AddConfigPath(dir)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err = viper.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read environment only. Error: %v", err)
	}

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("app.port", "APP_PORT")
	viper.BindEnv("app.env", "APP_ENV")
	viper.BindEnv("db.dsn", "DB_DSN")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")
	viper.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	viper.BindEnv("auth.admin_email", "ADMIN_EMAIL")
	viper.BindEnv("auth.admin_password", "ADMIN_PASSWORD")

	viper.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	viper.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	viper.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	viper.BindEnv("suggest.base_url", "SUGGEST_BASE_URL")
	viper.BindEnv("suggest.api_key", "SUGGEST_API_KEY")
	viper.BindEnv("suggest.model", "SUGGEST_MODEL")

	viper.BindEnv("relay.endpoint", "CONTACT_RELAY_ENDPOINT")
	viper.BindEnv("tracing.otlp_endpoint", "OTLP_ENDPOINT")

	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("auth.token_lifespan", "24h")
	viper.SetDefault("suggest.model", "phi3:mini")

	if err = viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	// The hosted backend is not optional: refusing to start beats running
	// with a store that can never persist anything.
	if cfg.DB.DSN == "" {
		return cfg, fmt.Errorf("DB_DSN is required")
	}
	return cfg, nil
}
