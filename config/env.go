package config

import (
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	AppEnv string `default:"development"`
	Port   string `default:"8082"`

	StoreDriver string `default:"mongo"`

	MongoURI string `default:"mongodb://localhost:27017"`
	MongoDB  string `default:"product_catalog"`

	DatabaseURL   string
	DBHost        string `default:"localhost"`
	DBPort        string `default:"5454"`
	DBUser        string `default:"postgres"`
	DBPassword    string `default:"postgres"`
	DBName        string `default:"product_catalog"`
	DBSSLMode     string `default:"disable"`
	MigrationsDir string `default:"database/migration"`

	RedisURL      string
	RedisAddr     string        `default:"localhost:6379"`
	RedisPassword string
	ListCacheTTL  time.Duration `default:"60s"`

	JWTSecret         string        `default:"secret"`
	JWTExpiry         time.Duration `default:"24h"`
	AdminEmail        string        `default:"admin@example.com"`
	AdminPasswordHash string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryURL       string
	CloudinaryFolder    string `default:"products"`
	MirrorImages        bool

	SMTPHost    string
	SMTPPort    int `default:"587"`
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	NotifyEmail string

	OriginURL string

	LogMode string `default:"development"`
	LogFile string
}

// LoadConfig reads .env (if present) and the process environment. Struct
// defaults are applied first, then overridden by any set variable.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		zap.S().Info("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		zap.S().Warnf("failed to apply config defaults: %v", err)
	}

	cfg.AppEnv = getEnv("APP_ENV", cfg.AppEnv)
	cfg.Port = getEnv("APP_PORT", getEnv("PORT", cfg.Port))
	cfg.StoreDriver = getEnv("STORE_DRIVER", cfg.StoreDriver)

	cfg.MongoURI = getEnv("MONGO_URI", cfg.MongoURI)
	cfg.MongoDB = getEnv("MONGO_DB", cfg.MongoDB)

	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBPort = getEnv("DB_PORT", cfg.DBPort)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.DBSSLMode = getEnv("DB_SSLMODE", cfg.DBSSLMode)
	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", cfg.MigrationsDir)

	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.ListCacheTTL = getDuration("LIST_CACHE_TTL", cfg.ListCacheTTL)

	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.JWTExpiry = getDuration("JWT_EXPIRY", cfg.JWTExpiry)
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", cfg.AdminEmail)
	cfg.AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", cfg.AdminPasswordHash)

	cfg.CloudinaryCloudName = getEnv("CLOUDINARY_CLOUD_NAME", cfg.CloudinaryCloudName)
	cfg.CloudinaryAPIKey = getEnv("CLOUDINARY_API_KEY", cfg.CloudinaryAPIKey)
	cfg.CloudinaryAPISecret = getEnv("CLOUDINARY_API_SECRET", cfg.CloudinaryAPISecret)
	cfg.CloudinaryURL = getEnv("CLOUDINARY_URL", cfg.CloudinaryURL)
	cfg.CloudinaryFolder = getEnv("CLOUDINARY_FOLDER", cfg.CloudinaryFolder)
	cfg.MirrorImages = getBool("MIRROR_IMAGES", cfg.MirrorImages)

	cfg.SMTPHost = getEnv("SMTP_HOST", cfg.SMTPHost)
	cfg.SMTPPort = getInt("SMTP_PORT", cfg.SMTPPort)
	cfg.SMTPUser = getEnv("SMTP_USER", cfg.SMTPUser)
	cfg.SMTPPass = getEnv("SMTP_PASS", cfg.SMTPPass)
	cfg.SMTPFrom = getEnv("SMTP_FROM", cfg.SMTPFrom)
	cfg.NotifyEmail = getEnv("NOTIFY_EMAIL", cfg.NotifyEmail)

	cfg.OriginURL = getEnv("ORIGIN_URL", cfg.OriginURL)

	cfg.LogMode = getEnv("LOG_MODE", cfg.LogMode)
	cfg.LogFile = getEnv("LOG_FILE", cfg.LogFile)

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return n
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}
