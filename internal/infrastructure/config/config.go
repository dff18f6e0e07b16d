package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// Config is loaded from the process environment. A .env file, when present,
// is loaded beforehand by godotenv/autoload in the entrypoints.
type Config struct {
	App         AppConfig
	DB          DBConfig
	JWT         JWTConfig
	Admin       AdminConfig
	MercadoPago MercadoPagoConfig
	Email       EmailConfig
	Storage     StorageConfig
	DynamoDB    DynamoDBConfig
	Redis       RedisConfig
	Lookup      LookupConfig
	Webhook     WebhookConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DB.DSN) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	switch c.Storage.Driver {
	case StorageDriverLocal:
	case StorageDriverS3:
		if strings.TrimSpace(c.Storage.S3Bucket) == "" {
			return fmt.Errorf("S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Webhook.Workers <= 0 {
		return fmt.Errorf("WEBHOOK_WORKERS must be positive")
	}
	return nil
}

type AppConfig struct {
	Env         string   `envconfig:"APP_ENV" default:"development"`
	Port        string   `envconfig:"PORT" default:"8080"`
	LogLevel    string   `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string   `envconfig:"LOG_ENCODING" default:"json"`
	FrontendURL string   `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
	BackendURL  string   `envconfig:"BACKEND_URL" default:"http://localhost:8080"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDevelopment)
}

type DBConfig struct {
	DSN             string        `envconfig:"DATABASE_URL" required:"true"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"JWT_EXPIRES_IN" default:"24h"`
	Issuer string        `envconfig:"JWT_ISSUER" default:"e-certidoes"`
}

// AdminConfig bootstraps the first administrator when both fields are set.
type AdminConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL"`
	Password string `envconfig:"ADMIN_PASSWORD"`
	Nome     string `envconfig:"ADMIN_NAME" default:"Administrador"`
}

// MercadoPagoConfig selects the hosted checkout account. Mock answers every
// call locally and is meant for development only.
type MercadoPagoConfig struct {
	AccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MaxInstallments int    `envconfig:"MERCADOPAGO_MAX_INSTALLMENTS" default:"0"`
	Mock            bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`
}

type EmailConfig struct {
	ResendAPIKey string `envconfig:"RESEND_API_KEY"`
	From         string `envconfig:"EMAIL_FROM" default:"e-Certidões <contato@e-certidoes.net.br>"`
}

const (
	StorageDriverLocal = "local"
	StorageDriverS3    = "s3"
)

type StorageConfig struct {
	Driver         string `envconfig:"STORAGE_DRIVER" default:"local"`
	LocalDir       string `envconfig:"UPLOADS_DIR" default:"uploads"`
	S3Bucket       string `envconfig:"S3_BUCKET"`
	S3Prefix       string `envconfig:"S3_PREFIX" default:"pedidos"`
	S3Endpoint     string `envconfig:"S3_ENDPOINT"`
	MaxUploadBytes int64  `envconfig:"MAX_UPLOAD_BYTES" default:"10485760"`
}

type DynamoDBConfig struct {
	Enabled         bool   `envconfig:"WEBHOOK_LOG_ENABLED" default:"false"`
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	WebhookLogTable string `envconfig:"WEBHOOK_LOG_TABLE" default:"webhook_notifications"`
}

type RedisConfig struct {
	Enabled  bool          `envconfig:"REDIS_ENABLED" default:"false"`
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `envconfig:"REDIS_PASSWORD"`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CacheTTL time.Duration `envconfig:"LOOKUP_CACHE_TTL" default:"12h"`
}

type LookupConfig struct {
	InfosimplesToken   string        `envconfig:"INFOSIMPLES_TOKEN"`
	InfosimplesTimeout time.Duration `envconfig:"INFOSIMPLES_HTTP_TIMEOUT" default:"5m30s"`
	FrenetToken        string        `envconfig:"FRENET_TOKEN"`
	FrenetSellerCEP    string        `envconfig:"FRENET_SELLER_CEP"`
	HTTPTimeout        time.Duration `envconfig:"LOOKUP_HTTP_TIMEOUT" default:"15s"`
}

type WebhookConfig struct {
	Workers        int           `envconfig:"WEBHOOK_WORKERS" default:"4"`
	QueueSize      int           `envconfig:"WEBHOOK_QUEUE_SIZE" default:"100"`
	ProcessTimeout time.Duration `envconfig:"WEBHOOK_PROCESS_TIMEOUT" default:"30s"`
}
