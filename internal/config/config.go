package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// database readiness, authentication, media storage, background workers and
// graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8000" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxUploadBytes limits the size of uploaded images
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"10485760" yaml:"maxUploadBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the CORS origins; empty allows any origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"devuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"changeme" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"devdb" yaml:"name"`
		// ConnectTimeout bounds a single connection attempt
		ConnectTimeout time.Duration `env:"DATABASE_CONNECT_TIMEOUT" env-default:"5s" yaml:"connectTimeout"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// WaitForDB configures the database readiness gate
	WaitForDB struct {
		// Databases are the connection names that must be ready
		Databases []string `env:"WAIT_FOR_DB_DATABASES" env-default:"default" env-separator:"," yaml:"databases"`
		// Interval is the pause between two checks
		Interval time.Duration `env:"WAIT_FOR_DB_INTERVAL" env-default:"1s" yaml:"interval"`
		// Timeout bounds the whole wait; zero waits forever
		Timeout time.Duration `env:"WAIT_FOR_DB_TIMEOUT" env-default:"0s" yaml:"timeout"`
		// MaxAttempts bounds the number of checks; zero means unlimited
		MaxAttempts int `env:"WAIT_FOR_DB_MAX_ATTEMPTS" env-default:"0" yaml:"maxAttempts"`
		// OnServe makes serve and migrate wait for the database before starting
		OnServe bool `env:"WAIT_FOR_DB_ON_SERVE" env-default:"true" yaml:"onServe"`
	} `yaml:"waitForDB"`

	// Auth contains token signing settings
	Auth struct {
		// PrivateKey is the PEM encoded RSA key used to sign tokens
		PrivateKey string `env:"AUTH_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA key used to verify tokens
		PublicKey string `env:"AUTH_PUBLIC_KEY" yaml:"publicKey"`
		// TokenTTL is the lifetime of issued tokens
		TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" env-default:"24h" yaml:"tokenTTL"`
	} `yaml:"auth"`

	// Media configures where uploaded files are stored
	Media struct {
		// Backend is either "file" or "s3"
		Backend string `env:"MEDIA_BACKEND" env-default:"file" yaml:"backend"`
		// Root is the directory of the file backend
		Root string `env:"MEDIA_ROOT" env-default:"/vol/web/media" yaml:"root"`
		// BaseURL is the public URL prefix of stored files
		BaseURL string `env:"MEDIA_BASE_URL" env-default:"/media" yaml:"baseURL"`
		S3      struct {
			Bucket   string `env:"MEDIA_S3_BUCKET" yaml:"bucket"`
			Region   string `env:"MEDIA_S3_REGION" env-default:"us-east-1" yaml:"region"`
			Endpoint string `env:"MEDIA_S3_ENDPOINT" yaml:"endpoint"`
			// BaseURL is the public URL prefix of the bucket, e.g. a CDN
			BaseURL string `env:"MEDIA_S3_BASE_URL" yaml:"baseURL"`
		} `yaml:"s3"`
	} `yaml:"media"`

	// Worker configures the background job workers
	Worker struct {
		// MaxWorkers is the number of concurrent image cleanup workers
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"5" yaml:"maxWorkers"`
		// MaxAttempts is the number of attempts of an image cleanup job
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// A missing file falls back to environment variables and defaults; any other
// error reading the file is returned.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
		cfg = Config{}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	return &cfg, nil
}
