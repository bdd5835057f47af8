package serverconf

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultAddress     = ":8000"
	defaultDataPath    = "data/initial_metrics.csv"
	defaultAPIPrefix   = "/api"
	defaultCORSOrigin  = "http://localhost:5173"
	defaultRateLimit   = 0
	defaultLoadTimeout = 10
	defaultLogLevel    = "info"
)

const (
	keyConfig        = "config"
	keyAddress       = "address"
	keyDataPath      = "data-path"
	keyDatabaseDSN   = "database-dsn"
	keyAPIPrefix     = "api-prefix"
	keyCORSOrigins   = "cors-origins"
	keyTrustedSubnet = "trusted-subnet"
	keyRateLimit     = "rate-limit"
	keyLoadTimeout   = "load-timeout"
	keyLogLevel      = "log-level"
	keyS3Endpoint    = "s3-endpoint"
	keyS3AccessKey   = "s3-access-key"
	keyS3SecretKey   = "s3-secret-key"
	keyS3UseSSL      = "s3-use-ssl"
)

// Config is a configuration for the server
type Config struct {
	// Addr is the address the server listens on
	Addr string `env:"ADDRESS"`

	// DataPath is a CSV or XLSX file with the dataset, or an s3://bucket/key uri
	DataPath string `env:"DATA_PATH"`

	// DatabaseDSN switches the dataset source to PostgreSQL when set
	DatabaseDSN string `env:"DATABASE_DSN"`

	// APIPrefix is a path all API routes are mounted under
	APIPrefix string `env:"API_PREFIX"`

	// CORSOrigins are origins allowed to call the API from a browser
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// TrustedSubnet limits clients by X-Real-IP when set, in CIDR notation
	TrustedSubnet string `env:"TRUSTED_SUBNET"`

	// RateLimit is a maximum number of requests per second, 0 disables the limit
	RateLimit int `env:"RATE_LIMIT"`

	// LoadTimeout is the time in seconds given to load the dataset
	LoadTimeout int `env:"LOAD_TIMEOUT"`

	// LogLevel is a minimal level of log messages
	LogLevel string `env:"LOG_LEVEL"`

	// S3 settings are used when DataPath is an s3:// uri
	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3UseSSL    bool   `env:"S3_USE_SSL"`
}

// IsDatabaseSource reports whether the dataset is read from PostgreSQL.
func (cfg Config) IsDatabaseSource() bool {
	return cfg.DatabaseDSN != ""
}

// IsObjectSource reports whether the dataset is read from an object storage.
func (cfg Config) IsObjectSource() bool {
	return !cfg.IsDatabaseSource() && strings.HasPrefix(cfg.DataPath, "s3://")
}

// LoadTimeoutDuration returns LoadTimeout as a duration.
func (cfg Config) LoadTimeoutDuration() time.Duration {
	return time.Duration(cfg.LoadTimeout) * time.Second
}

// MustLoadConfig loads configuration from the config file, command-line flags
// and environment variables. If there is an error, it panics.
func MustLoadConfig() Config {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}

	return cfg
}

// LoadConfig builds configuration from defaults, an optional config file,
// args and environment variables, each one overriding the previous.
func LoadConfig(args []string) (Config, error) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.StringP(keyConfig, "c", "", "Config file (json, yaml or toml)")
	fs.StringP(keyAddress, "a", defaultAddress, "Host address to run server")
	fs.StringP(keyDataPath, "f", defaultDataPath, "Dataset file, CSV or XLSX, or s3://bucket/key")
	fs.StringP(keyDatabaseDSN, "d", "", "PostgreSQL DSN to load the dataset from")
	fs.StringP(keyAPIPrefix, "p", defaultAPIPrefix, "Path prefix of API routes")
	fs.StringSlice(keyCORSOrigins, []string{defaultCORSOrigin}, "Allowed CORS origins")
	fs.StringP(keyTrustedSubnet, "t", "", "Trusted subnet in CIDR notation")
	fs.IntP(keyRateLimit, "l", defaultRateLimit, "Rate limit for http requests per second")
	fs.Int(keyLoadTimeout, defaultLoadTimeout, "Dataset load timeout in seconds")
	fs.String(keyLogLevel, defaultLogLevel, "Log level")
	fs.String(keyS3Endpoint, "", "S3 endpoint")
	fs.String(keyS3AccessKey, "", "S3 access key")
	fs.String(keyS3SecretKey, "", "S3 secret key")
	fs.Bool(keyS3UseSSL, false, "Use TLS for S3")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, err
	}

	file := v.GetString(keyConfig)
	if f := os.Getenv("CONFIG"); f != "" {
		file = f
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Addr:          v.GetString(keyAddress),
		DataPath:      v.GetString(keyDataPath),
		DatabaseDSN:   v.GetString(keyDatabaseDSN),
		APIPrefix:     v.GetString(keyAPIPrefix),
		CORSOrigins:   v.GetStringSlice(keyCORSOrigins),
		TrustedSubnet: v.GetString(keyTrustedSubnet),
		RateLimit:     v.GetInt(keyRateLimit),
		LoadTimeout:   v.GetInt(keyLoadTimeout),
		LogLevel:      v.GetString(keyLogLevel),
		S3Endpoint:    v.GetString(keyS3Endpoint),
		S3AccessKey:   v.GetString(keyS3AccessKey),
		S3SecretKey:   v.GetString(keyS3SecretKey),
		S3UseSSL:      v.GetBool(keyS3UseSSL),
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.RateLimit < 0 {
		return Config{}, fmt.Errorf("invalid rate limit: should not be negative, got: %d", cfg.RateLimit)
	}

	if cfg.LoadTimeout <= 0 {
		return Config{}, fmt.Errorf("invalid load timeout: should be greater than 0, got: %d", cfg.LoadTimeout)
	}

	return cfg, nil
}
