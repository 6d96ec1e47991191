package conf

import (
	"path/filepath"
)

type Database struct {
	Type        string `json:"type" env:"TYPE"`
	Host        string `json:"host" env:"HOST"`
	Port        int    `json:"port" env:"PORT"`
	User        string `json:"user" env:"USER"`
	Password    string `json:"password" env:"PASS"`
	Name        string `json:"name" env:"NAME"`
	DBFile      string `json:"db_file" env:"FILE"`
	TablePrefix string `json:"table_prefix" env:"TABLE_PREFIX"`
	SSLMode     string `json:"ssl_mode" env:"SSL_MODE"`
}

type LogConfig struct {
	Enable     bool   `json:"enable" env:"ENABLE"`
	Name       string `json:"name" env:"NAME"`
	Level      string `json:"level" env:"LEVEL"`
	MaxSize    int    `json:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `json:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `json:"max_age" env:"MAX_AGE"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type Scheme struct {
	Address  string `json:"address" env:"ADDR"`
	HttpPort int    `json:"http_port" env:"HTTP_PORT"`
}

type StorageConfig struct {
	Driver      string `json:"driver" env:"DRIVER"`
	RootPath    string `json:"root_path" env:"ROOT_PATH"`
	S3Bucket    string `json:"s3_bucket" env:"S3_BUCKET"`
	S3Region    string `json:"s3_region" env:"S3_REGION"`
	S3Endpoint  string `json:"s3_endpoint" env:"S3_ENDPOINT"`
	S3AccessKey string `json:"s3_access_key" env:"S3_ACCESS_KEY"`
	S3SecretKey string `json:"s3_secret_key" env:"S3_SECRET_KEY"`
}

// Backends maps a service name to the base URL the gateway and the
// cross-service clients use to reach it. Empty means co-located.
// Secret authenticates the /internal/ service-to-service endpoints;
// while it is empty those endpoints refuse every caller.
type Backends struct {
	Identity string `json:"identity" env:"IDENTITY"`
	Files    string `json:"files" env:"FILES"`
	Folders  string `json:"folders" env:"FOLDERS"`
	Quota    string `json:"quota" env:"QUOTA"`
	Audit    string `json:"audit" env:"AUDIT"`
	Sharing  string `json:"sharing" env:"SHARING"`
	Secret   string `json:"secret" env:"SECRET"`
}

type GatewayConfig struct {
	RatePerSecond  float64 `json:"rate_per_second" env:"RATE"`
	RateBurst      int     `json:"rate_burst" env:"BURST"`
	HealthInterval int     `json:"health_interval" env:"HEALTH_INTERVAL"`
	ProxyRetries   uint    `json:"proxy_retries" env:"PROXY_RETRIES"`
}

type Config struct {
	SiteURL        string        `json:"site_url" env:"SITE_URL"`
	JwtSecret      string        `json:"jwt_secret" env:"JWT_SECRET"`
	TokenExpiresIn int           `json:"token_expires_in" env:"TOKEN_EXPIRES_IN"`
	Scheme         Scheme        `json:"scheme" envPrefix:"SCHEME_"`
	Database       Database      `json:"database" envPrefix:"DB_"`
	Log            LogConfig     `json:"log" envPrefix:"LOG_"`
	Storage        StorageConfig `json:"storage" envPrefix:"STORAGE_"`
	Backends       Backends      `json:"backends" envPrefix:"BACKEND_"`
	Gateway        GatewayConfig `json:"gateway" envPrefix:"GATEWAY_"`
	TempDir        string        `json:"temp_dir" env:"TEMP_DIR"`
	MaxConnections int           `json:"max_connections" env:"MAX_CONNECTIONS"`
}

func DefaultConfig(dataDir string) *Config {
	logPath := filepath.Join(dataDir, "log/log.log")
	dbPath := filepath.Join(dataDir, "data.db")
	return &Config{
		Scheme: Scheme{
			Address:  "0.0.0.0",
			HttpPort: 5344,
		},
		JwtSecret:      "",
		TokenExpiresIn: 48,
		TempDir:        filepath.Join(dataDir, "temp"),
		Database: Database{
			Type:        "sqlite3",
			Port:        0,
			TablePrefix: "x_",
			DBFile:      dbPath,
		},
		Log: LogConfig{
			Enable:     true,
			Name:       logPath,
			Level:      "info",
			MaxSize:    50,
			MaxBackups: 30,
			MaxAge:     28,
		},
		Storage: StorageConfig{
			Driver:   "local",
			RootPath: filepath.Join(dataDir, "blobs"),
		},
		Gateway: GatewayConfig{
			RatePerSecond:  50,
			RateBurst:      100,
			HealthInterval: 30,
			ProxyRetries:   2,
		},
	}
}
