package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "AGRIVAULT_"

type Config struct {
	Primary      Primary            `koanf:"primary"`
	Server       ServerConfig       `koanf:"server"`
	Database     DatabaseConfig     `koanf:"database"`
	WarehouseAPI WarehouseAPIConfig `koanf:"warehouse_api"`
	Retry        RetryConfig        `koanf:"retry"`
	Wallet       WalletConfig       `koanf:"wallet"`
	Booking      BookingConfig      `koanf:"booking"`
	Auth         AuthConfig         `koanf:"auth"`
	Cache        CacheConfig        `koanf:"cache"`
	Logger       LoggerConfig       `koanf:"logger"`
	Worker       WorkerConfig       `koanf:"worker"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

// DatabaseConfig is optional: with no host the attempt ledger and reconciler are off.
type DatabaseConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"required_with=Host"`
	User            string        `koanf:"user" validate:"required_with=Host"`
	Password        string        `koanf:"password"`
	Name            string        `koanf:"name" validate:"required_with=Host"`
	SSLMode         string        `koanf:"ssl_mode"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
}

func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type WarehouseAPIConfig struct {
	BaseURL     string        `koanf:"base_url" validate:"required,url"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxDelay   time.Duration `koanf:"max_delay"`
	MaxRetries int32         `koanf:"max_retries"`
}

// WalletConfig configures the server-side signing wallet. An empty PrivateKey means
// no wallet is connected. ValueExponent scales base units to the RPC value unit; the
// Hedera JSON-RPC relay takes weibars, 10^10 per tinybar.
type WalletConfig struct {
	RPCURL        string `koanf:"rpc_url"`
	ChainID       int64  `koanf:"chain_id"`
	PrivateKey    string `koanf:"private_key"`
	GasLimit      uint64 `koanf:"gas_limit"`
	ValueExponent int    `koanf:"value_exponent" validate:"min=0,max=18"`
}

type BookingConfig struct {
	FinalizeTimeout time.Duration `koanf:"finalize_timeout" validate:"required"`
	ExplorerTxURL   string        `koanf:"explorer_tx_url"`
}

// AuthConfig holds the HMAC secret for session tokens. Without it tokens are passed
// through to the warehouse API unverified.
type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret"`
}

type CacheConfig struct {
	Size int           `koanf:"size"`
	TTL  time.Duration `koanf:"ttl"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format" validate:"omitempty,oneof=text json"`
}

type WorkerConfig struct {
	Interval   time.Duration `koanf:"interval"`
	BatchSize  int           `koanf:"batch_size"`
	StaleAfter time.Duration `koanf:"stale_after"`
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := defaults()

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func defaults() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:        "8080",
			ReadTimeout: 10 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    2,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
		WarehouseAPI: WarehouseAPIConfig{
			ConnTimeout: 10 * time.Second,
		},
		Retry: RetryConfig{
			BaseDelay:  200 * time.Millisecond,
			MaxDelay:   2 * time.Second,
			MaxRetries: 3,
		},
		Wallet: WalletConfig{
			RPCURL:        "https://testnet.hashio.io/api",
			ChainID:       296,
			GasLimit:      21000,
			ValueExponent: 10,
		},
		Booking: BookingConfig{
			FinalizeTimeout: 15 * time.Second,
			ExplorerTxURL:   "https://hashscan.io/testnet/transaction/%s",
		},
		Cache: CacheConfig{
			Size: 256,
			TTL:  30 * time.Second,
		},
		Logger: LoggerConfig{Level: "info"},
		Worker: WorkerConfig{
			Interval:   time.Minute,
			BatchSize:  50,
			StaleAfter: 15 * time.Minute,
		},
	}
}
