package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`

	// ShutdownTimeout время на завершение активных запросов после сигнала остановки.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// DBLockTimeout ограничение ожидания блокировки строк внутри транзакции.
	DBLockTimeout time.Duration `env:"DB_LOCK_TIMEOUT" envDefault:"3s"`
	PasswordCost  int           `env:"BCRYPT_COST"     envDefault:"10"`

	SMTP   SMTPConfig   `envPrefix:"SMTP_"`
	Redis  RedisConfig  `envPrefix:"REDIS_"`
	Kafka  KafkaConfig  `envPrefix:"KAFKA_"`
	Notify NotifyConfig `envPrefix:"NOTIFY_"`
	Staff  StaffConfig  `envPrefix:"STAFF_"`
}

// SMTPConfig канал почтовых уведомлений. Пустой Host отключает канал.
type SMTPConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"     envDefault:"587"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	From     string `env:"FROM"     envDefault:"noreply@goldtrade.local"`
}

// RedisConfig кеш текущей котировки. Пустой Addr отключает кеш.
type RedisConfig struct {
	Addr         string        `env:"ADDR"`
	Password     string        `env:"PASSWORD"`
	DB           int           `env:"DB"`
	RateCacheTTL time.Duration `env:"RATE_CACHE_TTL" envDefault:"1m"`
}

// KafkaConfig публикация уведомлений в топик. Пустой список брокеров отключает канал.
type KafkaConfig struct {
	Brokers     []string `env:"BROKERS"      envSeparator:","`
	NotifyTopic string   `env:"NOTIFY_TOPIC" envDefault:"goldtrade.notifications"`
}

type NotifyConfig struct {
	Workers   uint `env:"WORKERS"    envDefault:"2"`
	QueueSize uint `env:"QUEUE_SIZE" envDefault:"256"`
}

// StaffConfig учетная запись сотрудника, создаваемая при старте, если ее еще нет.
type StaffConfig struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
	Email    string `env:"EMAIL"`
}

func (s SMTPConfig) Enabled() bool  { return s.Host != "" }
func (r RedisConfig) Enabled() bool { return r.Addr != "" }
func (k KafkaConfig) Enabled() bool { return len(k.Brokers) > 0 }
func (s StaffConfig) Enabled() bool { return s.Username != "" }

func LoadConfig() (*Config, error) {
	return load(flag.CommandLine, os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// load собирает конфиг из .env файла, переменных окружения и флагов. Переменные окружения приоритетнее флагов.
func load(fset *flag.FlagSet, args []string) (*Config, error) {
	if dotenvErr := godotenv.Load(); dotenvErr != nil && !errors.Is(dotenvErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", dotenvErr.Error())
	}

	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(fset, args, &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.JWTSecret == "" {
		return nil, errors.New("jwt secret is not set")
	}
	if conf.Staff.Enabled() && conf.Staff.Password == "" {
		return nil, errors.New("staff password is not set")
	}
	return conf, nil
}

func loadFlags(fset *flag.FlagSet, args []string, flagConfig *Config) error {
	fset.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fset.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fset.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fset.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")

	return fset.Parse(args) //nolint:wrapcheck
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
