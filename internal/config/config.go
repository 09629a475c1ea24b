package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the fee service.
type Config struct {
	Env      string
	Port     string
	LogLevel string

	CORSOrigins string

	DB       DBConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	CacheTTL time.Duration

	EventsChannel string

	DefaultPlan DefaultPlanConfig
}

type DBConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// DefaultPlanConfig is the platform pricing plan used when a merchant has
// neither a fee structure assignment nor a pricing plan of its own.
type DefaultPlanConfig struct {
	MDR        string
	FixedFee   string
	Currencies []string
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load reads the environment into a Config.
func Load() Config {
	return Config{
		Env:         GetEnv("ENV", "development"),
		Port:        GetEnv("PORT", "3000"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		DB: DBConfig{
			Host:            GetEnv("DB_HOST", "localhost"),
			Port:            GetEnv("DB_PORT", "5432"),
			User:            GetEnv("DB_USER", "postgres"),
			Password:        GetEnv("DB_PASSWORD", "postgres"),
			Name:            GetEnv("DB_NAME", "acquiring"),
			SSLMode:         GetEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", "localhost"),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),

			PoolSize:     GetIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: GetIntEnv("REDIS_MIN_IDLE_CONNS", 5),
			DialTimeout:  GetDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  GetDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: GetDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Mongo: MongoConfig{
			URI:        GetEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:   GetEnv("MONGO_DATABASE", "acquiring"),
			Collection: GetEnv("MONGO_QUOTES_COLLECTION", "fee_quotes"),
		},
		CacheTTL:      GetDurationEnv("FEE_CACHE_TTL", 5*time.Minute),
		EventsChannel: GetEnv("FEE_EVENTS_CHANNEL", "fee_structure_events"),
		DefaultPlan: DefaultPlanConfig{
			MDR:        GetEnv("DEFAULT_MDR", "2.9"),
			FixedFee:   GetEnv("DEFAULT_FIXED_FEE", "0.30"),
			Currencies: GetListEnv("DEFAULT_CURRENCIES", []string{"USD"}),
		},
	}
}

// DSN builds the postgres connection string.
func (c DBConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// GetListEnv splits a comma separated environment variable.
func GetListEnv(key string, defaultVal []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
