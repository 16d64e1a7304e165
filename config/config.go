package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port              string
	BaseURL           string
	StorageBackend    string
	DataDir           string
	TaxRate           decimal.Decimal
	DeliveryFee       decimal.Decimal
	DefaultETAMinutes int
	KafkaBroker       string
}

func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", "8080"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
		StorageBackend:    getEnv("STORAGE_BACKEND", "file"),
		DataDir:           getEnv("DATA_DIR", "./data"),
		TaxRate:           getDecimal("TAX_RATE", "0.08"),
		DeliveryFee:       getDecimal("DELIVERY_FEE", "3.99"),
		DefaultETAMinutes: getInt("DEFAULT_ETA_MINUTES", 15),
		KafkaBroker:       os.Getenv("KAFKA_BROKER"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func getDecimal(key, fallback string) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
	}
	return decimal.RequireFromString(fallback)
}

func MustInitPostgres() *sql.DB {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbName := os.Getenv("DB_NAME")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")

	connStr := "host=" + dbHost + " port=" + dbPort + " user=" + dbUser +
		" password=" + dbPassword + " dbname=" + dbName + " sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(os.Getenv("KAFKA_BROKER")),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}
