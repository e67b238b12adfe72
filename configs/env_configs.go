package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	MongoURI           string
	DBName             string
	RedisAddr          string
	Port               string
	ConsulAddress      string
	RateLimitPerMinute int
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads .env if present and applies defaults for everything else.
func LoadEnv() EnvConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	rate, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "60"))
	if err != nil || rate <= 0 {
		rate = 60
	}

	return EnvConfig{
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "notes"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		Port:               getEnv("PORT", "4000"),
		ConsulAddress:      os.Getenv("CONSUL_ADDRESS"),
		RateLimitPerMinute: rate,
	}
}
