package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PortaHTTP    uint
	DSN          string
	JWTSecret    string
	CORSOrigens  []string
	LogJSON      bool
	AutoMigrate  bool
}

var instance *Config
var once sync.Once

// GetConfig carrega o .env uma única vez e devolve a configuração do processo.
func GetConfig() *Config {
	once.Do(func() {
		instance = &Config{}

		if err := godotenv.Load(); err != nil {
			logrus.Info("arquivo .env não encontrado, usando variáveis do ambiente")
		}

		instance.DSN = getEnv("DB_DSN", "")
		if instance.DSN == "" {
			logrus.Fatal("DB_DSN não definida")
		}

		instance.JWTSecret = getEnv("JWT_SECRET", "")
		if instance.JWTSecret == "" {
			logrus.Fatal("JWT_SECRET não definida")
		}

		instance.PortaHTTP = uint(getEnvAsInt("HTTP_PORT", 8080))
		instance.CORSOrigens = getEnvAsSlice("CORS_ORIGINS", []string{"*"})
		instance.LogJSON = getEnvAsBool("LOG_JSON", false)
		instance.AutoMigrate = getEnvAsBool("DB_AUTO_MIGRATE", true)
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}

func getEnvAsSlice(name string, defaultVal []string) []string {
	valStr := getEnv(name, "")
	if valStr == "" {
		return defaultVal
	}

	partes := strings.Split(valStr, ",")
	out := make([]string, 0, len(partes))
	for _, p := range partes {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
