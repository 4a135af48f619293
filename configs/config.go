package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string
	GinMode  string

	LogLevel  string
	LogFormat string
	LogFile   string

	CORSOrigins []string
	SeedDemo    bool
}

// LoadConfig reads .env (if any) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("cannot load .env: %v", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_SOURCE", "test.db")
	v.SetDefault("PORT", "8000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("SEED_DEMO", false)

	return &Config{
		DBDriver:    strings.ToLower(v.GetString("DB_DRIVER")),
		DBSource:    v.GetString("DB_SOURCE"),
		Port:        v.GetString("PORT"),
		GinMode:     v.GetString("GIN_MODE"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
		LogFile:     v.GetString("LOG_FILE"),
		CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		SeedDemo:    v.GetBool("SEED_DEMO"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
