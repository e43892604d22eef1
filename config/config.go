package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName string `json:"appname"`
	AppEnv  string `json:"appenv"`
	AppPort uint16 `json:"appport"`
	GinMode string `json:"ginmode"`
	DBHost  string `json:"dbhost"`
	DBPort  uint16 `json:"dbport"`
	DBName  string `json:"dbname"`
	DBUser  string `json:"dbuser"`
	DBPass  string `json:"dbpass"`
	// APIKey authorizes the content-generation service. Empty is a valid
	// mode: generation falls back to deterministic demo content.
	APIKey string `json:"apikey"`
	// AlertWebhookURL, when set, receives fired reminder alerts as JSON.
	AlertWebhookURL string `json:"alert_webhook_url"`
	// GeoIPDBPath points at a GeoLite2 .mmdb file; empty disables lookups.
	GeoIPDBPath string `json:"geoip_db_path"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file when present,
// and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// A missing .env file is fine; env vars may come from the process.
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

		config = &Config{
			AppName:         getEnvWithDefault("APPNAME", "MediCare"),
			AppEnv:          getEnvWithDefault("APPENV", "development"),
			AppPort:         uint16(appPort),
			GinMode:         os.Getenv("GINMODE"),
			DBHost:          os.Getenv("DBHOST"),
			DBPort:          uint16(dbPort),
			DBName:          os.Getenv("DBNAME"),
			DBUser:          os.Getenv("DBUSER"),
			DBPass:          os.Getenv("DBPASS"),
			APIKey:          os.Getenv("API_KEY"),
			AlertWebhookURL: os.Getenv("ALERT_WEBHOOK_URL"),
			GeoIPDBPath:     os.Getenv("GEOIP_DB_PATH"),
		}
		if config.AppPort == 0 {
			config.AppPort = 8080
		}
	})
	// Tests flip APPENV via t.Setenv after the singleton was built.
	if env := os.Getenv("APPENV"); env != "" && config.AppEnv != env {
		config.AppEnv = env
	}
	return config
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ConnectDB opens the application database: MySQL in normal operation, an
// in-memory SQLite database when APPENV=test.
func ConnectDB() (*gorm.DB, error) {
	cfg := LoadConfig()

	if cfg.AppEnv == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
