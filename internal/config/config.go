package config

import (
	"os"      // For environment variables
	"strconv" // For string to number conversion

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort       string  // HTTP listening port
	ChannelSecret string  // LINE channel secret (webhook signature)
	ChannelToken  string  // LINE channel access token (reply API)
	StoreBackend  string  // Store backend: file, redis or mysql
	StoreFile     string  // Path of the JSON store file (file backend)
	DBUser        string  // Database user (mysql backend)
	DBPassword    string  // Database password
	DBHost        string  // Database host
	DBPort        string  // Database port
	DBName        string  // Database name
	RedisAddr     string  // Redis server address (redis backend)
	RedisPass     string  // Redis password
	RedisDB       int     // Redis database number
	JWTSecret     string  // JWT secret key for the admin API
	AdminUser     string  // Admin username
	AdminPassHash string  // Bcrypt hash of the admin password
	PriceAPIURL   string  // Base URL of the price provider
	LocalRate     float64 // USD to local currency multiplier
	IsProd        bool    // Is production environment
}

// getenv returns the value of key, or def when the variable is unset
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	rate, err := strconv.ParseFloat(os.Getenv("LOCAL_RATE"), 64)
	if err != nil || rate <= 0 {
		rate = 32 // Default USD to local currency rate
	}
	return &Config{
		AppPort:       getenv("APP_PORT", "3000"),                                  // Listening port
		ChannelSecret: os.Getenv("LINE_CHANNEL_SECRET"),                            // LINE channel secret
		ChannelToken:  os.Getenv("LINE_CHANNEL_TOKEN"),                             // LINE channel access token
		StoreBackend:  getenv("STORE_BACKEND", "file"),                             // Store backend selection
		StoreFile:     getenv("STORE_FILE", "users.json"),                          // JSON store file path
		DBUser:        os.Getenv("DB_USER"),                                        // Database user
		DBPassword:    os.Getenv("DB_PASSWORD"),                                    // Database password
		DBHost:        os.Getenv("DB_HOST"),                                        // Database host
		DBPort:        os.Getenv("DB_PORT"),                                        // Database port
		DBName:        os.Getenv("DB_NAME"),                                        // Database name
		RedisAddr:     os.Getenv("REDIS_ADDR"),                                     // Redis server address
		RedisPass:     os.Getenv("REDIS_PASS"),                                     // Redis password
		RedisDB:       redisDB,                                                     // Redis database number
		JWTSecret:     os.Getenv("JWT_SECRET"),                                     // JWT secret key
		AdminUser:     os.Getenv("ADMIN_USER"),                                     // Admin username
		AdminPassHash: os.Getenv("ADMIN_PASSWORD_HASH"),                            // Bcrypt hash of the admin password
		PriceAPIURL:   getenv("PRICE_API_URL", "https://api.coingecko.com/api/v3"), // Price provider base URL
		LocalRate:     rate,                                                        // Currency multiplier
		IsProd:        os.Getenv("IS_PROD") == "true",                              // Is production environment
	}
}
