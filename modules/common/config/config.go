package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config - all environment-driven settings for the gallery server
type Config struct {
	// Gemini / Veo
	GeminiAPIKey string
	ExtraAPIKeys []string // optional fallback keys for 429 retries
	VeoModel     string
	TextModel    string
	PollSeconds  int

	// Redis (remix job queue)
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisUseTLS   bool

	// Supabase Storage (optional - data URIs are used when unset)
	SupabaseURL        string
	SupabaseServiceKey string
	StorageBucket      string

	// Server
	Port string
}

var globalConfig *Config

// LoadConfig - load .env (if present) and read all settings
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	useTLS := false
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	pollSeconds := 10 // polling cadence against the Veo operation
	if pollStr := os.Getenv("VEO_POLL_SECONDS"); pollStr != "" {
		if parsed, err := strconv.Atoi(pollStr); err == nil && parsed > 0 {
			pollSeconds = parsed
		}
	}

	globalConfig = &Config{
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ExtraAPIKeys: splitKeys(os.Getenv("GEMINI_EXTRA_API_KEYS")),
		VeoModel:     getEnv("VEO_MODEL", "veo-2.0-generate-001"),
		TextModel:    getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		PollSeconds:  pollSeconds,

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisUsername: getEnv("REDIS_USERNAME", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:   useTLS,

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", "videos"),

		Port: getEnv("PORT", "8080"),
	}

	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Veo model: %s (poll every %ds)", globalConfig.VeoModel, globalConfig.PollSeconds)
	log.Printf("   Redis: %s (TLS: %v)", globalConfig.RedisAddr(), globalConfig.RedisUseTLS)
	if globalConfig.StorageEnabled() {
		log.Printf("   Storage: %s (bucket: %s)", globalConfig.SupabaseURL, globalConfig.StorageBucket)
	} else {
		log.Println("   Storage: disabled, videos kept as data URIs")
	}

	return globalConfig, nil
}

// GetConfig - fetch the loaded configuration
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - required environment variables
func (c *Config) validate() error {
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.RedisHost == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}
	if c.SupabaseURL != "" && c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required when SUPABASE_URL is set")
	}
	return nil
}

// APIKeys - primary key first, then any extra fallback keys
func (c *Config) APIKeys() []string {
	keys := []string{c.GeminiAPIKey}
	return append(keys, c.ExtraAPIKeys...)
}

// StorageEnabled - whether video bytes go to Supabase Storage
func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

// RedisAddr - redis connection address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// getEnv - environment variable with default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitKeys - parse a comma-separated key list, dropping empties
func splitKeys(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
