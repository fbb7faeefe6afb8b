package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration holds the static settings needed to run the API server.
// Everything is read from environment variables; a .env file under
// config/env/<GO_ENV>.env is loaded first when present.
type Configuration struct {
	Address         string `env:"ADDRESS" envDefault:":8080"`               // Listen address
	MongoURI        string `env:"MONGODB_CONNECTION_URI,required"`          // MongoDB connection string
	MongoDBName     string `env:"MONGODB_DBNAME" envDefault:"trustlife_db"` // Database name
	JwtSecret       string `env:"JWT_SECRET,required"`                      // Shared secret for identity-provider tokens
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`                        // Stripe API key (payment intents)

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Allowed origins, comma separated (* = all)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Allow credentials on CORS requests

	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Toggle rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Max requests per window
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Window length in seconds

	RequestTimeout int `env:"REQUEST_TIMEOUT" envDefault:"10"` // Per-request store timeout in seconds

	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Serve HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Path to certificate (.crt or .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Path to private key (.key)
}

// getEnvPath resolves the env file for the current GO_ENV by walking up
// from the working directory until a config/env folder is found.
func getEnvPath() string {
	environment := os.Getenv("GO_ENV")
	if environment == "" {
		environment = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", environment))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig loads the .env file (when present) and parses the environment
// into a Configuration. Returns an error instead of a partial config so the
// server refuses to start misconfigured.
func NewConfig() (*Configuration, error) {
	if envPath := getEnvPath(); envPath != "" {
		// Missing file is fine; variables may come from the real environment.
		_ = godotenv.Load(envPath)
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &cfg, nil
}
