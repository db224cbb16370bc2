package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by RAGEBET_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("RAGEBET_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8000
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

func SportsDBAPIKey() string {
	return os.Getenv("SPORTSDB_API_KEY")
}

func GroqAPIKey() string {
	return os.Getenv("GROQ_API_KEY")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func PinataAPIKey() string {
	return os.Getenv("PINATA_API_KEY")
}

func PinataSecretKey() string {
	return os.Getenv("PINATA_SECRET_KEY")
}

// ReasonerProvider returns the configured text-reasoning provider.
// Defaults to "groq" if not set.
// Valid values: groq, openai, mock
func ReasonerProvider() string {
	p := os.Getenv("REASONER_PROVIDER")
	if p == "" {
		return "groq"
	}
	return p
}

// ReasonerAPIKey returns the API key for the configured reasoner provider.
func ReasonerAPIKey() string {
	switch ReasonerProvider() {
	case "openai":
		return OpenAIAPIKey()
	case "mock":
		return ""
	default:
		return GroqAPIKey()
	}
}

// PredictionCacheTTL returns the freshness window for cached predictions.
// Defaults to 6 hours if not set.
func PredictionCacheTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("PREDICTION_CACHE_TTL_HOURS"))
	if err != nil || hours <= 0 {
		return 6 * time.Hour
	}
	return time.Duration(hours) * time.Hour
}

// GatewayTimeout bounds each SportsDB call. Defaults to 10s.
func GatewayTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("GATEWAY_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 10 * time.Second
	}
	return time.Duration(secs) * time.Second
}

// ReasonerTimeout bounds each reasoning-collaborator call. Defaults to 30s.
func ReasonerTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("REASONER_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(secs) * time.Second
}

// AnchorTimeout bounds each content-store pin call. Defaults to 30s.
func AnchorTimeout() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("ANCHOR_TIMEOUT_SECONDS"))
	if err != nil || secs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(secs) * time.Second
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
