package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultTokenExpiryMin = 60
	DefaultPasswordScheme = "bcrypt"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
	DefaultDBMaxConns     = 10
)

type Config struct {
	Env            string
	Port           string
	DBURL          string
	JWTSecret      string
	TokenExpiryMin int
	PasswordScheme string
	LogLevel       string
	LogFormat      string
	DBMaxConns     int
}

// Load reads config/.env.dev or config/.env.prod (picked by ENV) and then the
// process environment. Variables already present in the environment are never
// overwritten by the file. All missing required keys are reported in one fatal line.
func Load() *Config {
	env := lookupOr("ENV", "development")
	loadEnvFile(env)

	src := &envSource{}
	cfg := &Config{
		Env:            env,
		Port:           src.str("PORT", DefaultPort),
		DBURL:          src.required("DB_URL"),
		JWTSecret:      src.required("JWT_SECRET"),
		TokenExpiryMin: src.positiveInt("JWT_EXPIRY", DefaultTokenExpiryMin),
		PasswordScheme: src.str("PASSWORD_SCHEME", DefaultPasswordScheme),
		LogLevel:       src.str("LOG_LEVEL", DefaultLogLevel),
		LogFormat:      src.str("LOG_FORMAT", DefaultLogFormat),
		DBMaxConns:     src.positiveInt("DB_MAX_CONNS", DefaultDBMaxConns),
	}

	if len(src.missing) > 0 {
		log.Fatalf("Missing required config: %s", strings.Join(src.missing, ", "))
	}
	return cfg
}

func loadEnvFile(env string) {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}

	path := filepath.Join("config", name)
	if err := godotenv.Load(path); err != nil {
		log.Printf("No %s found, using environment only", path)
	}
}

// lookup returns the trimmed value of key; blank values count as unset.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func lookupOr(key, fallback string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return fallback
}

// envSource reads typed settings and remembers which required keys were absent.
type envSource struct {
	missing []string
}

func (e *envSource) str(key, fallback string) string {
	return lookupOr(key, fallback)
}

func (e *envSource) required(key string) string {
	v, ok := lookup(key)
	if !ok {
		e.missing = append(e.missing, key)
	}
	return v
}

func (e *envSource) positiveInt(key string, fallback int) int {
	raw, ok := lookup(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("Invalid value %q for %s, using default %d", raw, key, fallback)
		return fallback
	}
	return n
}
