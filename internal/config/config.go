package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultAddr = ":8080"
const defaultSigningKey = "dev-secret-change-me"
const defaultTokenTTL = time.Hour
const defaultStorageDriver = "memory"
const defaultMigrationsDir = "migrations"
const defaultNotifierBuffer = 64

type Config struct {
	Addr           string
	JWTSigningKey  string
	JWTTokenTTL    time.Duration
	StorageDriver  string
	DatabaseDSN    string
	MigrationsDir  string
	NotifierBuffer int
}

func Load() (Config, error) {
	addr := strings.TrimSpace(os.Getenv("BACK_OFFICE_ADDR"))
	if addr == "" {
		addr = defaultAddr
	}

	signingKey := strings.TrimSpace(os.Getenv("JWT_SIGNING_KEY"))
	if signingKey == "" {
		signingKey = defaultSigningKey
	}

	tokenTTL := defaultTokenTTL
	if raw := strings.TrimSpace(os.Getenv("JWT_TOKEN_TTL")); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err == nil && parsed > 0 {
			tokenTTL = parsed
		}
	}

	driver := strings.ToLower(strings.TrimSpace(os.Getenv("STORAGE_DRIVER")))
	if driver == "" {
		driver = defaultStorageDriver
	}

	notifierBuffer := defaultNotifierBuffer
	if raw := strings.TrimSpace(os.Getenv("NOTIFIER_BUFFER")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			notifierBuffer = parsed
		}
	}

	migrationsDir := strings.TrimSpace(os.Getenv("MIGRATIONS_DIR"))
	if migrationsDir == "" {
		migrationsDir = defaultMigrationsDir
	}

	return Config{
		Addr:           addr,
		JWTSigningKey:  signingKey,
		JWTTokenTTL:    tokenTTL,
		StorageDriver:  driver,
		DatabaseDSN:    strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		MigrationsDir:  migrationsDir,
		NotifierBuffer: notifierBuffer,
	}, nil
}
