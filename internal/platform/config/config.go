package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	JWTSigningKey  string
	AdminTokenHash string
	TokenTTL       time.Duration
	RequestTimeout time.Duration
	BatchLimit     int
	BatchWorkers   int
}

var (
	defaultTokenTTL       = 15 * time.Minute
	defaultRequestTimeout = 30 * time.Second
)

// DefaultBatchLimit caps how many codes one batch request may carry.
const DefaultBatchLimit = 500

// DefaultBatchWorkers bounds concurrent decodes inside a batch.
const DefaultBatchWorkers = 8

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("NIDX_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	tokenTTL := defaultTokenTTL
	if s := os.Getenv("NIDX_TOKEN_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			tokenTTL = d
		}
	}

	requestTimeout := defaultRequestTimeout
	if s := os.Getenv("NIDX_REQUEST_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			requestTimeout = d
		}
	}

	batchLimit := DefaultBatchLimit
	if s := os.Getenv("NIDX_BATCH_LIMIT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			batchLimit = n
		}
	}

	batchWorkers := DefaultBatchWorkers
	if s := os.Getenv("NIDX_BATCH_WORKERS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			batchWorkers = n
		}
	}

	jwtSigningKey := os.Getenv("NIDX_JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	return Server{
		Addr:           addr,
		JWTSigningKey:  jwtSigningKey,
		AdminTokenHash: os.Getenv("NIDX_ADMIN_TOKEN_HASH"),
		TokenTTL:       tokenTTL,
		RequestTimeout: requestTimeout,
		BatchLimit:     batchLimit,
		BatchWorkers:   batchWorkers,
	}
}
