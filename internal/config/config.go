package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// AuthMode selects how bearer tokens are verified.
type AuthMode string

const (
	// AuthModeLocal checks token signatures against the shared secret.
	AuthModeLocal AuthMode = "local"
	// AuthModeRemote delegates verification to the identity provider.
	AuthModeRemote AuthMode = "remote"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	JWTSecret       string
	AuthMode        AuthMode
	IdentityAddress string
	AttachmentRoot  string
	TempUploadDir   string
	ClientsSeedFile string
	CORSOrigins     []string
	MaxUploadBytes  int64
	FileWorkers     int
	StoreTimeout    time.Duration
	FileTimeout     time.Duration
	ShutdownTimeout time.Duration
}

const (
	defaultRunAddress      = ":8080"
	defaultJWTSecret       = "change-me-in-production"
	defaultAttachmentRoot  = "orderImages"
	defaultTempUploadDir   = "tempUploads"
	defaultMaxUploadBytes  = 32 << 20
	defaultFileWorkers     = 4
	defaultStoreTimeout    = 10 * time.Second
	defaultFileTimeout     = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		JWTSecret:       getString(lookup, "JWT_SECRET", defaultJWTSecret),
		AuthMode:        AuthMode(getString(lookup, "AUTH_MODE", string(AuthModeLocal))),
		IdentityAddress: getString(lookup, "IDENTITY_ADDRESS", ""),
		AttachmentRoot:  getString(lookup, "ATTACHMENT_ROOT", defaultAttachmentRoot),
		TempUploadDir:   getString(lookup, "TEMP_UPLOAD_DIR", defaultTempUploadDir),
		ClientsSeedFile: getString(lookup, "CLIENTS_SEED_FILE", ""),
		MaxUploadBytes:  getInt64(lookup, "MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		FileWorkers:     getInt(lookup, "FILE_WORKERS", defaultFileWorkers),
		StoreTimeout:    getDuration(lookup, "STORE_TIMEOUT", defaultStoreTimeout),
		FileTimeout:     getDuration(lookup, "FILE_TIMEOUT", defaultFileTimeout),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	origins := getString(lookup, "CORS_ORIGINS", "")

	fs := flag.NewFlagSet("crmdesk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		authModeStr        = string(cfg.AuthMode)
		storeTimeoutStr    = cfg.StoreTimeout.String()
		fileTimeoutStr     = cfg.FileTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Shared secret for local token verification")
	fs.StringVar(&authModeStr, "auth-mode", authModeStr, "Token verification mode: local or remote")
	fs.StringVar(&cfg.IdentityAddress, "identity", cfg.IdentityAddress, "Identity provider base URL for remote verification")
	fs.StringVar(&cfg.AttachmentRoot, "attachment-root", cfg.AttachmentRoot, "Directory for promoted order attachments")
	fs.StringVar(&cfg.TempUploadDir, "temp-dir", cfg.TempUploadDir, "Directory for staged uploads")
	fs.StringVar(&cfg.ClientsSeedFile, "clients-seed", cfg.ClientsSeedFile, "JSON file with clients to import at startup")
	fs.StringVar(&origins, "cors-origins", origins, "Comma separated list of allowed CORS origins")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload", cfg.MaxUploadBytes, "Maximum multipart request memory in bytes")
	fs.IntVar(&cfg.FileWorkers, "file-workers", cfg.FileWorkers, "Concurrent file moves per attachment batch")
	fs.StringVar(&storeTimeoutStr, "store-timeout", storeTimeoutStr, "Timeout per store operation")
	fs.StringVar(&fileTimeoutStr, "file-timeout", fileTimeoutStr, "Timeout per attachment batch")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.StoreTimeout, err = time.ParseDuration(storeTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid store timeout: %w", err)
	}

	if cfg.FileTimeout, err = time.ParseDuration(fileTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid file timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = strings.TrimSpace(string(content))
	}

	cfg.AuthMode = AuthMode(authModeStr)
	cfg.CORSOrigins = splitOrigins(origins)

	if cfg.FileWorkers <= 0 {
		cfg.FileWorkers = defaultFileWorkers
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUploadBytes
	}

	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}

	if cfg.FileTimeout <= 0 {
		cfg.FileTimeout = defaultFileTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	switch cfg.AuthMode {
	case AuthModeLocal:
	case AuthModeRemote:
		if cfg.IdentityAddress == "" {
			return nil, fmt.Errorf("identity provider address must be provided in remote auth mode")
		}
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.AuthMode)
	}

	return cfg, nil
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
