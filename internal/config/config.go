package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/matchpulse/betting-analysis/internal/platform/logging"
	"github.com/matchpulse/betting-analysis/internal/usecase"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	CatalogStoreMemory   = "memory"
	CatalogStorePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	CatalogStore string
	DBURL        string

	FootballDataBaseURL string
	FootballDataAPIKey  string
	APIFootballBaseURL  string
	APIFootballKey      string
	ProviderTimeout     time.Duration

	ProviderCircuitEnabled        bool
	ProviderCircuitFailureCount   int
	ProviderCircuitOpenTimeout    time.Duration
	ProviderCircuitHalfOpenMaxReq int

	MatchCacheEnabled bool
	MatchCacheTTL     time.Duration

	StatsCacheTTL      time.Duration
	StatsCacheCapacity int
	WarmStatsOnStart   bool

	SyntheticOffDayPolicy usecase.OffDayPolicy
	AnalysisBatchWorkers  int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	catalogStore, err := parseCatalogStore(getEnv("CATALOG_STORE", CatalogStoreMemory))
	if err != nil {
		return Config{}, err
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if catalogStore == CatalogStorePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when CATALOG_STORE=postgres")
	}

	providerTimeout, err := time.ParseDuration(getEnv("PROVIDER_TIMEOUT", "9s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROVIDER_TIMEOUT: %w", err)
	}
	if providerTimeout <= 0 {
		return Config{}, fmt.Errorf("PROVIDER_TIMEOUT must be > 0")
	}

	providerCircuitEnabled, err := strconv.ParseBool(getEnv("PROVIDER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROVIDER_CIRCUIT_ENABLED: %w", err)
	}
	providerCircuitFailureCount, err := getEnvAsInt("PROVIDER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROVIDER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if providerCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("PROVIDER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	providerCircuitOpenTimeout, err := time.ParseDuration(getEnv("PROVIDER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROVIDER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if providerCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("PROVIDER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	providerCircuitHalfOpenMaxReq, err := getEnvAsInt("PROVIDER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROVIDER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if providerCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("PROVIDER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	matchCacheEnabled, err := strconv.ParseBool(getEnv("MATCH_CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_CACHE_ENABLED: %w", err)
	}
	matchCacheTTL, err := time.ParseDuration(getEnv("MATCH_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MATCH_CACHE_TTL: %w", err)
	}
	if matchCacheTTL <= 0 {
		return Config{}, fmt.Errorf("MATCH_CACHE_TTL must be > 0")
	}

	statsCacheTTL, err := time.ParseDuration(getEnv("STATS_CACHE_TTL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CACHE_TTL: %w", err)
	}
	if statsCacheTTL <= 0 {
		return Config{}, fmt.Errorf("STATS_CACHE_TTL must be > 0")
	}
	statsCacheCapacity, err := getEnvAsInt("STATS_CACHE_CAPACITY", 50)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATS_CACHE_CAPACITY: %w", err)
	}
	if statsCacheCapacity < 1 {
		return Config{}, fmt.Errorf("STATS_CACHE_CAPACITY must be >= 1")
	}
	warmStatsOnStart, err := strconv.ParseBool(getEnv("WARM_STATS_ON_START", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WARM_STATS_ON_START: %w", err)
	}

	offDayPolicy, err := parseOffDayPolicy(getEnv("SYNTHETIC_OFFDAY_POLICY", string(usecase.OffDayPolicyMixed)))
	if err != nil {
		return Config{}, err
	}

	analysisBatchWorkers, err := getEnvAsInt("ANALYSIS_BATCH_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse ANALYSIS_BATCH_WORKERS: %w", err)
	}
	if analysisBatchWorkers < 1 {
		return Config{}, fmt.Errorf("ANALYSIS_BATCH_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "betting-analysis-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		CatalogStore: catalogStore,
		DBURL:        dbURL,

		FootballDataBaseURL: strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org")),
		FootballDataAPIKey:  strings.TrimSpace(getEnv("FOOTBALL_DATA_API_KEY", "")),
		APIFootballBaseURL:  strings.TrimSpace(getEnv("API_FOOTBALL_BASE_URL", "https://api-football-v1.p.rapidapi.com")),
		APIFootballKey:      strings.TrimSpace(getEnv("API_FOOTBALL_KEY", "")),
		ProviderTimeout:     providerTimeout,

		ProviderCircuitEnabled:        providerCircuitEnabled,
		ProviderCircuitFailureCount:   providerCircuitFailureCount,
		ProviderCircuitOpenTimeout:    providerCircuitOpenTimeout,
		ProviderCircuitHalfOpenMaxReq: providerCircuitHalfOpenMaxReq,

		MatchCacheEnabled: matchCacheEnabled,
		MatchCacheTTL:     matchCacheTTL,

		StatsCacheTTL:      statsCacheTTL,
		StatsCacheCapacity: statsCacheCapacity,
		WarmStatsOnStart:   warmStatsOnStart,

		SyntheticOffDayPolicy: offDayPolicy,
		AnalysisBatchWorkers:  analysisBatchWorkers,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled: uptraceEnabled,
		UptraceDSN:     uptraceDSN,

		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseCatalogStore(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case CatalogStoreMemory, CatalogStorePostgres:
		return value, nil
	default:
		return "", fmt.Errorf("invalid CATALOG_STORE %q: valid values are %s, %s", v, CatalogStoreMemory, CatalogStorePostgres)
	}
}

func parseOffDayPolicy(v string) (usecase.OffDayPolicy, error) {
	value := usecase.OffDayPolicy(strings.ToLower(strings.TrimSpace(v)))
	switch value {
	case usecase.OffDayPolicyMixed, usecase.OffDayPolicyInfo:
		return value, nil
	default:
		return "", fmt.Errorf("invalid SYNTHETIC_OFFDAY_POLICY %q: valid values are %s, %s", v, usecase.OffDayPolicyMixed, usecase.OffDayPolicyInfo)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
