package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/team-report/internal/platform/logging"
)

// Config stores runtime configuration for a report run.
type Config struct {
	AppEnv                          string
	ServiceName                     string
	ServiceVersion                  string
	LogLevel                        logging.Level
	LogFormat                       logging.Format
	TeamKey                         string
	Season                          int
	Author                          string
	OutputDir                       string
	SportsDataBaseURL               string
	SportsDataCredentialFile        string
	SportsDataTimeout               time.Duration
	SportsDataMaxRetries            int
	SportsDataCircuitEnabled        bool
	SportsDataCircuitFailureCount   int
	SportsDataCircuitOpenTimeout    time.Duration
	SportsDataCircuitHalfOpenMaxReq int
	LogoPageURL                     string
	LogoFuzzyThreshold              float64
	OddsPageURL                     string
	ScraperTimeout                  time.Duration
	ChartWorkers                    int
	UptraceEnabled                  bool
	UptraceDSN                      string
	UptraceLogsEnabled              bool
	PyroscopeEnabled                bool
	PyroscopeServerAddress          string
	PyroscopeAppName                string
	PyroscopeAuthToken              string
	PyroscopeUploadRate             time.Duration
}

const (
	defaultAuthor     = "Ignacio Bayón Jiménez-Ugarte"
	credentialPrefix  = 10
	minCredentialSize = credentialPrefix + 1
)

var teamKeyPattern = regexp.MustCompile(`^[A-Za-z]{2,4}$`)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logFormat, err := logging.ParseFormat(getEnv("APP_LOG_FORMAT", string(logging.FormatConsole)))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_FORMAT: %w", err)
	}

	teamKey := strings.TrimSpace(getEnv("REPORT_TEAM", "BOS"))
	if !teamKeyPattern.MatchString(teamKey) {
		return Config{}, fmt.Errorf("invalid REPORT_TEAM %q: expected 2-4 letters", teamKey)
	}

	seasonRaw := strings.TrimSpace(getEnv("REPORT_SEASON", "2022"))
	season, err := strconv.Atoi(seasonRaw)
	if err != nil || len(seasonRaw) != 4 {
		return Config{}, fmt.Errorf("invalid REPORT_SEASON %q: expected a 4-digit year", seasonRaw)
	}

	outputDir := strings.TrimSpace(getEnv("REPORT_OUTPUT_DIR", "."))

	sportsDataBaseURL := strings.TrimSpace(getEnv("SPORTSDATA_BASE_URL", "https://api.sportsdata.io/v3/nba"))
	credentialFile := strings.TrimSpace(getEnv("SPORTSDATA_CREDENTIAL_FILE", "config.txt"))
	sportsDataTimeout, err := time.ParseDuration(getEnv("SPORTSDATA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_TIMEOUT: %w", err)
	}
	if sportsDataTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_TIMEOUT must be > 0")
	}
	sportsDataMaxRetries, err := getEnvAsInt("SPORTSDATA_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_MAX_RETRIES: %w", err)
	}
	if sportsDataMaxRetries < 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_MAX_RETRIES must be >= 0")
	}
	sportsDataCircuitEnabled, err := strconv.ParseBool(getEnv("SPORTSDATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_ENABLED: %w", err)
	}
	sportsDataCircuitFailureCount, err := getEnvAsInt("SPORTSDATA_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sportsDataCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sportsDataCircuitOpenTimeout, err := time.ParseDuration(getEnv("SPORTSDATA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sportsDataCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sportsDataCircuitHalfOpenMaxReq, err := getEnvAsInt("SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sportsDataCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	scraperTimeout, err := time.ParseDuration(getEnv("SCRAPER_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SCRAPER_TIMEOUT: %w", err)
	}
	if scraperTimeout <= 0 {
		return Config{}, fmt.Errorf("SCRAPER_TIMEOUT must be > 0")
	}
	logoFuzzyThreshold, err := strconv.ParseFloat(strings.TrimSpace(getEnv("LOGO_FUZZY_THRESHOLD", "0.93")), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse LOGO_FUZZY_THRESHOLD: %w", err)
	}
	if logoFuzzyThreshold <= 0 || logoFuzzyThreshold > 1 {
		return Config{}, fmt.Errorf("LOGO_FUZZY_THRESHOLD must be in (0, 1]")
	}

	chartWorkers, err := getEnvAsInt("CHART_WORKERS", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse CHART_WORKERS: %w", err)
	}
	if chartWorkers < 1 {
		return Config{}, fmt.Errorf("CHART_WORKERS must be >= 1")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	serviceName := getEnv("APP_SERVICE_NAME", "team-report")

	return Config{
		AppEnv:                          appEnv,
		ServiceName:                     serviceName,
		ServiceVersion:                  getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                        parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:                       logFormat,
		TeamKey:                         strings.ToUpper(teamKey),
		Season:                          season,
		Author:                          strings.TrimSpace(getEnv("REPORT_AUTHOR", defaultAuthor)),
		OutputDir:                       outputDir,
		SportsDataBaseURL:               sportsDataBaseURL,
		SportsDataCredentialFile:        credentialFile,
		SportsDataTimeout:               sportsDataTimeout,
		SportsDataMaxRetries:            sportsDataMaxRetries,
		SportsDataCircuitEnabled:        sportsDataCircuitEnabled,
		SportsDataCircuitFailureCount:   sportsDataCircuitFailureCount,
		SportsDataCircuitOpenTimeout:    sportsDataCircuitOpenTimeout,
		SportsDataCircuitHalfOpenMaxReq: sportsDataCircuitHalfOpenMaxReq,
		LogoPageURL:                     strings.TrimSpace(getEnv("LOGO_PAGE_URL", "https://loodibee.com/nba/")),
		LogoFuzzyThreshold:              logoFuzzyThreshold,
		OddsPageURL:                     strings.TrimSpace(getEnv("ODDS_PAGE_URL", "https://www.sportytrader.es/cuotas/baloncesto/usa/nba-306/")),
		ScraperTimeout:                  scraperTimeout,
		ChartWorkers:                    chartWorkers,
		UptraceEnabled:                  uptraceEnabled,
		UptraceDSN:                      uptraceDSN,
		UptraceLogsEnabled:              uptraceLogsEnabled,
		PyroscopeEnabled:                pyroscopeEnabled,
		PyroscopeServerAddress:          pyroscopeServerAddress,
		PyroscopeAppName:                strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", serviceName)),
		PyroscopeAuthToken:              strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:             pyroscopeUploadRate,
	}, nil
}

// LoadCredential reads the SportsDataIO subscription key from a local file.
// The key starts after a fixed ten character label such as "API_KEY = ".
func LoadCredential(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read credential file %s: %w", path, err)
	}
	content := string(raw)
	if len(content) < minCredentialSize {
		return "", fmt.Errorf("credential file %s is too short", path)
	}

	key := strings.TrimSpace(content[credentialPrefix:])
	if key == "" {
		return "", fmt.Errorf("credential file %s holds an empty key", path)
	}
	return key, nil
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

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
