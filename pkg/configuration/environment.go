package configuration

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/iota-uz/billing-portal/pkg/logging"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		c.Unload()
		panic(err)
	}
	return c
})

// LoadEnv loads the env files that exist, looking in the working directory first
// and then in the nearest parent holding a go.mod.
func LoadEnv(envFiles []string) (int, error) {
	existingFiles := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if fileExists(file) {
			existingFiles = append(existingFiles, file)
		}
	}
	if len(existingFiles) == 0 {
		if root, ok := findModuleRoot(); ok {
			for _, file := range envFiles {
				candidate := filepath.Join(root, file)
				if fileExists(candidate) {
					existingFiles = append(existingFiles, candidate)
				}
			}
		}
	}

	if len(existingFiles) == 0 {
		return 0, nil
	}

	return len(existingFiles), godotenv.Load(existingFiles...)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func findModuleRoot() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}
	for {
		if fileExists(filepath.Join(dir, "go.mod")) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

type APIOptions struct {
	URL               string        `env:"API_URL" envDefault:"http://localhost:3000/graphql"`
	Timeout           time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	PortalTokenHeader string        `env:"API_PORTAL_TOKEN_HEADER" envDefault:"customer-portal-token"`
	// Only used by portalctl; the portal itself authenticates with the portal token.
	Key string `env:"API_KEY"`
}

func (a *APIOptions) Validate() error {
	u, err := url.Parse(a.URL)
	if err != nil {
		return fmt.Errorf("invalid API_URL=%q: %w", a.URL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid API_URL=%q (expected http or https scheme)", a.URL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive, got %s", a.Timeout)
	}
	if strings.TrimSpace(a.PortalTokenHeader) == "" {
		return fmt.Errorf("API_PORTAL_TOKEN_HEADER must not be empty")
	}
	return nil
}

type QueryCacheOptions struct {
	Backend string        `env:"QUERY_CACHE_BACKEND" envDefault:"memory"` // memory or redis
	TTL     time.Duration `env:"QUERY_CACHE_TTL" envDefault:"5m"`
	Size    int           `env:"QUERY_CACHE_SIZE" envDefault:"1024"`
	Prefix  string        `env:"QUERY_CACHE_PREFIX" envDefault:"portal:query"`
}

func (q *QueryCacheOptions) Validate() error {
	if q.Backend != "memory" && q.Backend != "redis" {
		return fmt.Errorf("query cache Backend must be 'memory' or 'redis', got '%s'", q.Backend)
	}
	if q.TTL <= 0 {
		return fmt.Errorf("query cache TTL must be positive, got %s", q.TTL)
	}
	if q.Backend == "memory" && q.Size <= 0 {
		return fmt.Errorf("query cache Size must be positive, got %d", q.Size)
	}
	return nil
}

type PortalOptions struct {
	EventsPageSize   int `env:"PORTAL_EVENTS_PAGE_SIZE" envDefault:"20"`
	InvoicesPageSize int `env:"PORTAL_INVOICES_PAGE_SIZE" envDefault:"20"`
	ExportMaxPages   int `env:"PORTAL_EXPORT_MAX_PAGES" envDefault:"50"`
	UsageConcurrency int `env:"PORTAL_USAGE_CONCURRENCY" envDefault:"4"`
}

func (p *PortalOptions) Validate() error {
	if p.EventsPageSize <= 0 || p.EventsPageSize > 100 {
		return fmt.Errorf("PORTAL_EVENTS_PAGE_SIZE must be within 1..100, got %d", p.EventsPageSize)
	}
	if p.InvoicesPageSize <= 0 || p.InvoicesPageSize > 100 {
		return fmt.Errorf("PORTAL_INVOICES_PAGE_SIZE must be within 1..100, got %d", p.InvoicesPageSize)
	}
	if p.ExportMaxPages <= 0 {
		return fmt.Errorf("PORTAL_EXPORT_MAX_PAGES must be positive, got %d", p.ExportMaxPages)
	}
	if p.UsageConcurrency <= 0 {
		return fmt.Errorf("PORTAL_USAGE_CONCURRENCY must be positive, got %d", p.UsageConcurrency)
	}
	return nil
}

type LokiOptions struct {
	URL     string `env:"LOKI_URL"`
	AppName string `env:"LOKI_APP_NAME" envDefault:"billing-portal"`
	LogPath string `env:"LOG_PATH" envDefault:"./logs/app.log"`
}

type OpenTelemetryOptions struct {
	Enabled     bool   `env:"OTEL_ENABLED" envDefault:"false"`
	TempoURL    string `env:"OTEL_TEMPO_URL" envDefault:"localhost:4318"`
	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"billing-portal"`
}

type PrometheusOptions struct {
	Enabled bool   `env:"PROMETHEUS_METRICS_ENABLED" envDefault:"false"`
	Path    string `env:"PROMETHEUS_METRICS_PATH" envDefault:"/debug/prometheus"`
}

type RateLimitOptions struct {
	Enabled   bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	GlobalRPS int    `env:"RATE_LIMIT_GLOBAL_RPS" envDefault:"1000"`
	Storage   string `env:"RATE_LIMIT_STORAGE" envDefault:"memory"` // memory or redis
	RedisURL  string `env:"RATE_LIMIT_REDIS_URL"`
}

// Validate checks the rate limit configuration for errors
func (r *RateLimitOptions) Validate() error {
	if r.GlobalRPS < 0 {
		return fmt.Errorf("rate limit GlobalRPS must be non-negative, got %d", r.GlobalRPS)
	}
	if r.GlobalRPS > 1000000 {
		return fmt.Errorf("rate limit GlobalRPS too high, maximum is 1,000,000, got %d", r.GlobalRPS)
	}
	if r.Storage != "memory" && r.Storage != "redis" {
		return fmt.Errorf("rate limit Storage must be 'memory' or 'redis', got '%s'", r.Storage)
	}
	if r.Storage == "redis" && r.RedisURL == "" {
		return fmt.Errorf("rate limit RedisURL is required when Storage is 'redis'")
	}
	return nil
}

type Configuration struct {
	API           APIOptions
	QueryCache    QueryCacheOptions
	Portal        PortalOptions
	Loki          LokiOptions
	OpenTelemetry OpenTelemetryOptions
	Prometheus    PrometheusOptions
	RateLimit     RateLimitOptions

	RedisURL           string   `env:"REDIS_URL" envDefault:"localhost:6379"`
	ServerPort         int      `env:"PORT" envDefault:"3200"`
	GoAppEnvironment   string   `env:"GO_APP_ENV" envDefault:"development"`
	SocketAddress      string   `env:"-"`
	Domain             string   `env:"DOMAIN" envDefault:"localhost"`
	Origin             string   `env:"ORIGIN" envDefault:"http://localhost:3200"`
	CorsAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
	LogLevel           string   `env:"LOG_LEVEL" envDefault:"error"`
	// The portal will look for this header in the request, if it's not present, it will generate a random uuidv4
	RequestIDHeader string `env:"REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
	// The portal will look for this header in the request, if it's not present, it will use request.RemoteAddr
	RealIPHeader string `env:"REAL_IP_HEADER" envDefault:"X-Real-IP"`
	// Languages offered to Accept-Language matching, first one is the fallback.
	SupportedLanguages []string `env:"SUPPORTED_LANGUAGES" envSeparator:"," envDefault:"en,fr"`

	logFile *os.File
	logger  *logrus.Logger
}

func (c *Configuration) Logger() *logrus.Logger {
	return c.logger
}

func (c *Configuration) LogrusLogLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "info":
		return logrus.InfoLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.ErrorLevel
	}
}

func (c *Configuration) Scheme() string {
	if c.GoAppEnvironment == Production { // assume 'https' on production mode
		return "https"
	}
	return "http"
}

func Use() *Configuration {
	return singleton()
}

func (c *Configuration) load(envFiles []string) error {
	n, err := LoadEnv(envFiles)
	if err != nil {
		return err
	}
	if n == 0 {
		wd, _ := os.Getwd()
		log.Println("No .env files found. Tried:")
		for _, file := range envFiles {
			log.Println(filepath.Join(wd, file))
		}
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	f, logger, err := logging.FileLogger(c.LogrusLogLevel(), c.Loki.LogPath)
	if err != nil {
		return err
	}
	c.logFile = f
	c.logger = logger

	if c.GoAppEnvironment == Production {
		c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	} else {
		c.SocketAddress = fmt.Sprintf("localhost:%d", c.ServerPort)
	}

	if os.Getenv("ORIGIN") == "" {
		// Only include port in Origin for development environment
		if c.GoAppEnvironment == "development" {
			c.Origin = fmt.Sprintf("%s://%s:%d", c.Scheme(), c.Domain, c.ServerPort)
		} else {
			c.Origin = fmt.Sprintf("%s://%s", c.Scheme(), c.Domain)
		}
	}

	return nil
}

// Validate runs every section validator, used by load and by tests building a Configuration by hand.
func (c *Configuration) Validate() error {
	if err := c.API.Validate(); err != nil {
		return fmt.Errorf("api configuration error: %w", err)
	}
	if err := c.QueryCache.Validate(); err != nil {
		return fmt.Errorf("query cache configuration error: %w", err)
	}
	if err := c.Portal.Validate(); err != nil {
		return fmt.Errorf("portal configuration error: %w", err)
	}
	if err := c.RateLimit.Validate(); err != nil {
		return fmt.Errorf("rate limit configuration error: %w", err)
	}
	if len(c.SupportedLanguages) == 0 {
		return fmt.Errorf("SUPPORTED_LANGUAGES must list at least one language")
	}
	return nil
}

// Unload handles a graceful shutdown.
func (c *Configuration) Unload() {
	if c.logFile != nil {
		if err := c.logFile.Close(); err != nil {
			log.Printf("Failed to close log file: %v", err)
		}
	}
}
