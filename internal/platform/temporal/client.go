package temporal

import (
	"errors"
	"log/slog"
	"os"
	"strings"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	platformobservability "github.com/Apurer/go-gin-orders-api/internal/platform/observability"
)

// ErrDisabled is returned by Dial when TEMPORAL_DISABLED is set.
var ErrDisabled = errors.New("temporal disabled via TEMPORAL_DISABLED env")

// Config addresses a Temporal frontend.
type Config struct {
	Address   string
	Namespace string
	Disabled  bool
}

// ConfigFromEnv reads TEMPORAL_ADDRESS, TEMPORAL_NAMESPACE and TEMPORAL_DISABLED.
func ConfigFromEnv() Config {
	return Config{
		Address:   envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Disabled:  IsTruthy(os.Getenv("TEMPORAL_DISABLED")),
	}
}

// Dial connects a Temporal client with OpenTelemetry tracing and slog-backed logging.
func Dial(cfg Config, instruments *platformobservability.Instruments, tracerName string) (client.Client, error) {
	if cfg.Disabled {
		return nil, ErrDisabled
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer(tracerName)
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.Address,
		Namespace: cfg.Namespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

// IsTruthy reports whether an env value spells 1, true or yes.
func IsTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
