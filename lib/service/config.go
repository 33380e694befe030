package service

type Config struct {
	SentryDSN              string  `envconfig:"SENTRY_DSN"`
	DatadogAgentUrl        string  `envconfig:"DATADOG_AGENT_URL"`
	SentryTracesSampleRate float64 `envconfig:"SENTRY_TRACES_SAMPLE_RATE"`
	LogFilePath            string  `envconfig:"LOG_FILE_PATH"`
	CustomName             string  `envconfig:"CUSTOM_NAME"`
	Host                   string  `envconfig:"HOST" default:"localhost:3000"`
	Port                   int     `envconfig:"PORT" default:"3000"`
	DefaultRateLimit       int     `envconfig:"DEFAULT_RATE_LIMIT" default:"10"`
	StrictRateLimit        int     `envconfig:"STRICT_RATE_LIMIT" default:"2"`
	BurstRateLimit         int     `envconfig:"BURST_RATE_LIMIT" default:"1"`
	EnablePrometheus       bool    `envconfig:"ENABLE_PROMETHEUS" default:"false"`
	PrometheusPort         int     `envconfig:"PROMETHEUS_PORT" default:"9092"`
	CacheTTL               int     `envconfig:"CACHE_TTL" default:"600"`            // in seconds, default 10 minutes
	StartupProbeTimeout    int     `envconfig:"STARTUP_PROBE_TIMEOUT" default:"60"` // in seconds, 0 skips waiting for lnd
	StatusProbeInterval    int     `envconfig:"STATUS_PROBE_INTERVAL" default:"60"` // in seconds, 0 disables the routine
	QRCodeSize             int     `envconfig:"QR_CODE_SIZE" default:"256"`         // in pixels
	MaxQRImageSize         string  `envconfig:"MAX_QR_IMAGE_SIZE" default:"2M"`
}
