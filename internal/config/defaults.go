package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8080
	DefaultEnvironment = "development"
	DefaultAPIPrefix   = "/api/v1"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultBackendURL = "http://localhost:8000"
	// The agent can spend minutes on a hard question; match its own budget.
	DefaultBackendTimeoutSeconds = 300

	DefaultMaxUploadBytes = 10 << 20 // 10MB
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:8080",
}
