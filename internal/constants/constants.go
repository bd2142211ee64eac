package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries when retries
	// are enabled via Config.RetryMax.
	DefaultRetryMax = 5

	// LowRetryMax is used for operations that should retry fewer times.
	LowRetryMax = 3

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Concurrency and batching limits.
const (
	// DefaultConcurrencyLimit limits concurrent batch operations.
	DefaultConcurrencyLimit = 5

	// BufferSize is the default buffer size for channels.
	BufferSize = 100
)

// Pagination and display limits.
const (
	// StandardPageSize is the common page size for API responses.
	StandardPageSize = 100

	// SmallPageSize is used for demonstrations or small lists.
	SmallPageSize = 5

	// MaxPages caps pagination chains to prevent runaway loops when a
	// server keeps echoing a next-page locator.
	MaxPages = 1000
)

// Cache size and TTL constants.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultCacheSetTTL is the default TTL when setting cache values.
	DefaultCacheSetTTL = 10 * time.Minute

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Rate limiting.
const (
	// RateLimitWarningThreshold is the remaining-quota level below which a
	// warning is logged.
	RateLimitWarningThreshold = 10
)

// Token handling.
const (
	// TokenExpirationBuffer is the buffer time before token expiration at
	// which a token is considered stale and refreshed.
	TokenExpirationBuffer = 30 * time.Second
)

// Circuit breaker defaults.
const (
	// CircuitBreakerThreshold is the failure threshold for the circuit breaker.
	CircuitBreakerThreshold = 5

	// CircuitBreakerSuccessThreshold is the success threshold for the circuit breaker.
	CircuitBreakerSuccessThreshold = 2

	// CircuitBreakerTimeout is the open-state timeout for the circuit breaker.
	CircuitBreakerTimeout = 30 * time.Second
)

// State and status constants.
const (
	// StatusOpen indicates an open circuit state.
	StatusOpen = "open"

	// StatusHalfOpen indicates a half-open circuit state.
	StatusHalfOpen = "half-open"

	// StatusClosed indicates a closed circuit state.
	StatusClosed = "closed"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON/YAML indentation.
	JSONIndentSize = 2
)

// CRUD operation constants.
const (
	// OperationCreate for create operations.
	OperationCreate = "create"

	// OperationUpdate for update operations.
	OperationUpdate = "update"

	// OperationDelete for delete operations.
	OperationDelete = "delete"

	// OperationGet for get operations.
	OperationGet = "get"
)

// API path constants.
const (
	// APIPathTags is the tags endpoint.
	APIPathTags = "/api/v2/tags"

	// APIPathTicketFields is the ticket fields endpoint.
	APIPathTicketFields = "/api/v2/ticket_fields"

	// APIPathTickets is the tickets endpoint.
	APIPathTickets = "/api/v2/tickets"

	// APIPathSurveys is the NPS surveys endpoint.
	APIPathSurveys = "/api/v2/nps/surveys"

	// APIPathVoiceStats is the voice statistics endpoint prefix.
	APIPathVoiceStats = "/api/v2/channels/voice/stats"
)
