package constants

import "errors"

// Configuration errors.
var (
	ErrNoEndpointConfigured = errors.New("no API endpoint configured, set an endpoint or subdomain with 'desk login' or 'desk config set'")
	ErrNoCredentials        = errors.New("no credentials configured, use 'desk login' to authenticate")
	ErrConfigNotWritable    = errors.New("configuration file is not writable")
)

// Validation errors.
var (
	ErrInvalidOutput = errors.New("output must be one of 'table', 'json', 'yaml'")
	ErrIDRequired    = errors.New("a numeric resource id is required")
)
