package desk

import (
	"context"
	"time"
)

// Client is the top-level interface for the helpdesk API.
type Client interface {
	// Tags returns the client for the tags resource
	Tags() TagsClient

	// TicketFields returns the client for ticket field definitions
	TicketFields() TicketFieldsClient

	// Tickets returns the client for tickets
	Tickets() TicketsClient

	// NPS returns the client for NPS surveys, invitations, and recipients
	NPS() NPSClient

	// Voice returns the client for voice channel statistics
	Voice() VoiceClient
}

// TagsClient provides access to account tags.
type TagsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Tag], error)
	ListAll(ctx context.Context, params *QueryParams) ([]Tag, error)
	Count(ctx context.Context) (int, error)
	Autocomplete(ctx context.Context, prefix string) ([]Tag, error)
}

// TicketFieldsClient provides access to ticket field definitions.
type TicketFieldsClient interface {
	Create(ctx context.Context, request *TicketFieldRequest) (*TicketField, error)
	Get(ctx context.Context, id int64) (*TicketField, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[TicketField], error)
	ListAll(ctx context.Context, params *QueryParams) ([]TicketField, error)
	Update(ctx context.Context, id int64, request *TicketFieldRequest) (*TicketField, error)
	Delete(ctx context.Context, id int64) error
	ListOptions(ctx context.Context, fieldID int64) ([]FieldOption, error)
	GetOption(ctx context.Context, fieldID, optionID int64) (*FieldOption, error)
	UpsertOption(ctx context.Context, fieldID int64, option *FieldOption) (*FieldOption, error)
	DeleteOption(ctx context.Context, fieldID, optionID int64) error
}

// TicketsClient provides access to tickets.
type TicketsClient interface {
	Create(ctx context.Context, request *TicketRequest) (*Ticket, error)
	Get(ctx context.Context, id int64) (*Ticket, error)
	List(ctx context.Context, params *QueryParams) (*ListResponse[Ticket], error)
	ListAll(ctx context.Context, params *QueryParams) ([]Ticket, error)
	Update(ctx context.Context, id int64, request *TicketRequest) (*Ticket, error)
	Delete(ctx context.Context, id int64) error
}

// NPSClient provides access to NPS surveys and their invitations and
// recipients.
type NPSClient interface {
	ListSurveys(ctx context.Context, params *QueryParams) (*ListResponse[Survey], error)
	GetSurvey(ctx context.Context, id int64) (*Survey, error)

	ListInvitations(ctx context.Context, surveyID int64, params *QueryParams) (*ListResponse[Invitation], error)
	GetInvitation(ctx context.Context, surveyID, invitationID int64) (*Invitation, error)
	CreateInvitation(ctx context.Context, surveyID int64, request *InvitationRequest) (*Invitation, error)

	ListRecipients(ctx context.Context, surveyID int64, params *QueryParams) (*ListResponse[Recipient], error)
	ListAllRecipients(ctx context.Context, surveyID int64, params *QueryParams) ([]Recipient, error)
	GetRecipient(ctx context.Context, surveyID, recipientID int64) (*Recipient, error)
	CreateRecipient(ctx context.Context, surveyID int64, request *RecipientRequest) (*Recipient, error)
	UpdateRecipient(ctx context.Context, surveyID, recipientID int64, request *RecipientRequest) (*Recipient, error)
	SearchRecipients(ctx context.Context, surveyID int64, email string) ([]Recipient, error)
}

// VoiceClient provides access to voice channel statistics.
type VoiceClient interface {
	HistoricalQueueActivity(ctx context.Context) (*QueueActivity, error)
	CurrentQueueActivity(ctx context.Context) (*CurrentQueueActivity, error)
	AgentsActivity(ctx context.Context, params *QueryParams) (*ListResponse[AgentActivity], error)
	AllAgentsActivity(ctx context.Context, params *QueryParams) ([]AgentActivity, error)
}

// Config holds the configuration for creating a new client.
type Config struct {
	// Endpoint is the full API endpoint URL. Takes precedence over
	// Subdomain when both are set.
	Endpoint string

	// Subdomain is the account subdomain; the endpoint is derived
	// from it when Endpoint is empty.
	Subdomain string

	// Email plus APIToken selects API token authentication.
	Email    string
	APIToken string

	// OAuthToken selects bearer token authentication.
	OAuthToken string

	// Username and Password select the OAuth password grant. ClientID
	// and ClientSecret identify the OAuth client for that grant.
	Username     string
	Password     string
	ClientID     string
	ClientSecret string

	// RetryMax is the number of retries for failed requests. Zero
	// means requests are attempted exactly once.
	RetryMax int

	// RetryWaitMin is the minimum wait between retries
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum wait between retries
	RetryWaitMax time.Duration

	// HTTPTimeout is the per-request timeout
	HTTPTimeout time.Duration

	// UserAgent overrides the default User-Agent header
	UserAgent string

	// Debug enables request/response logging
	Debug bool

	// Logger receives debug output when set
	Logger Logger
}

// Logger is the interface for client debug logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
