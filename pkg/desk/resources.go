package desk

import "time"

// Tag represents a tag and the number of resources it is applied to.
type Tag struct {
	Name  string `json:"name"  yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// TicketField represents a ticket field definition.
type TicketField struct {
	ID                  int64         `json:"id,omitempty"                    yaml:"id,omitempty"`
	URL                 string        `json:"url,omitempty"                   yaml:"url,omitempty"`
	Type                string        `json:"type"                            yaml:"type"`
	Title               string        `json:"title"                           yaml:"title"`
	RawTitle            string        `json:"raw_title,omitempty"             yaml:"raw_title,omitempty"`
	Description         string        `json:"description,omitempty"           yaml:"description,omitempty"`
	Position            int           `json:"position,omitempty"              yaml:"position,omitempty"`
	Active              bool          `json:"active"                          yaml:"active"`
	Required            bool          `json:"required"                        yaml:"required"`
	CollapsedForAgents  bool          `json:"collapsed_for_agents"            yaml:"collapsed_for_agents"`
	RegexpForValidation *string       `json:"regexp_for_validation,omitempty" yaml:"regexp_for_validation,omitempty"`
	Tag                 *string       `json:"tag,omitempty"                   yaml:"tag,omitempty"`
	CustomFieldOptions  []FieldOption `json:"custom_field_options,omitempty"  yaml:"custom_field_options,omitempty"`
	Removable           bool          `json:"removable,omitempty"             yaml:"removable,omitempty"`
	CreatedAt           *time.Time    `json:"created_at,omitempty"            yaml:"created_at,omitempty"`
	UpdatedAt           *time.Time    `json:"updated_at,omitempty"            yaml:"updated_at,omitempty"`
}

// TicketFieldRequest represents a request to create or update a ticket field.
type TicketFieldRequest struct {
	// Type is required on create (e.g. "text", "tagger"); immutable after.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Title is the field label shown to agents.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Description optionally sets help text; nil leaves it unchanged.
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	// Position optionally reorders the field; nil leaves it unchanged.
	Position *int `json:"position,omitempty" yaml:"position,omitempty"`
	// Active optionally enables/disables the field; nil leaves it unchanged.
	Active *bool `json:"active,omitempty" yaml:"active,omitempty"`
	// Required optionally marks the field mandatory; nil leaves it unchanged.
	Required *bool `json:"required,omitempty" yaml:"required,omitempty"`
	// RegexpForValidation applies to "regexp" type fields only.
	RegexpForValidation *string `json:"regexp_for_validation,omitempty" yaml:"regexp_for_validation,omitempty"`
	// CustomFieldOptions replaces the option list for "tagger" fields.
	CustomFieldOptions []FieldOption `json:"custom_field_options,omitempty" yaml:"custom_field_options,omitempty"`
}

// FieldOption represents one selectable option of a dropdown ticket field.
type FieldOption struct {
	ID       *int64 `json:"id,omitempty"       yaml:"id,omitempty"`
	Name     string `json:"name"               yaml:"name"`
	Value    string `json:"value"              yaml:"value"`
	Position int    `json:"position,omitempty" yaml:"position,omitempty"`
	Default  bool   `json:"default,omitempty"  yaml:"default,omitempty"`
}

// Ticket represents a support ticket.
type Ticket struct {
	ID          int64      `json:"id,omitempty"           yaml:"id,omitempty"`
	URL         string     `json:"url,omitempty"          yaml:"url,omitempty"`
	Subject     string     `json:"subject"                yaml:"subject"`
	Description string     `json:"description,omitempty"  yaml:"description,omitempty"`
	Status      string     `json:"status,omitempty"       yaml:"status,omitempty"`
	Priority    string     `json:"priority,omitempty"     yaml:"priority,omitempty"`
	RequesterID int64      `json:"requester_id,omitempty" yaml:"requester_id,omitempty"`
	AssigneeID  int64      `json:"assignee_id,omitempty"  yaml:"assignee_id,omitempty"`
	GroupID     int64      `json:"group_id,omitempty"     yaml:"group_id,omitempty"`
	Tags        []string   `json:"tags,omitempty"         yaml:"tags,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
}

// TicketRequest represents a request to create or update a ticket.
type TicketRequest struct {
	Subject     string          `json:"subject,omitempty"      yaml:"subject,omitempty"`
	Comment     *TicketComment  `json:"comment,omitempty"      yaml:"comment,omitempty"`
	Status      string          `json:"status,omitempty"       yaml:"status,omitempty"`
	Priority    string          `json:"priority,omitempty"     yaml:"priority,omitempty"`
	RequesterID int64           `json:"requester_id,omitempty" yaml:"requester_id,omitempty"`
	AssigneeID  int64           `json:"assignee_id,omitempty"  yaml:"assignee_id,omitempty"`
	Tags        []string        `json:"tags,omitempty"         yaml:"tags,omitempty"`
}

// TicketComment is the comment attached to a ticket create/update.
type TicketComment struct {
	Body   string `json:"body"             yaml:"body"`
	Public *bool  `json:"public,omitempty" yaml:"public,omitempty"`
}

// Survey represents an NPS survey.
type Survey struct {
	ID        int64      `json:"id"                   yaml:"id"`
	Title     string     `json:"title"                yaml:"title"`
	Status    string     `json:"status,omitempty"     yaml:"status,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Invitation represents one delivery wave of an NPS survey.
type Invitation struct {
	ID              int64      `json:"id"                         yaml:"id"`
	SurveyID        int64      `json:"survey_id,omitempty"        yaml:"survey_id,omitempty"`
	Status          string     `json:"status,omitempty"           yaml:"status,omitempty"`
	RecipientsCount int        `json:"recipients_count,omitempty" yaml:"recipients_count,omitempty"`
	DeliverAt       *time.Time `json:"deliver_at,omitempty"       yaml:"deliver_at,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"       yaml:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"       yaml:"updated_at,omitempty"`
}

// InvitationRequest represents a request to send a survey invitation wave.
type InvitationRequest struct {
	// RecipientIDs selects the recipients for this wave; empty means all
	// eligible recipients.
	RecipientIDs []int64 `json:"recipient_ids,omitempty" yaml:"recipient_ids,omitempty"`
	// DeliverAt optionally schedules delivery; nil sends immediately.
	DeliverAt *time.Time `json:"deliver_at,omitempty" yaml:"deliver_at,omitempty"`
}

// Recipient represents one person eligible to receive an NPS survey.
type Recipient struct {
	ID             int64      `json:"id"                        yaml:"id"`
	SurveyID       int64      `json:"survey_id,omitempty"       yaml:"survey_id,omitempty"`
	Name           string     `json:"name"                      yaml:"name"`
	EmailAddress   string     `json:"email_address"             yaml:"email_address"`
	Language       string     `json:"language,omitempty"        yaml:"language,omitempty"`
	DeliveryMethod string     `json:"delivery_method,omitempty" yaml:"delivery_method,omitempty"`
	Unsubscribed   bool       `json:"unsubscribed"              yaml:"unsubscribed"`
	CreatedAt      *time.Time `json:"created_at,omitempty"      yaml:"created_at,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"      yaml:"updated_at,omitempty"`
}

// RecipientRequest represents a request to create or update a recipient.
type RecipientRequest struct {
	Name           string `json:"name,omitempty"            yaml:"name,omitempty"`
	EmailAddress   string `json:"email_address,omitempty"   yaml:"email_address,omitempty"`
	Language       string `json:"language,omitempty"        yaml:"language,omitempty"`
	DeliveryMethod string `json:"delivery_method,omitempty" yaml:"delivery_method,omitempty"`
}

// QueueActivity represents historical voice-queue statistics.
type QueueActivity struct {
	AverageWaitTime        int `json:"average_wait_time"          yaml:"average_wait_time"`
	LongestWaitTime        int `json:"longest_wait_time"          yaml:"longest_wait_time"`
	AverageAbandonmentTime int `json:"average_abandonment_time"   yaml:"average_abandonment_time"`
	TotalCalls             int `json:"total_calls"                yaml:"total_calls"`
	AbandonedCalls         int `json:"abandoned_calls"            yaml:"abandoned_calls"`
	CallbackCalls          int `json:"callback_calls"             yaml:"callback_calls"`
	VoicemailCalls         int `json:"voicemail_calls"            yaml:"voicemail_calls"`
}

// CurrentQueueActivity represents live voice-queue statistics.
type CurrentQueueActivity struct {
	AgentsOnline           int `json:"agents_online"            yaml:"agents_online"`
	CallsWaiting           int `json:"calls_waiting"            yaml:"calls_waiting"`
	CallbacksWaiting       int `json:"callbacks_waiting"        yaml:"callbacks_waiting"`
	AverageWaitTime        int `json:"average_wait_time"        yaml:"average_wait_time"`
	LongestWaitTime        int `json:"longest_wait_time"        yaml:"longest_wait_time"`
	EmbeddableCallsWaiting int `json:"embeddable_calls_waiting" yaml:"embeddable_calls_waiting"`
}

// AgentActivity represents per-agent voice activity statistics.
type AgentActivity struct {
	AgentID            int64  `json:"agent_id"                      yaml:"agent_id"`
	Name               string `json:"name,omitempty"                yaml:"name,omitempty"`
	AvailabilityStatus string `json:"availability_status,omitempty" yaml:"availability_status,omitempty"`
	CallsAccepted      int    `json:"calls_accepted"                yaml:"calls_accepted"`
	CallsMissed        int    `json:"calls_missed"                  yaml:"calls_missed"`
	CallsDenied        int    `json:"calls_denied"                  yaml:"calls_denied"`
	AverageTalkTime    int    `json:"average_talk_time"             yaml:"average_talk_time"`
	TotalTalkTime      int    `json:"total_talk_time"               yaml:"total_talk_time"`
	OnlineTime         int    `json:"online_time"                   yaml:"online_time"`
}
