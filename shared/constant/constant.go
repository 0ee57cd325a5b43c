package constant

import "time"

type contextKey string

// ContextKeyUserID holds the acting client. See ContextGuest and ContextInternal for the fallbacks.
const ContextKeyUserID contextKey = "user_id"

const (
	ContextGuest    = "guest"
	ContextInternal = "internal"
)

const Empty = ""

// Query string and path parameters.
const (
	RequestParamID      = "id"
	RequestParamPage    = "page"
	RequestParamLimit   = "limit"
	RequestParamSortBy  = "sort_by"
	RequestParamSortDir = "sort_dir"

	RequestMaxMemory = 10 << 20
)

// Listing defaults. MaxValueLimit caps any requested page size.
const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
	MaxValueLimit       = 100
)

// Audit columns shared by every table.
const (
	FieldCreatedAt  = "created_at"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

// SQLSTATE codes the services translate into failures.
const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
	PqErrorCodeCheckViolation  = "23514"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
)

const (
	OtelHandlerScopeName    = "handler"
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelEventScopeName      = "event"
	OtelQueryAttributeKey   = "query"
)

const (
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderClientID           = "X-Client-ID"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	ResponseHeaderRetryAfter        = "Retry-After"

	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
