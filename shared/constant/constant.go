package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession contextKey = "session"
)

const (
	RequestParamID          = "id"
	RequestParamDate        = "date"
	RequestParamSearch      = "search"
	RequestParamFrom        = "date_from"
	RequestParamTo          = "date_to"
	RequestParamGroupBy     = "group_by"
	RequestParamBlacklisted = "blacklisted"
)

const (
	BackendParamPageSize    = "page_size"
	BackendParamOrdering    = "ordering"
	BackendParamBookingCard = "booking_card"
	BackendParamBlacklisted = "blacklisted"
	BackendOrderingNewest   = "-id"
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"
	OtelS3ScopeName         = "s3"

	OtelCardIDAttributeKey = "booking_card.id"
	OtelPathAttributeKey   = "backend.path"
	OtelStatusAttributeKey = "backend.status"
	OtelMethodAttributeKey = "backend.method"
	OtelPaymentKindAttrKey = "payment.kind"
	OtelBookingIDAttrKey   = "booking.id"
	OtelResolutionAttrKey  = "resolution.tier"
	OtelGuestIDAttrKey     = "guest.id"
	OtelAgentIDAttrKey     = "agent.id"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	BearerPrefix    = "Bearer "
	ContentTypeJSON = "application/json"
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

const (
	Asterix = "*"
	Empty   = ""
)
