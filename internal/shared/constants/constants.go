package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Cookie carrying the access token for browser clients
	AccessTokenCookie = "access_token"

	// Gin context keys set by the auth middleware
	ContextKeyPrincipal = "principal"
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"
	ContextKeyRequestID = "request_id"
)
