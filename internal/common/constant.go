// Package common contains shared constants and sentinel errors used across
// DataV client components.
package common

// Outbound HTTP header names set by the API client.
const (
	AuthorizationHeaderName = "Authorization"
	ContentTypeHeaderName   = "Content-Type"
	AcceptHeaderName        = "Accept"
	RequestIDHeaderName     = "X-Request-ID"
)

// BearerPrefix precedes the access token in the Authorization header.
const BearerPrefix = "Bearer "

// JSONContentType is the default content type of API requests.
const JSONContentType = "application/json"

// Keys under which session data is kept in both persistence scopes.
const (
	TokenKey          = "datav_token"
	UserKey           = "datav_user"
	AuthenticatedKey  = "datav_authenticated"
	RememberedUserKey = "datav_remembered_user"
)

// AppName and AppVersion identify the product the client talks to.
const (
	AppName    = "DataV"
	AppVersion = "3.1.0"
)
