// Package common contains shared constants, sentinel errors and small helpers
// used across the findash client.
package common

const (
	// TokenKey is the durable-storage key under which the session credential lives.
	TokenKey = "token"

	// TokenUpdatedAtKey records when the credential was last written.
	TokenUpdatedAtKey = "token_updated_at"

	// AuthorizationHeader carries the bearer credential on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerPrefix precedes the credential in AuthorizationHeader.
	BearerPrefix = "Bearer "
)
