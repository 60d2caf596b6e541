// Package client is the API Gateway of the finance client: the only place
// that talks HTTP to the backend.
//
// # Overview
//
// Every request goes through (*HTTPClient).Do, which
//
//  1. reads the current credential from the token source at send time,
//  2. sends JSON with Content-Type application/json and, when a credential
//     exists, Authorization: Bearer <credential>,
//  3. returns nil for 204 responses or an empty body,
//  4. turns non-2xx responses into *RequestError carrying the backend's
//     "msg" field (or a fixed fallback message).
//
// On top of Do sit typed operations: Login, Register, Me and one Collection
// per finance resource (accounts, incomes, scheduled incomes, services,
// loans, loan payments, service payments).
//
// # Error Handling
//
// *RequestError.Error() is exactly the user-facing message. It unwraps to
// ErrUnauthorized for 401/403 and ErrNotFound for 404, so callers can use
// errors.Is. Transport failures wrap ErrUnavailable.
//
// No retries or timeouts are applied beyond what the caller's context and
// the configured *http.Client impose.
package client
