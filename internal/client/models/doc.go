// Package models holds the client-side shapes of the backend's JSON contract:
// the authenticated identity, the finance records returned by list endpoints,
// and the payloads sent on create and update.
//
// Field names on the wire follow the backend routes verbatim, including the
// services route's "reamining_price" spelling.
//
// Amounts are decimal.Decimal and are encoded as plain JSON numbers.
package models
