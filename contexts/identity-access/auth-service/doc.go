// Package auth implements the authentication and authorization service
// for the logistics API.
//
// Layering:
// - domain: user entity and auth error taxonomy
// - application: login, token verification, and the access policy gate
// - ports: stable boundaries for persistence, clock, and token codec
// - adapters: concrete postgres, memory, jwt, and HTTP implementations
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Role is read only from a verified token payload, never from request fields.
// - The gate is stateless per request and never mutates the credential store.
package auth
