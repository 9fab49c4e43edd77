// Package api provides the HTTP handlers for the finance tracker: user
// registration and authentication, and CRUD plus status transitions on
// financial entries. Handlers translate between transport DTOs and the
// domain, delegate to the service layer, and map error kinds to status
// codes.
package api
