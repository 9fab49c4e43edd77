// Package service contains the application's use cases: entry CRUD with
// business-rule validation and status transitions, and user registration
// and authentication. Services receive their store dependencies through
// constructor injection and never reach infrastructure directly.
package service
