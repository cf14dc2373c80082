// Package postgres provides PostgreSQL implementations of the store
// interfaces, using the pgx driver through database/sql. Database errors
// are mapped onto the store package's sentinel errors so callers never
// depend on driver-specific error types.
package postgres
