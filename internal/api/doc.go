// Package api implements the HTTP handlers for the pet-adoption backend:
// token issuance plus CRUD over users, pets, adoption requests, reviews,
// and donations. Each handler performs a single store call and translates
// its outcome into the standard response envelope; unexpected failures are
// caught, logged, and converted to a generic 500, never propagated raw.
package api
