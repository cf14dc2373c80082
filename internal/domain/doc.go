// Package domain defines the core business entities of the pet-adoption
// backend and their validation rules.
package domain
