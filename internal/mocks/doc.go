// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout the application,
// facilitating consistent and DRY testing across the codebase. Instead of defining
// inline mocks in individual test files, these standardized mock implementations
// can be reused.
//
// Each mock exposes function fields (e.g. CreateIfAbsentFn) that individual test
// cases can override, plus default-value fields used when no override is set.
//
// Usage:
//
//	import "github.com/adoptly/adopt-api/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    mockJWTService := &mocks.MockJWTService{
//	        GenerateTokenFn: func(ctx context.Context, email, name string) (string, time.Time, error) {
//	            return "mocked-token", time.Now().Add(time.Hour), nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
