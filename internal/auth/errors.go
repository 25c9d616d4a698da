// File: internal/auth/errors.go
package auth

import "errors"

// Failure taxonomy for the OAuth callback. Every one of these collapses to
// the same observable behavior for the browser (a redirect to the login
// surface); the distinction exists for server-side logging and tests.
var (
	// ErrMissingCode means the provider redirect arrived without a code.
	ErrMissingCode = errors.New("auth: provider did not return a code")

	// ErrExchangeFailed means the provider rejected the authorization code
	// (expired, already used, or mismatched redirect URI). Codes are
	// single-use, so this is never retried.
	ErrExchangeFailed = errors.New("auth: authorization code exchange failed")

	// ErrProfileFetchFailed wraps any transport or provider error while
	// retrieving the remote profile. No fallback identity is synthesized.
	ErrProfileFetchFailed = errors.New("auth: provider profile fetch failed")
)
