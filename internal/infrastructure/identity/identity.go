// Package identity verifies bearer tokens presented by the booking client.
package identity

import "errors"

// ErrMissingEmail is returned for a valid token that carries no email claim.
var ErrMissingEmail = errors.New("token has no email claim")
