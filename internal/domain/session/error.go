package session

import "errors"

// ErrNotFound covers unknown and expired tokens alike; infrastructure
// failures are propagated separately.
var ErrNotFound = errors.New("session not found or expired")
