package share

import "time"

// Link is a token-addressable, time and view limited grant of read access to
// one vault item. current_views only ever grows; is_deleted hides the row
// from every lookup but never removes it, so the audit trail survives.
type Link struct {
	ID           int
	ItemID       int
	Token        string
	PasswordHash string // empty when the link is not password protected
	ExpiresAt    time.Time
	MaxViews     int
	CurrentViews int
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
}

type Status string

const (
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
	StatusLocked  Status = "Locked"
	StatusRevoked Status = "Revoked"
)

// Status derives the display state at the given instant. The priority is a
// policy decision: explicit revocation wins over every other state, and
// exhaustion wins over expiry.
func (l *Link) Status(now time.Time) Status {
	switch {
	case !l.IsActive:
		return StatusRevoked
	case l.CurrentViews >= l.MaxViews:
		return StatusLocked
	case l.ExpiresAt.Before(now):
		return StatusExpired
	default:
		return StatusActive
	}
}

func (l *Link) Expired(now time.Time) bool {
	return l.ExpiresAt.Before(now)
}

func (l *Link) Exhausted() bool {
	return l.CurrentViews >= l.MaxViews
}

// Locked reports whether any lockout condition holds. Each condition is
// checked from persisted fields plus the clock, never from the audit log.
func (l *Link) Locked(now time.Time) bool {
	return !l.IsActive || l.Expired(now) || l.Exhausted()
}

func (l *Link) RemainingViews() int {
	if remaining := l.MaxViews - l.CurrentViews; remaining > 0 {
		return remaining
	}
	return 0
}

// CreateResult is what the owner gets back for a freshly minted link.
type CreateResult struct {
	ShareLink string    `json:"share_link"`
	ExpiresAt time.Time `json:"expires_at"`
	MaxViews  int       `json:"max_views"`
}

// Metadata is the anonymous-safe view of a link: no content, no password
// hash, no view counts.
type Metadata struct {
	Title               string    `json:"title"`
	IsPasswordProtected bool      `json:"is_password_protected"`
	ExpiresAt           time.Time `json:"expires_at"`
	IsLocked            bool      `json:"is_locked"`
}

// LinkStatus is the owner-facing view of a link annotated with its derived
// state.
type LinkStatus struct {
	ID             int       `json:"id"`
	ItemID         int       `json:"vault_item_id"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
	MaxViews       int       `json:"max_views"`
	CurrentViews   int       `json:"current_views"`
	RemainingViews int       `json:"remaining_views"`
	IsActive       bool      `json:"is_active"`
	HasPassword    bool      `json:"has_password"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// UpdatePatch carries a partial link update; nil fields stay unchanged.
type UpdatePatch struct {
	ExpiresAt *time.Time
	MaxViews  *int
	IsActive  *bool
}
