package audit

import "time"

// Outcome is the fixed set persisted for every access attempt.
type Outcome string

const (
	OutcomeAllowed     Outcome = "allowed"
	OutcomeExpired     Outcome = "denied_expired"
	OutcomeViewLimit   Outcome = "denied_view_limit"
	OutcomeBadPassword Outcome = "denied_bad_password"
	OutcomeRevoked     Outcome = "denied_revoked"
)

func (o Outcome) String() string {
	return string(o)
}

// Entry is append-only: never mutated, never deleted, even after its share
// link is soft-deleted.
type Entry struct {
	ID          int       `json:"id"`
	ShareLinkID int       `json:"share_link_id"`
	Token       string    `json:"share_link_token"`
	AccessTime  time.Time `json:"access_time"`
	Outcome     Outcome   `json:"outcome"`
	IPAddress   string    `json:"ip_address"`
}
