package share

import (
	"time"

	"sharevault/internal/domain/share"
)

type createInput struct {
	Body createRequest
}

type createRequest struct {
	VaultItemID int       `json:"vault_item_id" doc:"Item to share"`
	ExpiresAt   time.Time `json:"expires_at" doc:"Expiry timestamp, must be in the future"`
	MaxViews    int       `json:"max_views" minimum:"1" doc:"Maximum number of successful views"`
	Password    string    `json:"password,omitempty" doc:"Optional access password"`
}

type createOutput struct {
	Body share.CreateResult
}

type listForItemInput struct {
	ID int `path:"id" doc:"Item ID"`
}

type listForItemOutput struct {
	Body listForItemResponse
}

type listForItemResponse struct {
	Shares []share.LinkStatus `json:"shares"`
	Total  int                `json:"total"`
}

type updateInput struct {
	ID   int `path:"id" doc:"Share link ID"`
	Body updateRequest
}

type updateRequest struct {
	ExpiresAt *time.Time `json:"expires_at,omitempty" doc:"New expiry timestamp"`
	MaxViews  *int       `json:"max_views,omitempty" minimum:"1" doc:"New view limit"`
	IsActive  *bool      `json:"is_active,omitempty" doc:"Revoke (false) or reinstate (true) the link"`
}

type statusOutput struct {
	Body share.LinkStatus
}

type deleteInput struct {
	ID int `path:"id" doc:"Share link ID"`
}

type deleteOutput struct {
	Body ackResponse
}

type ackResponse struct {
	Status string `json:"status" example:"Ok"`
}
